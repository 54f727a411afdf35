package diag

import (
	"testing"

	"github.com/example/jslint/source"
	"github.com/stretchr/testify/assert"
)

func TestAddUsesCodeDefaultSeverity(t *testing.T) {
	s := NewSink()
	s.Add(E034, source.Range{Begin: 0, End: 1}, "redeclaration of variable: x")
	s.Add(E057, source.Range{Begin: 2, End: 3}, "use of undeclared variable: y")

	diags := s.Iter()
	assert.Len(t, diags, 2)
	assert.Equal(t, SeverityError, diags[0].Severity)
	assert.Equal(t, SeverityWarning, diags[1].Severity)
}

func TestAddWithSeverityOverridesDefault(t *testing.T) {
	s := NewSink()
	s.AddWithSeverity(E034, SeverityWarning, source.Range{Begin: 0, End: 1}, "downgraded")

	assert.Equal(t, SeverityWarning, s.Iter()[0].Severity)
}

func TestDuplicateCodesAtSameSpanAreBothKept(t *testing.T) {
	s := NewSink()
	where := source.Range{Begin: 0, End: 1}
	s.Add(E001, where, "first")
	s.Add(E001, where, "second")

	assert.Equal(t, 2, s.Count())
}

func TestClearEmptiesTheSink(t *testing.T) {
	s := NewSink()
	s.Add(E001, source.Range{Begin: 0, End: 1}, "x")
	s.Clear()

	assert.Equal(t, 0, s.Count())
}

func TestIterReturnsDiagnosticsInEmissionOrder(t *testing.T) {
	s := NewSink()
	s.Add(E001, source.Range{Begin: 0, End: 1}, "a")
	s.Add(E002, source.Range{Begin: 1, End: 2}, "b")
	s.Add(E003, source.Range{Begin: 2, End: 3}, "c")

	diags := s.Iter()
	wantCodes := []Code{E001, E002, E003}
	for i, code := range wantCodes {
		assert.Equal(t, code, diags[i].Code, "diagnostic %d", i)
	}
}

func TestSeverityStringRendersKnownValues(t *testing.T) {
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "warning", SeverityWarning.String())
}
