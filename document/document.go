// Package document implements the incremental document model: it holds
// the current text of a linted file, applies UTF-16-coordinate text
// edits the way an editor sends them, and re-runs the core pipeline on
// demand (spec §4.7). There is no incremental parse — every Lint call
// re-lexes and re-parses the whole buffer — but the UTF-16/UTF-8
// coordinate translation at this boundary is what lets an editor send
// edits in its own native coordinates.
package document

import (
	"unicode/utf8"

	"github.com/example/jslint/diag"
	"github.com/example/jslint/parser"
	"github.com/example/jslint/scope"
	"github.com/example/jslint/source"
	"go.uber.org/zap"
)

// Severity mirrors the editor-facing enum from spec §6 (error=1,
// warning=2); it's kept distinct from diag.Severity so this package's
// public shape doesn't depend on diag's internal numbering.
type Severity int

const (
	SeverityError   Severity = 1
	SeverityWarning Severity = 2
)

// Diagnostic is the editor-facing diagnostic record from spec §6: the
// same information as diag.Diagnostic, but with the source.Range resolved
// to UTF-16 line/character coordinates instead of a byte range.
type Diagnostic struct {
	Message        string
	Code           string
	Severity       Severity
	StartLine      int
	StartCharacter int
	EndLine        int
	EndCharacter   int
}

// Document holds the current document text. It is not safe for
// concurrent use (§5); a caller linting N documents in parallel creates N
// independent Documents.
type Document struct {
	text   string
	logger *zap.Logger
}

// New creates an empty Document.
func New() *Document {
	return &Document{logger: zap.NewNop()}
}

// SetLogger routes this Document's operational logging — edit sizes,
// full re-lints — through l instead of discarding it.
func (d *Document) SetLogger(l *zap.Logger) {
	if l != nil {
		d.logger = l
	}
}

// Text returns the document's current content.
func (d *Document) Text() string {
	return d.text
}

// ReplaceText removes the half-open range [(startLine, startChar),
// (endLine, endChar)) — UTF-16 code-unit line/character coordinates, to
// match editor conventions (§4.7) — and splices newText into its place.
// newText is inserted verbatim as UTF-8 bytes; only the range endpoints go
// through UTF-16 coordinate translation.
func (d *Document) ReplaceText(startLine, startChar, endLine, endChar int, newText string) {
	loc := source.NewLocator(d.text)
	begin := utf16PositionToByteOffset(d.text, loc, startLine, startChar)
	end := utf16PositionToByteOffset(d.text, loc, endLine, endChar)
	d.logger.Debug("replace_text",
		zap.Int("begin_byte", begin),
		zap.Int("end_byte", end),
		zap.Int("new_text_bytes", len(newText)),
	)
	d.text = d.text[:begin] + newText + d.text[end:]
}

// Lint re-lexes and re-parses the entire document — the previous parse's
// arena and diagnostics are discarded; a fresh one backs this call (I6) —
// then runs the scope analyzer over the resulting variable-event stream
// and returns the combined diagnostics in the editor's UTF-16 coordinate
// shape.
func (d *Document) Lint() []Diagnostic {
	sink := diag.NewSink()
	p := parser.New(d.text, sink)
	_, events := p.ParseProgram()
	scope.Analyze(events, sink)

	d.logger.Debug("lint", zap.Int("text_bytes", len(d.text)), zap.Int("diagnostic_count", sink.Count()))

	loc := source.NewLocator(d.text)
	out := make([]Diagnostic, 0, sink.Count())
	for _, dg := range sink.Iter() {
		span := loc.Range(dg.Where)
		out = append(out, Diagnostic{
			Message:        dg.Message,
			Code:           string(dg.Code),
			Severity:       convertSeverity(dg.Severity),
			StartLine:      span.Begin.Line,
			StartCharacter: byteColumnToUTF16Column(d.text, loc, span.Begin.Line, span.Begin.Column),
			EndLine:        span.End.Line,
			EndCharacter:   byteColumnToUTF16Column(d.text, loc, span.End.Line, span.End.Column),
		})
	}
	return out
}

func convertSeverity(s diag.Severity) Severity {
	if s == diag.SeverityWarning {
		return SeverityWarning
	}
	return SeverityError
}

// utf16PositionToByteOffset converts a (line, UTF-16 column) coordinate to
// a byte offset into text, by walking the target line's bytes one rune at
// a time and counting UTF-16 code units (2 per rune outside the basic
// plane) until utf16Col is reached.
func utf16PositionToByteOffset(text string, loc *source.Locator, line, utf16Col int) int {
	lineRange := loc.LineRange(line)
	lineBytes := text[lineRange.Begin:lineRange.End]
	byteOffset := 0
	unitsSeen := 0
	for unitsSeen < utf16Col && byteOffset < len(lineBytes) {
		r, size := utf8.DecodeRuneInString(lineBytes[byteOffset:])
		unitsSeen += utf16RuneLen(r)
		byteOffset += size
	}
	return lineRange.Begin + byteOffset
}

// byteColumnToUTF16Column converts a byte column within a line (as
// produced by source.Locator, which counts UTF-8 bytes per §4.1) to the
// equivalent UTF-16 code-unit column, for the editor-facing Diagnostic
// shape (§6, §9 Open Question (b)).
func byteColumnToUTF16Column(text string, loc *source.Locator, line, byteCol int) int {
	lineRange := loc.LineRange(line)
	lineBytes := text[lineRange.Begin : lineRange.Begin+byteCol]
	units := 0
	for i := 0; i < len(lineBytes); {
		r, size := utf8.DecodeRuneInString(lineBytes[i:])
		units += utf16RuneLen(r)
		i += size
	}
	return units
}

func utf16RuneLen(r rune) int {
	if n := runeLenUTF16(r); n > 0 {
		return n
	}
	return 1
}

// runeLenUTF16 mirrors unicode/utf16.RuneLen (not available in this Go
// toolchain): the number of UTF-16 code units needed to encode r, or -1
// if r cannot be encoded in UTF-16.
func runeLenUTF16(r rune) int {
	switch {
	case r < 0 || (0xd800 <= r && r < 0xe000):
		return -1
	case r < 0x10000:
		return 1
	case r <= 0x10FFFF:
		return 2
	default:
		return -1
	}
}
