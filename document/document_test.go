package document

import "testing"

// Scenario 1 (§8): `let x;let x;` yields exactly one E034 at (0,10)-(0,11).
func TestScenarioRedeclarationAfterInsertion(t *testing.T) {
	d := New()
	d.ReplaceText(0, 0, 0, 0, "let x;let x;")
	diags := d.Lint()
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %+v", len(diags), diags)
	}
	want := Diagnostic{
		Message:        "redeclaration of variable: x",
		Code:           "E034",
		Severity:       SeverityError,
		StartLine:      0,
		StartCharacter: 10,
		EndLine:        0,
		EndCharacter:   11,
	}
	if diags[0] != want {
		t.Errorf("got %+v, want %+v", diags[0], want)
	}
}

// Scenario 2 (§8): adding a second line with an undeclared use appends an
// E057 warning after the E034.
func TestScenarioRedeclarationThenUndeclaredUse(t *testing.T) {
	d := New()
	d.ReplaceText(0, 0, 0, 0, "let x;let x;\nundeclaredVariable;")
	diags := d.Lint()
	if len(diags) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d: %+v", len(diags), diags)
	}
	if diags[0].Code != "E034" {
		t.Errorf("expected first diagnostic E034, got %v", diags[0].Code)
	}
	want := Diagnostic{
		Message:        "use of undeclared variable: undeclaredVariable",
		Code:           "E057",
		Severity:       SeverityWarning,
		StartLine:      1,
		StartCharacter: 0,
		EndLine:        1,
		EndCharacter:   18,
	}
	if diags[1] != want {
		t.Errorf("got %+v, want %+v", diags[1], want)
	}
}

// Scenario 3 (§8): replacing an empty document with `let x;`, then
// prepending another `let x;`, is equivalent to scenario 1 at the end of
// the second edit.
func TestScenarioReplaceEmptyThenPrepend(t *testing.T) {
	d := New()
	d.ReplaceText(0, 0, 1, 0, "let x;")
	if diags := d.Lint(); len(diags) != 0 {
		t.Fatalf("expected no diagnostics after first edit, got %+v", diags)
	}

	d.ReplaceText(0, 0, 0, 0, "let x;")
	if d.Text() != "let x;let x;" {
		t.Fatalf("expected text %q, got %q", "let x;let x;", d.Text())
	}
	diags := d.Lint()
	if len(diags) != 1 || diags[0].Code != "E034" {
		t.Fatalf("expected 1 E034, got %+v", diags)
	}
	if diags[0].StartCharacter != 10 || diags[0].EndCharacter != 11 {
		t.Errorf("expected span [10,11), got [%d,%d)", diags[0].StartCharacter, diags[0].EndCharacter)
	}
}

// §8 idempotence property: replacing a range with the exact text already
// there produces the same diagnostic set as before the edit.
func TestIdempotentReplacementProducesSameDiagnostics(t *testing.T) {
	d := New()
	d.ReplaceText(0, 0, 0, 0, "let x;let x;")
	before := d.Lint()

	d.ReplaceText(0, 0, 0, 12, "let x;let x;")
	after := d.Lint()

	if len(before) != len(after) {
		t.Fatalf("diagnostic count changed: %d vs %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("diagnostic %d differs: %+v vs %+v", i, before[i], after[i])
		}
	}
}

// A surrogate-pair-producing rune earlier on the same line shifts the
// UTF-16 character column of a later diagnostic by 2 units per rune, not
// by its 4-byte UTF-8 encoding length — this is the whole reason the
// editor-facing coordinate conversion exists (§4.7, §9 Open Question b).
func TestDiagnosticColumnsAccountForSurrogatePairs(t *testing.T) {
	d := New()
	// "/*😀*/" is 6 UTF-16 code units (2 for "/*", 2 for the emoji, 2 for
	// "*/") but 8 UTF-8 bytes.
	d.ReplaceText(0, 0, 0, 0, "/*\U0001F600*/let x;let x;")
	diags := d.Lint()
	if len(diags) != 1 || diags[0].Code != "E034" {
		t.Fatalf("expected 1 E034, got %+v", diags)
	}
	if diags[0].StartCharacter != 16 || diags[0].EndCharacter != 17 {
		t.Errorf("expected span [16,17), got [%d,%d)", diags[0].StartCharacter, diags[0].EndCharacter)
	}
}

// ReplaceText itself must interpret its startChar/endChar arguments as
// UTF-16 columns: inserting right after a surrogate-pair rune must land
// after its full UTF-8 encoding, not partway through it.
func TestReplaceTextInsertionPositionAccountsForSurrogatePairs(t *testing.T) {
	d := New()
	d.ReplaceText(0, 0, 0, 0, "/*\U0001F600*/let x;")
	// "/*😀*/" occupies UTF-16 columns [0,6); inserting at column 6 must
	// land just before "let", not inside the comment's closing "*/".
	d.ReplaceText(0, 6, 0, 6, "let x;")
	want := "/*\U0001F600*/let x;let x;"
	if d.Text() != want {
		t.Fatalf("got %q, want %q", d.Text(), want)
	}
}

func TestEmptyDocumentHasNoDiagnostics(t *testing.T) {
	d := New()
	if diags := d.Lint(); len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %+v", diags)
	}
}

// Replacing a mid-document range (not just prepending) exercises the
// general splice path rather than the insert-at-start special case.
func TestReplaceTextReplacesAnInteriorRange(t *testing.T) {
	d := New()
	d.ReplaceText(0, 0, 0, 0, "let x = 1;")
	// Replace "1" (UTF-16 columns [8,9)) with "2".
	d.ReplaceText(0, 8, 0, 9, "2")
	if d.Text() != "let x = 2;" {
		t.Fatalf("got %q", d.Text())
	}
	if diags := d.Lint(); len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %+v", diags)
	}
}
