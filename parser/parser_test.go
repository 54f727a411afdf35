package parser

import (
	"testing"

	"github.com/example/jslint/ast"
	"github.com/example/jslint/diag"
)

func parseProgram(t *testing.T, input string) (*ast.Program, *diag.Sink) {
	t.Helper()
	sink := diag.NewSink()
	p := New(input, sink)
	prog, _ := p.ParseProgram()
	return prog, sink
}

func expectStmtCount(t *testing.T, prog *ast.Program, n int) {
	t.Helper()
	if len(prog.Statements) != n {
		t.Fatalf("expected %d statements, got %d", n, len(prog.Statements))
	}
}

func exprOfStmt(t *testing.T, prog *ast.Program, i int) ast.Expression {
	t.Helper()
	stmt, ok := prog.Statements[i].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("statement %d: expected ExpressionStatement, got %T", i, prog.Statements[i])
	}
	return stmt.Expr
}

func summarizeStmt(t *testing.T, prog *ast.Program, i int) string {
	return ast.Summarize(exprOfStmt(t, prog, i))
}

func noDiagnostics(t *testing.T, sink *diag.Sink) {
	t.Helper()
	if sink.Count() != 0 {
		t.Fatalf("expected no diagnostics, got %d: %+v", sink.Count(), sink.Iter())
	}
}

// ---------- Variable declarations ----------

func TestVarDeclaration(t *testing.T) {
	prog, sink := parseProgram(t, `var x = 1;`)
	noDiagnostics(t, sink)
	expectStmtCount(t, prog, 1)
	decl, ok := prog.Statements[0].(*ast.VariableDeclaration)
	if !ok {
		t.Fatalf("expected VariableDeclaration, got %T", prog.Statements[0])
	}
	if decl.Kind != ast.KindVar {
		t.Errorf("expected KindVar, got %v", decl.Kind)
	}
	if len(decl.Declarators) != 1 {
		t.Fatalf("expected 1 declarator, got %d", len(decl.Declarators))
	}
	v, ok := decl.Declarators[0].Name.(*ast.Variable)
	if !ok {
		t.Fatalf("expected Variable, got %T", decl.Declarators[0].Name)
	}
	if v.Identifier.Name != "x" {
		t.Errorf("expected x, got %s", v.Identifier.Name)
	}
}

func TestLetConstDeclaration(t *testing.T) {
	prog, sink := parseProgram(t, `let a = 1; const b = 2;`)
	noDiagnostics(t, sink)
	expectStmtCount(t, prog, 2)

	decl1 := prog.Statements[0].(*ast.VariableDeclaration)
	if decl1.Kind != ast.KindLet {
		t.Errorf("expected KindLet, got %v", decl1.Kind)
	}

	decl2 := prog.Statements[1].(*ast.VariableDeclaration)
	if decl2.Kind != ast.KindConst {
		t.Errorf("expected KindConst, got %v", decl2.Kind)
	}
}

func TestMultipleDeclarators(t *testing.T) {
	prog, sink := parseProgram(t, `var a = 1, b = 2, c;`)
	noDiagnostics(t, sink)
	expectStmtCount(t, prog, 1)
	decl := prog.Statements[0].(*ast.VariableDeclaration)
	if len(decl.Declarators) != 3 {
		t.Fatalf("expected 3 declarators, got %d", len(decl.Declarators))
	}
	if decl.Declarators[2].Init != nil {
		t.Errorf("expected nil Init for bare 'c', got %v", decl.Declarators[2].Init)
	}
}

func TestDestructuringArrayAndObject(t *testing.T) {
	prog, sink := parseProgram(t, `let [a, , b = 1] = x; let {c, d: e} = y;`)
	noDiagnostics(t, sink)
	expectStmtCount(t, prog, 2)

	decl1 := prog.Statements[0].(*ast.VariableDeclaration)
	arr, ok := decl1.Declarators[0].Name.(*ast.Array)
	if !ok {
		t.Fatalf("expected Array pattern, got %T", decl1.Declarators[0].Name)
	}
	if len(arr.Elements) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(arr.Elements))
	}
	if arr.Elements[1] != nil {
		t.Errorf("expected elision (nil) at index 1")
	}
	if _, ok := arr.Elements[2].(*ast.Assignment); !ok {
		t.Errorf("expected default-value Assignment at index 2, got %T", arr.Elements[2])
	}

	decl2 := prog.Statements[1].(*ast.VariableDeclaration)
	obj, ok := decl2.Declarators[0].Name.(*ast.Object)
	if !ok {
		t.Fatalf("expected Object pattern, got %T", decl2.Declarators[0].Name)
	}
	if len(obj.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(obj.Entries))
	}
}

// ---------- Binary operator precedence and n-ary flattening ----------

func TestBinaryPrecedence(t *testing.T) {
	prog, sink := parseProgram(t, `1 + 2 * 3;`)
	noDiagnostics(t, sink)
	if got := summarizeStmt(t, prog, 0); got != "binary(literal, binary(literal, literal))" {
		t.Errorf("got %s", got)
	}
}

func TestSamePrecedenceFlattensToOneNode(t *testing.T) {
	prog, sink := parseProgram(t, `1 + 2 + 3 + 4;`)
	noDiagnostics(t, sink)
	if got := summarizeStmt(t, prog, 0); got != "binary(literal, literal, literal, literal)" {
		t.Errorf("got %s", got)
	}
}

func TestMixedPrecedenceNesting(t *testing.T) {
	prog, sink := parseProgram(t, `1 * 2 + 3 * 4;`)
	noDiagnostics(t, sink)
	if got := summarizeStmt(t, prog, 0); got != "binary(binary(literal, literal), binary(literal, literal))" {
		t.Errorf("got %s", got)
	}
}

// ---------- Boundary behaviors (spec §8) ----------

func TestBoundaryLoneOperator(t *testing.T) {
	prog, sink := parseProgram(t, `^2`)
	if sink.Count() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", sink.Count())
	}
	d := sink.Iter()[0]
	if d.Code != diag.E001 || d.Where.Begin != 0 || d.Where.End != 1 {
		t.Errorf("expected E001 at [0,1), got %s at [%d,%d)", d.Code, d.Where.Begin, d.Where.End)
	}
	if got := summarizeStmt(t, prog, 0); got != "binary(?, literal)" {
		t.Errorf("got %s", got)
	}
}

func TestBoundaryTrailingOperator(t *testing.T) {
	prog, sink := parseProgram(t, `2+`)
	if sink.Count() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", sink.Count())
	}
	d := sink.Iter()[0]
	if d.Code != diag.E001 || d.Where.Begin != 1 || d.Where.End != 2 {
		t.Errorf("expected E001 at [1,2), got %s at [%d,%d)", d.Code, d.Where.Begin, d.Where.End)
	}
	if got := summarizeStmt(t, prog, 0); got != "binary(literal, ?)" {
		t.Errorf("got %s", got)
	}
}

func TestBoundaryRepeatedOperator(t *testing.T) {
	prog, sink := parseProgram(t, `2 & & & 2`)
	if sink.Count() != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", sink.Count())
	}
	d0, d1 := sink.Iter()[0], sink.Iter()[1]
	if d0.Code != diag.E001 || d0.Where.Begin != 2 || d0.Where.End != 3 {
		t.Errorf("expected first E001 at [2,3), got %s at [%d,%d)", d0.Code, d0.Where.Begin, d0.Where.End)
	}
	if d1.Code != diag.E001 || d1.Where.Begin != 4 || d1.Where.End != 5 {
		t.Errorf("expected second E001 at [4,5), got %s at [%d,%d)", d1.Code, d1.Where.Begin, d1.Where.End)
	}
	if got := summarizeStmt(t, prog, 0); got != "binary(literal, ?, ?, literal)" {
		t.Errorf("got %s", got)
	}
}

func TestBoundaryUnmatchedParensInnermostFirst(t *testing.T) {
	_, sink := parseProgram(t, `2 * (3 + (4`)
	if sink.Count() != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", sink.Count())
	}
	d0, d1 := sink.Iter()[0], sink.Iter()[1]
	if d0.Code != diag.E002 || d0.Where.Begin != 9 || d0.Where.End != 10 {
		t.Errorf("expected first E002 at [9,10) (innermost), got %s at [%d,%d)", d0.Code, d0.Where.Begin, d0.Where.End)
	}
	if d1.Code != diag.E002 || d1.Where.Begin != 4 || d1.Where.End != 5 {
		t.Errorf("expected second E002 at [4,5), got %s at [%d,%d)", d1.Code, d1.Where.Begin, d1.Where.End)
	}
}

func TestBoundaryEmptyInput(t *testing.T) {
	prog, sink := parseProgram(t, ``)
	noDiagnostics(t, sink)
	expectStmtCount(t, prog, 0)
}

// ---------- End-to-end scenarios (spec §8) ----------

func TestScenarioChainedAssignment(t *testing.T) {
	prog, sink := parseProgram(t, `x=y=z`)
	noDiagnostics(t, sink)
	if got := summarizeStmt(t, prog, 0); got != "assign(var x, assign(var y, var z))" {
		t.Errorf("got %s", got)
	}
}

func TestScenarioInvalidAssignmentTarget(t *testing.T) {
	prog, sink := parseProgram(t, `f()=x`)
	if sink.Count() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", sink.Count())
	}
	d := sink.Iter()[0]
	if d.Code != diag.E003 || d.Where.Begin != 0 || d.Where.End != 3 {
		t.Errorf("expected E003 covering 'f()' at [0,3), got %s at [%d,%d)", d.Code, d.Where.Begin, d.Where.End)
	}
	if got := summarizeStmt(t, prog, 0); got != "assign(call(var f), var x)" {
		t.Errorf("got %s", got)
	}
}

func TestScenarioTemplateWithThreeInterpolations(t *testing.T) {
	prog, sink := parseProgram(t, "`${one}${two}${three}`")
	noDiagnostics(t, sink)
	if got := summarizeStmt(t, prog, 0); got != "template(var one, var two, var three)" {
		t.Errorf("got %s", got)
	}
	stmt := prog.Statements[0].(*ast.ExpressionStatement)
	if stmt.Expr.Span().Begin != 0 || stmt.Expr.Span().End != 22 {
		t.Errorf("expected span [0,22), got [%d,%d)", stmt.Expr.Span().Begin, stmt.Expr.Span().End)
	}
}

// ---------- Assignment, update, and compound forms ----------

func TestCompoundAssignment(t *testing.T) {
	prog, sink := parseProgram(t, `x += 1;`)
	noDiagnostics(t, sink)
	if got := summarizeStmt(t, prog, 0); got != "upassign(var x, literal)" {
		t.Errorf("got %s", got)
	}
}

func TestUpdateExpressions(t *testing.T) {
	prog, sink := parseProgram(t, `x++; --y;`)
	noDiagnostics(t, sink)
	if got := summarizeStmt(t, prog, 0); got != "rwunarysuffix(var x)" {
		t.Errorf("got %s", got)
	}
	if got := summarizeStmt(t, prog, 1); got != "rwunary(var y)" {
		t.Errorf("got %s", got)
	}
}

// ---------- Calls, members, new ----------

func TestCallAndMemberChain(t *testing.T) {
	prog, sink := parseProgram(t, `a.b[c](d, e);`)
	noDiagnostics(t, sink)
	expr := exprOfStmt(t, prog, 0)
	call, ok := expr.(*ast.Call)
	if !ok {
		t.Fatalf("expected Call, got %T", expr)
	}
	if len(call.Arguments) != 2 {
		t.Errorf("expected 2 arguments, got %d", len(call.Arguments))
	}
	if _, ok := call.Callee.(*ast.Index); !ok {
		t.Errorf("expected Index callee, got %T", call.Callee)
	}
}

func TestNewWithAndWithoutArguments(t *testing.T) {
	prog, sink := parseProgram(t, `new Foo; new Bar(1, 2);`)
	noDiagnostics(t, sink)
	n0 := exprOfStmt(t, prog, 0).(*ast.New)
	if n0.HasArguments {
		t.Errorf("expected HasArguments=false for 'new Foo'")
	}
	n1 := exprOfStmt(t, prog, 1).(*ast.New)
	if !n1.HasArguments || len(n1.Arguments) != 2 {
		t.Errorf("expected HasArguments=true with 2 args, got %v/%d", n1.HasArguments, len(n1.Arguments))
	}
}

// ---------- Arrow functions ----------

func TestArrowFunctionSingleParamNoParens(t *testing.T) {
	prog, sink := parseProgram(t, `const f = x => x + 1;`)
	noDiagnostics(t, sink)
	decl := prog.Statements[0].(*ast.VariableDeclaration)
	arrow, ok := decl.Declarators[0].Init.(*ast.ArrowFunctionWithExpression)
	if !ok {
		t.Fatalf("expected ArrowFunctionWithExpression, got %T", decl.Declarators[0].Init)
	}
	if len(arrow.Params) != 1 {
		t.Errorf("expected 1 param, got %d", len(arrow.Params))
	}
}

func TestArrowFunctionParenthesizedParams(t *testing.T) {
	prog, sink := parseProgram(t, `const f = (a, b) => { return a + b; };`)
	noDiagnostics(t, sink)
	decl := prog.Statements[0].(*ast.VariableDeclaration)
	arrow, ok := decl.Declarators[0].Init.(*ast.ArrowFunctionWithStatements)
	if !ok {
		t.Fatalf("expected ArrowFunctionWithStatements, got %T", decl.Declarators[0].Init)
	}
	if len(arrow.Params) != 2 {
		t.Errorf("expected 2 params, got %d", len(arrow.Params))
	}
}

func TestAsyncArrowFunction(t *testing.T) {
	prog, sink := parseProgram(t, `const f = async (x) => x;`)
	noDiagnostics(t, sink)
	decl := prog.Statements[0].(*ast.VariableDeclaration)
	arrow, ok := decl.Declarators[0].Init.(*ast.ArrowFunctionWithExpression)
	if !ok {
		t.Fatalf("expected ArrowFunctionWithExpression, got %T", decl.Declarators[0].Init)
	}
	if arrow.Attributes != ast.AsyncAttr {
		t.Errorf("expected AsyncAttr, got %v", arrow.Attributes)
	}
}

func TestAsyncIdentifierArrowFunction(t *testing.T) {
	prog, sink := parseProgram(t, `const f = async x => x;`)
	noDiagnostics(t, sink)
	decl := prog.Statements[0].(*ast.VariableDeclaration)
	arrow, ok := decl.Declarators[0].Init.(*ast.ArrowFunctionWithExpression)
	if !ok {
		t.Fatalf("expected ArrowFunctionWithExpression, got %T", decl.Declarators[0].Init)
	}
	if arrow.Attributes != ast.AsyncAttr {
		t.Errorf("expected AsyncAttr, got %v", arrow.Attributes)
	}
}

func TestParenthesizedExpressionIsNotMistakenForArrow(t *testing.T) {
	prog, sink := parseProgram(t, `const f = (a, b);`)
	noDiagnostics(t, sink)
	decl := prog.Statements[0].(*ast.VariableDeclaration)
	if _, ok := decl.Declarators[0].Init.(*ast.ArrowFunctionWithExpression); ok {
		t.Fatalf("(a, b) with no arrow must not parse as an arrow function")
	}
	if got := ast.Summarize(decl.Declarators[0].Init); got != "binary(var a, var b)" {
		t.Errorf("got %s", got)
	}
}

func TestAsyncCallIsNotMistakenForArrow(t *testing.T) {
	prog, sink := parseProgram(t, `async(x);`)
	noDiagnostics(t, sink)
	expr := exprOfStmt(t, prog, 0)
	if _, ok := expr.(*ast.Call); !ok {
		t.Fatalf("expected Call (async used as a plain identifier), got %T", expr)
	}
}

// ---------- Statements ----------

func TestIfElse(t *testing.T) {
	prog, sink := parseProgram(t, `if (a) { b; } else { c; }`)
	noDiagnostics(t, sink)
	stmt, ok := prog.Statements[0].(*ast.IfStatement)
	if !ok {
		t.Fatalf("expected IfStatement, got %T", prog.Statements[0])
	}
	if stmt.Alternate == nil {
		t.Errorf("expected non-nil Alternate")
	}
}

func TestForClassicThreeClause(t *testing.T) {
	prog, sink := parseProgram(t, `for (let i = 0; i < 10; i++) {}`)
	noDiagnostics(t, sink)
	stmt, ok := prog.Statements[0].(*ast.ForStatement)
	if !ok {
		t.Fatalf("expected ForStatement, got %T", prog.Statements[0])
	}
	if _, ok := stmt.Init.(*ast.VariableDeclaration); !ok {
		t.Errorf("expected VariableDeclaration Init, got %T", stmt.Init)
	}
}

func TestForInAndForOf(t *testing.T) {
	prog, sink := parseProgram(t, `for (let k in obj) {} for (let v of arr) {}`)
	noDiagnostics(t, sink)
	if _, ok := prog.Statements[0].(*ast.ForInStatement); !ok {
		t.Errorf("expected ForInStatement, got %T", prog.Statements[0])
	}
	if _, ok := prog.Statements[1].(*ast.ForOfStatement); !ok {
		t.Errorf("expected ForOfStatement, got %T", prog.Statements[1])
	}
}

func TestForInDisambiguatesFromRelationalIn(t *testing.T) {
	prog, sink := parseProgram(t, `for (x in y) {}`)
	noDiagnostics(t, sink)
	if _, ok := prog.Statements[0].(*ast.ForInStatement); !ok {
		t.Fatalf("expected ForInStatement, got %T", prog.Statements[0])
	}
}

func TestSwitchStatement(t *testing.T) {
	prog, sink := parseProgram(t, `switch (x) { case 1: break; default: break; }`)
	noDiagnostics(t, sink)
	stmt, ok := prog.Statements[0].(*ast.SwitchStatement)
	if !ok {
		t.Fatalf("expected SwitchStatement, got %T", prog.Statements[0])
	}
	if len(stmt.Cases) != 2 {
		t.Fatalf("expected 2 cases, got %d", len(stmt.Cases))
	}
	if stmt.Cases[1].Test != nil {
		t.Errorf("expected default case to have nil Test")
	}
}

func TestTryCatchFinally(t *testing.T) {
	prog, sink := parseProgram(t, `try { a(); } catch (e) { b(); } finally { c(); }`)
	noDiagnostics(t, sink)
	stmt, ok := prog.Statements[0].(*ast.TryStatement)
	if !ok {
		t.Fatalf("expected TryStatement, got %T", prog.Statements[0])
	}
	if stmt.Handler == nil || stmt.Finalizer == nil {
		t.Errorf("expected both Handler and Finalizer")
	}
}

func TestTryCatchWithoutBinding(t *testing.T) {
	prog, sink := parseProgram(t, `try { a(); } catch { b(); }`)
	noDiagnostics(t, sink)
	stmt := prog.Statements[0].(*ast.TryStatement)
	if stmt.Handler.Param != nil {
		t.Errorf("expected nil catch Param, got %v", stmt.Handler.Param)
	}
}

func TestLabeledStatement(t *testing.T) {
	prog, sink := parseProgram(t, `outer: for (;;) { break outer; }`)
	noDiagnostics(t, sink)
	stmt, ok := prog.Statements[0].(*ast.LabeledStatement)
	if !ok {
		t.Fatalf("expected LabeledStatement, got %T", prog.Statements[0])
	}
	if stmt.Label.Name != "outer" {
		t.Errorf("expected label 'outer', got %q", stmt.Label.Name)
	}
}

func TestDebuggerAndEmptyStatements(t *testing.T) {
	prog, sink := parseProgram(t, `debugger; ;`)
	noDiagnostics(t, sink)
	if _, ok := prog.Statements[0].(*ast.DebuggerStatement); !ok {
		t.Errorf("expected DebuggerStatement, got %T", prog.Statements[0])
	}
	if _, ok := prog.Statements[1].(*ast.EmptyStatement); !ok {
		t.Errorf("expected EmptyStatement, got %T", prog.Statements[1])
	}
}

func TestFunctionDeclaration(t *testing.T) {
	prog, sink := parseProgram(t, `function add(a, b) { return a + b; }`)
	noDiagnostics(t, sink)
	decl, ok := prog.Statements[0].(*ast.FunctionDeclaration)
	if !ok {
		t.Fatalf("expected FunctionDeclaration, got %T", prog.Statements[0])
	}
	if decl.Name == nil || decl.Name.Name != "add" {
		t.Errorf("expected name 'add', got %v", decl.Name)
	}
	if len(decl.Params) != 2 {
		t.Errorf("expected 2 params, got %d", len(decl.Params))
	}
}

func TestAsyncFunctionDeclaration(t *testing.T) {
	prog, sink := parseProgram(t, `async function f() {}`)
	noDiagnostics(t, sink)
	decl, ok := prog.Statements[0].(*ast.FunctionDeclaration)
	if !ok {
		t.Fatalf("expected FunctionDeclaration, got %T", prog.Statements[0])
	}
	if decl.Attributes != ast.AsyncAttr {
		t.Errorf("expected AsyncAttr, got %v", decl.Attributes)
	}
}

func TestClassDeclarationWithMethodsAndStaticMember(t *testing.T) {
	prog, sink := parseProgram(t, `class Foo extends Bar { constructor() {} static bar() {} get x() {} }`)
	noDiagnostics(t, sink)
	decl, ok := prog.Statements[0].(*ast.ClassDeclaration)
	if !ok {
		t.Fatalf("expected ClassDeclaration, got %T", prog.Statements[0])
	}
	if decl.SuperClass == nil {
		t.Errorf("expected non-nil SuperClass")
	}
	if len(decl.Body.Members) != 3 {
		t.Fatalf("expected 3 members, got %d", len(decl.Body.Members))
	}
	if !decl.Body.Members[1].Static {
		t.Errorf("expected second member 'bar' to be static")
	}
}

func TestImportDeclaration(t *testing.T) {
	prog, sink := parseProgram(t, `import { a, b as c } from "mod";`)
	noDiagnostics(t, sink)
	decl, ok := prog.Statements[0].(*ast.ImportDeclaration)
	if !ok {
		t.Fatalf("expected ImportDeclaration, got %T", prog.Statements[0])
	}
	if decl.ModulePath != "mod" {
		t.Errorf("expected module path 'mod', got %q", decl.ModulePath)
	}
	if len(decl.Specifiers) != 2 {
		t.Fatalf("expected 2 specifiers, got %d", len(decl.Specifiers))
	}
	if decl.Specifiers[0].Local.Name != "a" {
		t.Errorf("expected first specifier local name 'a', got %q", decl.Specifiers[0].Local.Name)
	}
	if decl.Specifiers[1].Local.Name != "c" {
		t.Errorf("expected second specifier local name 'c' (renamed via 'as'), got %q", decl.Specifiers[1].Local.Name)
	}
}

func TestExportDeclaration(t *testing.T) {
	prog, sink := parseProgram(t, `export const x = 1;`)
	noDiagnostics(t, sink)
	decl, ok := prog.Statements[0].(*ast.ExportDeclaration)
	if !ok {
		t.Fatalf("expected ExportDeclaration, got %T", prog.Statements[0])
	}
	if _, ok := decl.Decl.(*ast.VariableDeclaration); !ok {
		t.Errorf("expected wrapped VariableDeclaration, got %T", decl.Decl)
	}
}

// ---------- Object/array literals and spread ----------

func TestObjectLiteralShorthandAndComputed(t *testing.T) {
	prog, sink := parseProgram(t, `const o = { x, [y]: 1, z: 2, ...rest };`)
	noDiagnostics(t, sink)
	decl := prog.Statements[0].(*ast.VariableDeclaration)
	obj, ok := decl.Declarators[0].Init.(*ast.Object)
	if !ok {
		t.Fatalf("expected Object, got %T", decl.Declarators[0].Init)
	}
	if len(obj.Entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(obj.Entries))
	}
	if obj.Entries[3].Property != nil {
		t.Errorf("expected spread entry to have nil Property")
	}
}

func TestArrayLiteralWithElisionAndSpread(t *testing.T) {
	prog, sink := parseProgram(t, `const a = [1, , ...rest];`)
	noDiagnostics(t, sink)
	decl := prog.Statements[0].(*ast.VariableDeclaration)
	arr, ok := decl.Declarators[0].Init.(*ast.Array)
	if !ok {
		t.Fatalf("expected Array, got %T", decl.Declarators[0].Init)
	}
	if len(arr.Elements) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(arr.Elements))
	}
	if arr.Elements[1] != nil {
		t.Errorf("expected elision at index 1")
	}
	if _, ok := arr.Elements[2].(*ast.Spread); !ok {
		t.Errorf("expected Spread at index 2, got %T", arr.Elements[2])
	}
}

// ---------- Variable events ----------

// variableEvents filters out the EnterScope/ExitScope bracketing events, for
// tests that only care about the declaration/use/assignment events ParseProgram
// emits for a given input.
func variableEvents(events []ast.VariableEvent) []ast.VariableEvent {
	var out []ast.VariableEvent
	for _, e := range events {
		if e.Kind == ast.EventEnterScope || e.Kind == ast.EventExitScope {
			continue
		}
		out = append(out, e)
	}
	return out
}

func TestVariableEventsForDeclarationAndUse(t *testing.T) {
	sink := diag.NewSink()
	p := New(`let x = y;`, sink)
	_, allEvents := p.ParseProgram()
	noDiagnostics(t, sink)
	events := variableEvents(allEvents)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Kind != ast.EventDeclarationLet || events[0].Identifier.Name != "x" {
		t.Errorf("expected EventDeclarationLet for x, got %v %q", events[0].Kind, events[0].Identifier.Name)
	}
	if events[1].Kind != ast.EventUse || events[1].Identifier.Name != "y" {
		t.Errorf("expected EventUse for y, got %v %q", events[1].Kind, events[1].Identifier.Name)
	}
}

func TestVariableEventsBracketFunctionBodyInTwoScopes(t *testing.T) {
	sink := diag.NewSink()
	p := New(`function f(a) { let b; }`, sink)
	_, events := p.ParseProgram()
	noDiagnostics(t, sink)
	// Program scope, then the function's param scope, then the body's own
	// block scope — parseFunctionDeclaration and parseBlockStatement each
	// bracket their own region independently (§4.6's function-scope /
	// block-scope split).
	var kinds []ast.VariableEventKind
	for _, e := range events {
		kinds = append(kinds, e.Kind)
	}
	want := []ast.VariableEventKind{
		ast.EventEnterScope,
		ast.EventDeclarationFunction,
		ast.EventEnterScope,
		ast.EventDeclarationParameter,
		ast.EventEnterScope,
		ast.EventDeclarationLet,
		ast.EventExitScope,
		ast.EventExitScope,
		ast.EventExitScope,
	}
	if len(kinds) != len(want) {
		t.Fatalf("expected %v, got %v", want, kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("event %d: expected %v, got %v (full: %v)", i, want[i], kinds[i], kinds)
		}
	}
}

func TestVariableEventsForFunctionParameters(t *testing.T) {
	sink := diag.NewSink()
	p := New(`function f(a, b) {}`, sink)
	_, events := p.ParseProgram()
	noDiagnostics(t, sink)
	var paramNames []string
	for _, e := range events {
		if e.Kind == ast.EventDeclarationParameter {
			paramNames = append(paramNames, e.Identifier.Name)
		}
	}
	if len(paramNames) != 2 || paramNames[0] != "a" || paramNames[1] != "b" {
		t.Errorf("expected parameter events for a, b, got %v", paramNames)
	}
}

func TestVariableEventAssignmentForDestructuredTarget(t *testing.T) {
	sink := diag.NewSink()
	p := New(`[a, b] = [1, 2];`, sink)
	_, events := p.ParseProgram()
	noDiagnostics(t, sink)
	var assigned []string
	for _, e := range events {
		if e.Kind == ast.EventAssignment {
			assigned = append(assigned, e.Identifier.Name)
		}
	}
	if len(assigned) != 2 || assigned[0] != "a" || assigned[1] != "b" {
		t.Errorf("expected assignment events for a, b, got %v", assigned)
	}
}

// ---------- Error recovery keeps parsing the rest of the program ----------

func TestErrorRecoveryContinuesToNextStatement(t *testing.T) {
	prog, sink := parseProgram(t, "^2;\nlet y = 1;")
	if sink.Count() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", sink.Count())
	}
	expectStmtCount(t, prog, 2)
	if _, ok := prog.Statements[1].(*ast.VariableDeclaration); !ok {
		t.Errorf("expected parsing to continue into the next statement, got %T", prog.Statements[1])
	}
}

// ---------- (e) == e (minus outer span) per the invariant in §8 ----------

func TestParenthesesDoNotChangeShape(t *testing.T) {
	prog1, sink1 := parseProgram(t, `1 + 2 * 3;`)
	noDiagnostics(t, sink1)
	prog2, sink2 := parseProgram(t, `(1 + 2 * 3);`)
	noDiagnostics(t, sink2)
	if summarizeStmt(t, prog1, 0) != summarizeStmt(t, prog2, 0) {
		t.Errorf("parenthesizing an expression must not change its summarized shape")
	}
}
