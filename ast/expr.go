package ast

import "github.com/example/jslint/source"

// LiteralKind discriminates the kind of a Literal's raw text, for
// consumers that want it (e.g. a future constant-folding pass); the
// summarize()-equivalent operation ignores it, matching the original's
// "literal" text regardless of subtype.
type LiteralKind int

const (
	NumberLiteral LiteralKind = iota
	StringLiteral
	BooleanLiteral
	NullLiteral
	UndefinedLiteral
	RegExpLiteral
	BigIntLiteral
)

// Invalid is a placeholder synthesized during error recovery: a missing
// operand, the inside of an unmatched parenthesis, or similar. It may have
// a zero-length span sitting at its parent's boundary (§3 I2).
type Invalid struct {
	Range source.Range
}

// Literal covers every JS literal token: numbers, strings, booleans,
// null, undefined, regexes, and BigInts. Raw is the token's literal text.
type Literal struct {
	Range source.Range
	Kind  LiteralKind
	Raw   string
}

// Variable is a read of an identifier.
type Variable struct {
	Range      source.Range
	Identifier Identifier
}

// UnaryOperator is a non-mutating prefix operator: !, ~, +, -, typeof,
// void, delete, await is its own node kind (see Await).
type UnaryOperator struct {
	Range    source.Range
	Operator string
	Child    Expression
}

// RwUnaryPrefix is a "read-write" prefix operator: ++x or --x.
type RwUnaryPrefix struct {
	Range    source.Range
	Operator string
	Child    Expression
}

// RwUnarySuffix is a "read-write" suffix operator: x++ or x--.
type RwUnarySuffix struct {
	Range    source.Range
	Operator string
	Child    Expression
}

// BinaryOperator is an n-ary infix-operator node. Consecutive operators at
// the same precedence (notably +/- and the comma operator) flatten into
// one node; the specific operator identity is deliberately not recorded —
// only precedence and associativity shaped the tree (§4.4).
type BinaryOperator struct {
	Range    source.Range
	Children []Expression
}

// Assignment is a plain `=` assignment.
type Assignment struct {
	Range source.Range
	Left  Expression
	Right Expression
}

// UpdatingAssignment is a compound assignment: += -= *= /= %= **= <<= >>=
// >>>= &= |= ^= &&= ||= ??=.
type UpdatingAssignment struct {
	Range    source.Range
	Operator string
	Left     Expression
	Right    Expression
}

// Conditional is `test ? consequent : alternate`.
type Conditional struct {
	Range      source.Range
	Test       Expression
	Consequent Expression
	Alternate  Expression
}

// Dot is `object.property`; Property is always a plain identifier name
// (never computed — that's Index).
type Dot struct {
	Range    source.Range
	Object   Expression
	Property Identifier
}

// Index is `object[index]`.
type Index struct {
	Range  source.Range
	Object Expression
	Index  Expression
}

// Call is `callee(arguments...)`.
type Call struct {
	Range     source.Range
	Callee    Expression
	Arguments []Expression
}

// New is `new callee` or `new callee(arguments...)`. HasArguments
// distinguishes the two: `new X` has no parens at all, `new X()` does.
type New struct {
	Range        source.Range
	Callee       Expression
	Arguments    []Expression
	HasArguments bool
}

// Array is an array literal; a nil element marks an elision hole
// (`[1,,3]`). When used as an assignment/destructuring target, elements
// may themselves be Assignment (default) or Spread (rest) nodes.
type Array struct {
	Range    source.Range
	Elements []Expression
}

// ObjectEntry is one entry of an Object literal. Property == nil marks a
// spread entry (the spread expression is then stored in Value, usually a
// *Spread); a shorthand `{x}` stores the identifier as both Property
// (Literal) and Value (Variable), per §3.
type ObjectEntry struct {
	Property Expression
	Value    Expression
}

// Object is an object literal or, in a destructuring target position, an
// object pattern.
type Object struct {
	Range   source.Range
	Entries []ObjectEntry
}

// Spread is `...expr`: an argument, array/object element, or rest
// parameter.
type Spread struct {
	Range source.Range
	Child Expression
}

// Template is a template literal with at least one substitution; a
// substitution-free `` `...` `` parses as a Literal instead (§4.4).
type Template struct {
	Range    source.Range
	Children []Expression
}

// Await is `await expr`.
type Await struct {
	Range source.Range
	Child Expression
}

// Function is an anonymous function expression.
type Function struct {
	Range      source.Range
	Attributes FunctionAttributes
	Generator  bool
	Params     []Expression
	Body       []Statement
}

// NamedFunction is a function expression or declaration with a name.
type NamedFunction struct {
	Range      source.Range
	Identifier Identifier
	Attributes FunctionAttributes
	Generator  bool
	Params     []Expression
	Body       []Statement
}

// ArrowFunctionWithExpression is `(params) => expr`.
type ArrowFunctionWithExpression struct {
	Range      source.Range
	Attributes FunctionAttributes
	Params     []Expression
	Body       Expression
}

// ArrowFunctionWithStatements is `(params) => { ...statements }`.
type ArrowFunctionWithStatements struct {
	Range      source.Range
	Attributes FunctionAttributes
	Params     []Expression
	Body       []Statement
}

// Super is the bare `super` keyword (as in `super.method()` or
// `super(...)`).
type Super struct {
	Range source.Range
}

// Import is the bare `import` keyword used as an expression (dynamic
// `import(...)` or `import.meta`).
type Import struct {
	Range source.Range
}

func (e *Invalid) Span() source.Range                     { return e.Range }
func (e *Literal) Span() source.Range                     { return e.Range }
func (e *Variable) Span() source.Range                    { return e.Range }
func (e *UnaryOperator) Span() source.Range                { return e.Range }
func (e *RwUnaryPrefix) Span() source.Range                { return e.Range }
func (e *RwUnarySuffix) Span() source.Range                { return e.Range }
func (e *BinaryOperator) Span() source.Range                { return e.Range }
func (e *Assignment) Span() source.Range                    { return e.Range }
func (e *UpdatingAssignment) Span() source.Range             { return e.Range }
func (e *Conditional) Span() source.Range                    { return e.Range }
func (e *Dot) Span() source.Range                            { return e.Range }
func (e *Index) Span() source.Range                          { return e.Range }
func (e *Call) Span() source.Range                           { return e.Range }
func (e *New) Span() source.Range                            { return e.Range }
func (e *Array) Span() source.Range                          { return e.Range }
func (e *Object) Span() source.Range                         { return e.Range }
func (e *Spread) Span() source.Range                         { return e.Range }
func (e *Template) Span() source.Range                       { return e.Range }
func (e *Await) Span() source.Range                          { return e.Range }
func (e *Function) Span() source.Range                       { return e.Range }
func (e *NamedFunction) Span() source.Range                  { return e.Range }
func (e *ArrowFunctionWithExpression) Span() source.Range    { return e.Range }
func (e *ArrowFunctionWithStatements) Span() source.Range    { return e.Range }
func (e *Super) Span() source.Range                          { return e.Range }
func (e *Import) Span() source.Range                         { return e.Range }

func (*Invalid) expressionNode()                     {}
func (*Literal) expressionNode()                     {}
func (*Variable) expressionNode()                    {}
func (*UnaryOperator) expressionNode()                {}
func (*RwUnaryPrefix) expressionNode()                {}
func (*RwUnarySuffix) expressionNode()                {}
func (*BinaryOperator) expressionNode()                {}
func (*Assignment) expressionNode()                    {}
func (*UpdatingAssignment) expressionNode()             {}
func (*Conditional) expressionNode()                    {}
func (*Dot) expressionNode()                            {}
func (*Index) expressionNode()                          {}
func (*Call) expressionNode()                           {}
func (*New) expressionNode()                            {}
func (*Array) expressionNode()                          {}
func (*Object) expressionNode()                         {}
func (*Spread) expressionNode()                         {}
func (*Template) expressionNode()                       {}
func (*Await) expressionNode()                          {}
func (*Function) expressionNode()                       {}
func (*NamedFunction) expressionNode()                  {}
func (*ArrowFunctionWithExpression) expressionNode()    {}
func (*ArrowFunctionWithStatements) expressionNode()    {}
func (*Super) expressionNode()                          {}
func (*Import) expressionNode()                         {}
