package ast

import "github.com/example/jslint/source"

// VariableDeclarationKind distinguishes var/let/const/function/class
// declarations for scope-analysis purposes (§4.6).
type VariableDeclarationKind int

const (
	KindVar VariableDeclarationKind = iota
	KindLet
	KindConst
	KindFunction
	KindClass
	KindParameter
	KindImport
)

type VariableDeclarator struct {
	Range source.Range
	Name  Expression // Variable, Array, or Object (destructuring target)
	Init  Expression // may be nil
}

type VariableDeclaration struct {
	Range        source.Range
	Kind         VariableDeclarationKind
	Declarators  []*VariableDeclarator
}

type ExpressionStatement struct {
	Range source.Range
	Expr  Expression
}

type BlockStatement struct {
	Range      source.Range
	Statements []Statement
}

type ReturnStatement struct {
	Range source.Range
	Value Expression // may be nil
}

type IfStatement struct {
	Range       source.Range
	Test        Expression
	Consequent  Statement
	Alternate   Statement // may be nil
}

type WhileStatement struct {
	Range source.Range
	Test  Expression
	Body  Statement
}

type DoWhileStatement struct {
	Range source.Range
	Body  Statement
	Test  Expression
}

type ForStatement struct {
	Range  source.Range
	Init   Node // *VariableDeclaration, Expression, or nil
	Test   Expression
	Update Expression
	Body   Statement
}

type ForInStatement struct {
	Range source.Range
	Left  Node // *VariableDeclaration or Expression
	Right Expression
	Body  Statement
}

type ForOfStatement struct {
	Range source.Range
	Left  Node
	Right Expression
	Body  Statement
	Await bool
}

type BreakStatement struct {
	Range source.Range
	Label *Identifier // may be nil
}

type ContinueStatement struct {
	Range source.Range
	Label *Identifier // may be nil
}

type SwitchCase struct {
	Range source.Range
	Test  Expression // nil for default
	Body  []Statement
}

type SwitchStatement struct {
	Range        source.Range
	Discriminant Expression
	Cases        []*SwitchCase
}

type ThrowStatement struct {
	Range    source.Range
	Argument Expression
}

type CatchClause struct {
	Range source.Range
	Param Expression // may be nil (optional catch binding)
	Body  *BlockStatement
}

type TryStatement struct {
	Range     source.Range
	Block     *BlockStatement
	Handler   *CatchClause // may be nil
	Finalizer *BlockStatement // may be nil
}

type FunctionDeclaration struct {
	Range      source.Range
	Name       *Identifier // nil only for a default-export anonymous function
	Attributes FunctionAttributes
	Generator  bool
	Params     []Expression
	Body       *BlockStatement
}

type MethodDefinition struct {
	Range    source.Range
	Key      Expression
	Value    *Function
	Kind     string // "constructor", "method", "get", "set"
	Static   bool
	Computed bool
}

type ClassBody struct {
	Range   source.Range
	Members []*MethodDefinition
}

type ClassDeclaration struct {
	Range      source.Range
	Name       *Identifier
	SuperClass Expression // may be nil
	Body       *ClassBody
}

type LabeledStatement struct {
	Range source.Range
	Label Identifier
	Body  Statement
}

type DebuggerStatement struct {
	Range source.Range
}

type EmptyStatement struct {
	Range source.Range
}

// ImportSpecifier binds one imported name (default, namespace, or named).
type ImportSpecifier struct {
	Local Identifier
}

type ImportDeclaration struct {
	Range       source.Range
	Specifiers  []ImportSpecifier
	ModulePath  string
}

type ExportDeclaration struct {
	Range source.Range
	Decl  Statement // may be nil for `export default <expr>` / re-exports
}

func (s *VariableDeclaration) Span() source.Range { return s.Range }
func (s *ExpressionStatement) Span() source.Range { return s.Range }
func (s *BlockStatement) Span() source.Range      { return s.Range }
func (s *ReturnStatement) Span() source.Range     { return s.Range }
func (s *IfStatement) Span() source.Range         { return s.Range }
func (s *WhileStatement) Span() source.Range      { return s.Range }
func (s *DoWhileStatement) Span() source.Range    { return s.Range }
func (s *ForStatement) Span() source.Range        { return s.Range }
func (s *ForInStatement) Span() source.Range      { return s.Range }
func (s *ForOfStatement) Span() source.Range      { return s.Range }
func (s *BreakStatement) Span() source.Range      { return s.Range }
func (s *ContinueStatement) Span() source.Range   { return s.Range }
func (s *SwitchStatement) Span() source.Range     { return s.Range }
func (s *ThrowStatement) Span() source.Range      { return s.Range }
func (s *TryStatement) Span() source.Range        { return s.Range }
func (s *FunctionDeclaration) Span() source.Range { return s.Range }
func (s *ClassDeclaration) Span() source.Range    { return s.Range }
func (s *LabeledStatement) Span() source.Range    { return s.Range }
func (s *DebuggerStatement) Span() source.Range   { return s.Range }
func (s *EmptyStatement) Span() source.Range      { return s.Range }
func (s *ImportDeclaration) Span() source.Range   { return s.Range }
func (s *ExportDeclaration) Span() source.Range   { return s.Range }

func (*VariableDeclaration) statementNode() {}
func (*ExpressionStatement) statementNode() {}
func (*BlockStatement) statementNode()      {}
func (*ReturnStatement) statementNode()     {}
func (*IfStatement) statementNode()         {}
func (*WhileStatement) statementNode()      {}
func (*DoWhileStatement) statementNode()    {}
func (*ForStatement) statementNode()        {}
func (*ForInStatement) statementNode()      {}
func (*ForOfStatement) statementNode()      {}
func (*BreakStatement) statementNode()      {}
func (*ContinueStatement) statementNode()   {}
func (*SwitchStatement) statementNode()     {}
func (*ThrowStatement) statementNode()      {}
func (*TryStatement) statementNode()        {}
func (*FunctionDeclaration) statementNode() {}
func (*ClassDeclaration) statementNode()    {}
func (*ClassDeclaration) expressionNode()   {}
func (*LabeledStatement) statementNode()    {}
func (*DebuggerStatement) statementNode()   {}
func (*EmptyStatement) statementNode()      {}
func (*ImportDeclaration) statementNode()   {}
func (*ExportDeclaration) statementNode()   {}
