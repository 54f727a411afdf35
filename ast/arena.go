package ast

// pool is a minimal bump allocator for one node type: it hands out
// pointers into a growing slice instead of one `new(T)` per node, so a
// whole parse's nodes live in a handful of backing arrays that are dropped
// together at the next parse. Grounded on the per-type arena pattern in
// T14Raptor-go-fAST's nodeAllocator/miniArena, adapted with Go generics
// instead of one hand-written arena struct per node type.
type pool[T any] struct {
	chunks [][]T
}

const poolChunkSize = 64

func (p *pool[T]) new() *T {
	if len(p.chunks) == 0 || len(p.chunks[len(p.chunks)-1]) == cap(p.chunks[len(p.chunks)-1]) {
		p.chunks = append(p.chunks, make([]T, 0, poolChunkSize))
	}
	last := &p.chunks[len(p.chunks)-1]
	*last = append(*last, *new(T))
	return &(*last)[len(*last)-1]
}

// Arena owns every node allocated during one parse. The document model
// drops the previous parse's Arena wholesale (by simply discarding the
// pointer) when it starts the next one (§5, invariant I6); nothing in this
// package needs an explicit Release, since there are no finalizers or
// external resources to free, but the ownership boundary is a real one: a
// node allocated from Arena A must never be reachable from an AST built
// from Arena B.
type Arena struct {
	invalid                     pool[Invalid]
	literal                     pool[Literal]
	variable                    pool[Variable]
	unaryOperator               pool[UnaryOperator]
	rwUnaryPrefix               pool[RwUnaryPrefix]
	rwUnarySuffix               pool[RwUnarySuffix]
	binaryOperator              pool[BinaryOperator]
	assignment                  pool[Assignment]
	updatingAssignment          pool[UpdatingAssignment]
	conditional                 pool[Conditional]
	dot                         pool[Dot]
	index                       pool[Index]
	call                        pool[Call]
	new_                        pool[New]
	array                       pool[Array]
	object                      pool[Object]
	spread                      pool[Spread]
	template                    pool[Template]
	await                       pool[Await]
	function                    pool[Function]
	namedFunction               pool[NamedFunction]
	arrowFunctionWithExpression pool[ArrowFunctionWithExpression]
	arrowFunctionWithStatements pool[ArrowFunctionWithStatements]
	super_                      pool[Super]
	import_                     pool[Import]

	variableDeclaration pool[VariableDeclaration]
	variableDeclarator  pool[VariableDeclarator]
	expressionStatement pool[ExpressionStatement]
	blockStatement      pool[BlockStatement]
	returnStatement     pool[ReturnStatement]
	ifStatement         pool[IfStatement]
	whileStatement      pool[WhileStatement]
	doWhileStatement    pool[DoWhileStatement]
	forStatement        pool[ForStatement]
	forInStatement      pool[ForInStatement]
	forOfStatement      pool[ForOfStatement]
	breakStatement      pool[BreakStatement]
	continueStatement   pool[ContinueStatement]
	switchStatement     pool[SwitchStatement]
	switchCase          pool[SwitchCase]
	throwStatement      pool[ThrowStatement]
	tryStatement        pool[TryStatement]
	catchClause         pool[CatchClause]
	functionDeclaration pool[FunctionDeclaration]
	classDeclaration    pool[ClassDeclaration]
	classBody           pool[ClassBody]
	methodDefinition    pool[MethodDefinition]
	labeledStatement    pool[LabeledStatement]
	debuggerStatement   pool[DebuggerStatement]
	emptyStatement      pool[EmptyStatement]
	importDeclaration   pool[ImportDeclaration]
	exportDeclaration   pool[ExportDeclaration]
	program             pool[Program]
}

// NewArena returns a fresh, empty Arena.
func NewArena() *Arena {
	return &Arena{}
}

func (a *Arena) NewInvalid() *Invalid { return a.invalid.new() }
func (a *Arena) NewLiteral() *Literal { return a.literal.new() }
func (a *Arena) NewVariable() *Variable { return a.variable.new() }
func (a *Arena) NewUnaryOperator() *UnaryOperator { return a.unaryOperator.new() }
func (a *Arena) NewRwUnaryPrefix() *RwUnaryPrefix { return a.rwUnaryPrefix.new() }
func (a *Arena) NewRwUnarySuffix() *RwUnarySuffix { return a.rwUnarySuffix.new() }
func (a *Arena) NewBinaryOperator() *BinaryOperator { return a.binaryOperator.new() }
func (a *Arena) NewAssignment() *Assignment { return a.assignment.new() }
func (a *Arena) NewUpdatingAssignment() *UpdatingAssignment { return a.updatingAssignment.new() }
func (a *Arena) NewConditional() *Conditional { return a.conditional.new() }
func (a *Arena) NewDot() *Dot { return a.dot.new() }
func (a *Arena) NewIndex() *Index { return a.index.new() }
func (a *Arena) NewCall() *Call { return a.call.new() }
func (a *Arena) NewNew() *New { return a.new_.new() }
func (a *Arena) NewArray() *Array { return a.array.new() }
func (a *Arena) NewObject() *Object { return a.object.new() }
func (a *Arena) NewSpread() *Spread { return a.spread.new() }
func (a *Arena) NewTemplate() *Template { return a.template.new() }
func (a *Arena) NewAwait() *Await { return a.await.new() }
func (a *Arena) NewFunction() *Function { return a.function.new() }
func (a *Arena) NewNamedFunction() *NamedFunction { return a.namedFunction.new() }
func (a *Arena) NewArrowFunctionWithExpression() *ArrowFunctionWithExpression {
	return a.arrowFunctionWithExpression.new()
}
func (a *Arena) NewArrowFunctionWithStatements() *ArrowFunctionWithStatements {
	return a.arrowFunctionWithStatements.new()
}
func (a *Arena) NewSuper() *Super { return a.super_.new() }
func (a *Arena) NewImport() *Import { return a.import_.new() }

func (a *Arena) NewVariableDeclaration() *VariableDeclaration { return a.variableDeclaration.new() }
func (a *Arena) NewVariableDeclarator() *VariableDeclarator { return a.variableDeclarator.new() }
func (a *Arena) NewExpressionStatement() *ExpressionStatement { return a.expressionStatement.new() }
func (a *Arena) NewBlockStatement() *BlockStatement { return a.blockStatement.new() }
func (a *Arena) NewReturnStatement() *ReturnStatement { return a.returnStatement.new() }
func (a *Arena) NewIfStatement() *IfStatement { return a.ifStatement.new() }
func (a *Arena) NewWhileStatement() *WhileStatement { return a.whileStatement.new() }
func (a *Arena) NewDoWhileStatement() *DoWhileStatement { return a.doWhileStatement.new() }
func (a *Arena) NewForStatement() *ForStatement { return a.forStatement.new() }
func (a *Arena) NewForInStatement() *ForInStatement { return a.forInStatement.new() }
func (a *Arena) NewForOfStatement() *ForOfStatement { return a.forOfStatement.new() }
func (a *Arena) NewBreakStatement() *BreakStatement { return a.breakStatement.new() }
func (a *Arena) NewContinueStatement() *ContinueStatement { return a.continueStatement.new() }
func (a *Arena) NewSwitchStatement() *SwitchStatement { return a.switchStatement.new() }
func (a *Arena) NewSwitchCase() *SwitchCase { return a.switchCase.new() }
func (a *Arena) NewThrowStatement() *ThrowStatement { return a.throwStatement.new() }
func (a *Arena) NewTryStatement() *TryStatement { return a.tryStatement.new() }
func (a *Arena) NewCatchClause() *CatchClause { return a.catchClause.new() }
func (a *Arena) NewFunctionDeclaration() *FunctionDeclaration { return a.functionDeclaration.new() }
func (a *Arena) NewClassDeclaration() *ClassDeclaration { return a.classDeclaration.new() }
func (a *Arena) NewClassBody() *ClassBody { return a.classBody.new() }
func (a *Arena) NewMethodDefinition() *MethodDefinition { return a.methodDefinition.new() }
func (a *Arena) NewLabeledStatement() *LabeledStatement { return a.labeledStatement.new() }
func (a *Arena) NewDebuggerStatement() *DebuggerStatement { return a.debuggerStatement.new() }
func (a *Arena) NewEmptyStatement() *EmptyStatement { return a.emptyStatement.new() }
func (a *Arena) NewImportDeclaration() *ImportDeclaration { return a.importDeclaration.new() }
func (a *Arena) NewExportDeclaration() *ExportDeclaration { return a.exportDeclaration.new() }
func (a *Arena) NewProgram() *Program { return a.program.new() }
