// Package ast defines the tagged-variant expression tree, the statement
// tree built around it, and the per-parse arena that owns both. Every node
// carries a byte-offset source.Range; nothing in this package resolves a
// range to a line/column — that is the Locator's job.
package ast

import "github.com/example/jslint/source"

// Node is implemented by every AST node, expression or statement.
type Node interface {
	Span() source.Range
}

// Statement is implemented by every statement-level node.
type Statement interface {
	Node
	statementNode()
}

// Expression is implemented by every one of the tagged variants in the
// expression grammar (§3): Invalid, Literal, Variable, UnaryOperator,
// RwUnaryPrefix, RwUnarySuffix, BinaryOperator, Assignment,
// UpdatingAssignment, Conditional, Dot, Index, Call, New, Array, Object,
// Spread, Template, Await, Function, NamedFunction,
// ArrowFunctionWithExpression, ArrowFunctionWithStatements, Super, Import.
type Expression interface {
	Node
	expressionNode()
}

// Identifier is a wrapper around a byte range into source; equality is by
// text, per §3.
type Identifier struct {
	Range source.Range
	Name  string
}

func (id Identifier) Span() source.Range { return id.Range }

// FunctionAttributes distinguishes ordinary functions/arrows from async
// ones; every function/arrow node carries one (§3).
type FunctionAttributes int

const (
	Normal FunctionAttributes = iota
	AsyncAttr
)

// Program is the root of a parse.
type Program struct {
	Statements []Statement
	Range      source.Range
}

func (p *Program) Span() source.Range { return p.Range }
