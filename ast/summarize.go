package ast

import (
	"fmt"
	"strings"
)

// Summarize renders an Expression tree as a compact textual shape for
// tests, mirroring the original quick-lint-js test suite's summarize()
// function variant-for-variant (§8: "summarize(parse(e))"). Every
// Expression variant is covered; an unhandled one is an implementation
// bug, not a recoverable condition — it panics directly rather than going
// through the invariant package, since ast stays on the standard library
// plus its sibling packages (§9 "ambient stack placement").
func Summarize(e Expression) string {
	if e == nil {
		return "?"
	}
	switch e := e.(type) {
	case *Invalid:
		return "?"
	case *Literal:
		return "literal"
	case *Variable:
		return "var " + e.Identifier.Name
	case *UnaryOperator:
		return "unary(" + Summarize(e.Child) + ")"
	case *RwUnaryPrefix:
		return "rwunary(" + Summarize(e.Child) + ")"
	case *RwUnarySuffix:
		return "rwunarysuffix(" + Summarize(e.Child) + ")"
	case *BinaryOperator:
		return "binary(" + joinSummarize(e.Children) + ")"
	case *Assignment:
		return "assign(" + joinSummarize([]Expression{e.Left, e.Right}) + ")"
	case *UpdatingAssignment:
		return "upassign(" + joinSummarize([]Expression{e.Left, e.Right}) + ")"
	case *Conditional:
		return "cond(" + Summarize(e.Test) + ", " + Summarize(e.Consequent) + ", " + Summarize(e.Alternate) + ")"
	case *Dot:
		return "dot(" + Summarize(e.Object) + ", " + e.Property.Name + ")"
	case *Index:
		return "index(" + joinSummarize([]Expression{e.Object, e.Index}) + ")"
	case *Call:
		children := append([]Expression{e.Callee}, e.Arguments...)
		return "call(" + joinSummarize(children) + ")"
	case *New:
		children := []Expression{e.Callee}
		if e.HasArguments {
			children = append(children, e.Arguments...)
		}
		return "new(" + joinSummarize(children) + ")"
	case *Array:
		return "array(" + joinSummarize(e.Elements) + ")"
	case *Object:
		var parts []string
		for _, entry := range e.Entries {
			if entry.Property != nil {
				parts = append(parts, Summarize(entry.Property))
			}
			parts = append(parts, Summarize(entry.Value))
		}
		return "object(" + strings.Join(parts, ", ") + ")"
	case *Spread:
		return "spread(" + Summarize(e.Child) + ")"
	case *Template:
		return "template(" + joinSummarize(e.Children) + ")"
	case *Await:
		return "await(" + Summarize(e.Child) + ")"
	case *Function:
		return "function"
	case *NamedFunction:
		return "function " + e.Identifier.Name
	case *ArrowFunctionWithExpression:
		children := append(append([]Expression{}, e.Params...), e.Body)
		return attributePrefix(e.Attributes) + "arrowexpr(" + joinSummarize(children) + ")"
	case *ArrowFunctionWithStatements:
		return attributePrefix(e.Attributes) + "arrowblock(" + joinSummarize(e.Params) + ")"
	case *Super:
		return "super"
	case *Import:
		return "import"
	case *ClassDeclaration:
		return "class"
	default:
		panic(fmt.Sprintf("ast.Summarize: unhandled expression variant %T", e))
	}
}

func attributePrefix(attrs FunctionAttributes) string {
	if attrs == AsyncAttr {
		return "async "
	}
	return ""
}

func joinSummarize(children []Expression) string {
	parts := make([]string, len(children))
	for i, c := range children {
		parts[i] = Summarize(c)
	}
	return strings.Join(parts, ", ")
}
