// Package scope implements the scope analyzer: a straightforward,
// iterative consumer of the ast.VariableEvent stream that the parser
// emits in source order. It never re-walks the AST (§9 "Scope events vs
// AST traversal") — the event stream is self-sufficient.
package scope

import (
	"github.com/example/jslint/ast"
	"github.com/example/jslint/diag"
	"github.com/example/jslint/source"
)

// Binding records where an identifier was declared and by which kind of
// declaration, so a later declaration in the same scope can be checked
// against it for redeclaration (§4.6).
type Binding struct {
	Kind  ast.VariableEventKind
	Where source.Range
}

// pendingUse is a use or assignment that could not be resolved against any
// scope open at the time it was seen. It travels outward one scope at a
// time as scopes close, until it either resolves against a scope's final
// bindings or falls out of the global scope unresolved.
type pendingUse struct {
	Name  string
	Where source.Range
}

// frame is one entry of the analyzer's scope stack.
type frame struct {
	kind     ast.ScopeKind
	bindings map[string][]Binding
	pending  []pendingUse
}

func newFrame(kind ast.ScopeKind) *frame {
	return &frame{kind: kind, bindings: make(map[string][]Binding)}
}

// Analyze consumes events in source order and reports redeclaration (E034)
// and undeclared-use (E057) diagnostics into sink.
func Analyze(events []ast.VariableEvent, sink *diag.Sink) {
	a := &analyzer{sink: sink}
	for _, ev := range events {
		a.handle(ev)
	}
	// A well-formed event stream always balances EnterScope/ExitScope
	// (every parse wraps itself in at least the module scope), so the
	// stack is empty here; nothing left over to drain.
}

type analyzer struct {
	sink  *diag.Sink
	stack []*frame
}

func (a *analyzer) handle(ev ast.VariableEvent) {
	switch ev.Kind {
	case ast.EventEnterScope:
		a.stack = append(a.stack, newFrame(ev.ScopeKind))
	case ast.EventExitScope:
		a.popScope()
	case ast.EventUse, ast.EventAssignment:
		a.resolveOrDefer(ev.Identifier)
	default:
		a.declare(ev.Kind, ev.Identifier)
	}
}

// isBlockScopedKind reports whether a declaration kind is block-scoped
// (let/const/class/import) as opposed to function-scoped (var/function),
// per §4.6. Parameters are neither; see targetScope.
func isBlockScopedKind(kind ast.VariableEventKind) bool {
	switch kind {
	case ast.EventDeclarationLet, ast.EventDeclarationConst, ast.EventDeclarationClass, ast.EventDeclarationImport:
		return true
	default:
		return false
	}
}

// targetScope finds the scope a declaration of the given kind binds into:
// the innermost scope for block-scoped kinds and for parameters (the
// function scope opened for a function's or arrow's parameter list, or the
// block scope opened for a catch clause), or the nearest enclosing
// ast.ScopeFunction (skipping any intervening ast.ScopeBlock frames)
// otherwise.
func (a *analyzer) targetScope(kind ast.VariableEventKind) *frame {
	if len(a.stack) == 0 {
		return nil
	}
	if isBlockScopedKind(kind) || kind == ast.EventDeclarationParameter {
		return a.stack[len(a.stack)-1]
	}
	for i := len(a.stack) - 1; i >= 0; i-- {
		if a.stack[i].kind == ast.ScopeFunction {
			return a.stack[i]
		}
	}
	return a.stack[0]
}

func (a *analyzer) declare(kind ast.VariableEventKind, id ast.Identifier) {
	target := a.targetScope(kind)
	if target == nil {
		return
	}
	blockScoped := isBlockScopedKind(kind)
	if existing, ok := target.bindings[id.Name]; ok {
		conflict := blockScoped
		if !conflict {
			for _, b := range existing {
				if isBlockScopedKind(b.Kind) {
					conflict = true
					break
				}
			}
		}
		// var-over-var (and function-over-function/parameter) is silently
		// permitted; everything else sharing a block-scoped declaration
		// is a redeclaration.
		if conflict {
			a.sink.Add(diag.E034, id.Range, "redeclaration of variable: "+id.Name)
		}
	}
	target.bindings[id.Name] = append(target.bindings[id.Name], Binding{Kind: kind, Where: id.Range})
}

// resolveOrDefer searches the open scope stack, innermost first, for a
// binding of id.Name. If none is open yet — the common var/function
// hoisting case, where the use textually precedes its declaration — the
// use is deferred to the innermost open scope's pending list, to be
// retried as scopes close (§4.6 "On scope pop").
func (a *analyzer) resolveOrDefer(id ast.Identifier) {
	for i := len(a.stack) - 1; i >= 0; i-- {
		if _, ok := a.stack[i].bindings[id.Name]; ok {
			return
		}
	}
	if len(a.stack) == 0 {
		return
	}
	top := a.stack[len(a.stack)-1]
	top.pending = append(top.pending, pendingUse{Name: id.Name, Where: id.Range})
}

// popScope closes the innermost scope. Its pending uses are first retried
// against its own final bindings (a hoisted var/function declared after
// the use, in the same scope), then against the new innermost scope if
// one remains open. Anything still unresolved when the outermost scope
// closes is reported as E057.
func (a *analyzer) popScope() {
	if len(a.stack) == 0 {
		return
	}
	n := len(a.stack) - 1
	closed := a.stack[n]
	a.stack = a.stack[:n]

	var unresolved []pendingUse
	for _, pu := range closed.pending {
		if _, ok := closed.bindings[pu.Name]; ok {
			continue
		}
		unresolved = append(unresolved, pu)
	}

	if len(a.stack) == 0 {
		for _, pu := range unresolved {
			a.sink.Add(diag.E057, pu.Where, "use of undeclared variable: "+pu.Name)
		}
		return
	}
	outer := a.stack[len(a.stack)-1]
	for _, pu := range unresolved {
		if _, ok := outer.bindings[pu.Name]; ok {
			continue
		}
		outer.pending = append(outer.pending, pu)
	}
}
