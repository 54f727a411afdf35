// Package invariant holds the internal-fault assertions used across the
// pipeline: conditions that indicate a bug in this implementation, not a
// reportable condition in the user's program (spec §7 draws that line
// explicitly). These are fatal: they log and panic rather than return an
// error, grounded on pulumi's pkg/util/contract failfast.
package invariant

import (
	"fmt"

	"go.uber.org/zap"
)

var logger = zap.NewNop()

// SetLogger replaces the logger invariant failures are reported through
// before panicking. Callers that want failures visible in production
// output (cmd/jslint does) call this once at startup.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}

// Must panics with msg if cond is false. Use it for a precondition that
// this package's own callers are responsible for upholding (e.g. an index
// already checked by the caller).
func Must(cond bool, msg string) {
	if !cond {
		fail(msg)
	}
}

// Mustf is Must with a formatted message.
func Mustf(cond bool, format string, args ...interface{}) {
	if !cond {
		fail(fmt.Sprintf(format, args...))
	}
}

// Unreachable panics unconditionally. Use it in the default case of a
// switch over a closed variant set at the ambient boundary layers
// (document, cmd/jslint — e.g. cmd/jslint's severityLabel over
// document.Severity's two values) — reaching it means a variant was added
// without updating every switch that covers the set. The portable core
// packages (source, diag, token, lexer, ast, parser, scope) have their own
// closed-switch defaults too (e.g. ast.Summarize's expression-kind switch),
// but panic directly instead of calling into this package, since they stay
// off the ambient stack entirely (see DESIGN.md).
func Unreachable(msg string) {
	fail("unreachable: " + msg)
}

func fail(msg string) {
	logger.Error("internal invariant violated", zap.String("detail", msg))
	panic("jslint: " + msg)
}
