package parser

import "github.com/example/jslint/token"

// Precedence levels, low to high, normative per the component design: the
// parser climbs this table exactly (§4.4).
const (
	_ int = iota
	precComma
	precAssignment
	precConditional
	precNullishCoalesce
	precLogicalOr
	precLogicalAnd
	precBitwiseOr
	precBitwiseXor
	precBitwiseAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
	precExponent
)

// binaryPrecedence returns the precedence of tt as an infix binary
// operator, or ok=false if tt isn't one. noIn suppresses `in` so `for (x
// in y)` can disambiguate the loop's own `in` from a relational operator.
func binaryPrecedence(tt token.TokenType, noIn bool) (int, bool) {
	switch tt {
	case token.NullishCoalesce:
		return precNullishCoalesce, true
	case token.Or:
		return precLogicalOr, true
	case token.And:
		return precLogicalAnd, true
	case token.BitwiseOr:
		return precBitwiseOr, true
	case token.BitwiseXor:
		return precBitwiseXor, true
	case token.BitwiseAnd:
		return precBitwiseAnd, true
	case token.Equal, token.NotEqual, token.StrictEqual, token.StrictNotEqual:
		return precEquality, true
	case token.LessThan, token.LessThanOrEqual, token.GreaterThan, token.GreaterThanOrEqual, token.Instanceof:
		return precRelational, true
	case token.In:
		if noIn {
			return 0, false
		}
		return precRelational, true
	case token.LeftShift, token.RightShift, token.UnsignedRightShift:
		return precShift, true
	case token.Plus, token.Minus:
		return precAdditive, true
	case token.Asterisk, token.Slash, token.Percent:
		return precMultiplicative, true
	case token.Exponent:
		return precExponent, true
	default:
		return 0, false
	}
}

// assignmentOperator reports whether tt is an assignment token and whether
// it is the plain `=` (Assignment) as opposed to a compound/updating one.
func assignmentOperator(tt token.TokenType) (isAssignment bool, isPlain bool) {
	switch tt {
	case token.Assign:
		return true, true
	case token.PlusAssign, token.MinusAssign, token.AsteriskAssign, token.SlashAssign,
		token.PercentAssign, token.ExponentAssign, token.LeftShiftAssign, token.RightShiftAssign,
		token.UnsignedRightShiftAssign, token.AmpersandAssign, token.PipeAssign, token.CaretAssign,
		token.AndAssign, token.OrAssign, token.NullishAssign:
		return true, false
	default:
		return false, false
	}
}

func canStartExpression(tt token.TokenType) bool {
	switch tt {
	case token.Identifier, token.Number, token.String, token.RegExp,
		token.NoSubstitutionTemplate, token.TemplateHead,
		token.True, token.False, token.Null, token.Undefined,
		token.This, token.Super, token.Import,
		token.LeftParen, token.LeftBracket, token.LeftBrace,
		token.Function, token.Class, token.New,
		token.Not, token.BitwiseNot, token.Plus, token.Minus,
		token.Typeof, token.Void, token.Delete, token.Await,
		token.Increment, token.Decrement, token.Async, token.Spread:
		return true
	default:
		return false
	}
}
