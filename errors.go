package calc

import "strconv"

// Kind enumerates the ways an expression can fail.
type Kind int8

const (
	// UnsupportedToken indicates a rune that is not a digit, '.', operator,
	// parenthesis, or whitespace.
	UnsupportedToken Kind = iota + 1
	// MismatchedParens indicates a ')' with no matching '(' or a '(' that is
	// never closed.
	MismatchedParens
	// InvalidExpression indicates an expression that is incomplete,
	// malformed, or missing operands.
	InvalidExpression
	// InvalidDecimal indicates a numeral containing more than one '.'.
	InvalidDecimal
	// DivisionByZero indicates a '/' whose divisor is exactly zero.
	DivisionByZero
)

func (k Kind) message() string {
	switch k {
	case UnsupportedToken:
		return "expression contains an unsupported token"
	case MismatchedParens:
		return "mismatched parentheses: make sure every '(' has a matching ')'"
	case InvalidExpression:
		return "invalid expression: incomplete, malformed, or missing operands"
	case InvalidDecimal:
		return "invalid decimal number: more than one '.' within a number"
	case DivisionByZero:
		return "dividing by 0 is mathematically undefined"
	}
	return "unknown error kind " + strconv.Itoa(int(k))
}

// Error is the error type for every failure this package reports.
type Error struct {
	// Kind is which failure occurred.
	Kind Kind
	// Col is the 1-based rune column of the token that caused the failure,
	// or 0 when no single column is responsible.
	Col int
}

func (err *Error) Error() string {
	if err.Col > 0 {
		return "column " + strconv.Itoa(err.Col) + ": " + err.Kind.message()
	}
	return err.Kind.message()
}

// Pos returns the rune column of the error, or 0 if unknown.
func (err *Error) Pos() int {
	return err.Col
}
