package calc

import "strconv"

// Op identifies one of the four binary operators.
type Op int8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

// Precedence returns the binding strength of the operator. Multiplicative
// operators bind tighter than additive ones.
func (op Op) Precedence() int {
	switch op {
	case OpAdd, OpSub:
		return 1
	case OpMul, OpDiv:
		return 2
	}
	return 0
}

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return "Op(" + strconv.Itoa(int(op)) + ")"
}

// apply computes a op b. b is the more recently pushed operand.
func (op Op) apply(a, b float32) float32 {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	}
	panic("calc: invalid operator " + op.String())
}

// TokenKind discriminates the variants of Token.
type TokenKind int8

const (
	// TokenNumber is a numeric literal.
	TokenNumber TokenKind = iota + 1
	// TokenOperation is a binary operator.
	TokenOperation
)

// Token is one element of an expression in reverse Polish notation: either a
// number or an operation. Tokens are immutable once produced.
type Token struct {
	Kind TokenKind
	// Num is the literal's value when Kind is TokenNumber.
	Num float32
	// Op is the operator when Kind is TokenOperation.
	Op Op
	// Col is the 1-based rune column of the token in the source expression.
	Col int
}

func (t Token) String() string {
	switch t.Kind {
	case TokenNumber:
		return strconv.FormatFloat(float64(t.Num), 'g', -1, 32)
	case TokenOperation:
		return t.Op.String()
	}
	return "TokenKind(" + strconv.Itoa(int(t.Kind)) + ")"
}
