package calc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shunting-yard/calc"
)

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want float32
	}{
		{"number", "1", 1},
		{"decimal", "3.5*2", 7},
		{"precedence", "2+3*4", 14},
		{"parens", "(2+3)*4", 20},
		{"left-div", "10/2/5", 1},
		{"left-sub", "10-2-3", 5},
		{"nested", "((1+2)*(3+4))", 21},
		{"unary-head", "-5+3", -2},
		{"unary-after-op", "2*-3", -6},
		{"unary-in-parens", "(-5)", -5},
		{"double-minus", "2--3", 5},
		{"padded", "  7  ", 7},
		{"mixed", "1 + 2 * (3 - 1)", 5},
		{"div-parens", "100/(2+3)", 20},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calc.EvalString(c.src)
			require.NoError(t, err)
			require.Equal(t, c.want, r)
		})
	}
}

func TestEvalErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind calc.Kind
	}{
		{"empty", "", calc.InvalidExpression},
		{"trailing-op", "1+", calc.InvalidExpression},
		{"lone-op", "+", calc.InvalidExpression},
		{"missing-operand", "1+*2", calc.InvalidExpression},
		{"lone-dot", ".", calc.InvalidExpression},
		{"two-numbers", "1 2", calc.InvalidExpression},
		{"negated-second-number", "1 -2", calc.InvalidExpression},
		{"double-dot", "3.5.2", calc.InvalidDecimal},
		{"div-zero", "5/0", calc.DivisionByZero},
		{"div-neg-zero", "5/-0", calc.DivisionByZero},
		{"div-zero-computed", "1/(2-2)", calc.DivisionByZero},
		{"unclosed-paren", "(1+2", calc.MismatchedParens},
		{"unopened-paren", "1+2)", calc.MismatchedParens},
		{"unsupported", "1 $ 2", calc.UnsupportedToken},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := calc.EvalString(c.src)
			var cerr *calc.Error
			require.ErrorAs(t, err, &cerr)
			require.Equal(t, c.kind, cerr.Kind)
		})
	}
}

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"1 $ 2", "unsupported token"},
		{"(1+2", "matching ')'"},
		{"1+", "missing operands"},
		{"3.5.2", "more than one '.'"},
		{"5/0", "dividing by 0"},
	}
	for _, c := range cases {
		_, err := calc.EvalString(c.src)
		require.Error(t, err, c.src)
		require.Contains(t, err.Error(), c.want, c.src)
	}

	// Scan-time failures name the offending column.
	_, err := calc.EvalString("1 $ 2")
	require.Contains(t, err.Error(), "column 3")
}

func TestEvalIdempotent(t *testing.T) {
	const src = "(8-3) * 2 / -0.5"
	a, err := calc.EvalString(src)
	require.NoError(t, err)
	b, err := calc.EvalString(src)
	require.NoError(t, err)
	require.Equal(t, a, b)

	c := calc.New(src)
	for i := 0; i < 3; i++ {
		r, err := c.Eval()
		require.NoError(t, err)
		require.Equal(t, a, r)
	}
}

func TestEvalWhitespaceInvariant(t *testing.T) {
	cases := [][2]string{
		{"2+3*4", " 2 + 3 * 4 "},
		{"(2+3)*4", "( 2 + 3 ) * 4"},
		{"10/2/5", "\t10 /\t2 / 5\n"},
	}
	for _, c := range cases {
		a, err := calc.EvalString(c[0])
		require.NoError(t, err, c[0])
		b, err := calc.EvalString(c[1])
		require.NoError(t, err, c[1])
		require.Equal(t, a, b, "%q vs %q", c[0], c[1])
	}
}

func TestCalculatorTokens(t *testing.T) {
	c := calc.New("2+3*4")
	require.Nil(t, c.Tokens())
	_, err := c.Eval()
	require.NoError(t, err)
	toks := c.Tokens()
	require.Len(t, toks, 5)
	require.Equal(t, calc.TokenNumber, toks[0].Kind)
	require.Equal(t, calc.TokenOperation, toks[4].Kind)
	require.Equal(t, calc.OpAdd, toks[4].Op)

	c = calc.New("(1+2")
	_, err = c.Eval()
	require.Error(t, err)
	require.Nil(t, c.Tokens())
}
