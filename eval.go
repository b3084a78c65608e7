package calc

// Calculator evaluates a single infix arithmetic expression. The zero value
// is not useful; construct one with New. Independent Calculators are safe to
// use concurrently, but a single Calculator must be used by one goroutine at
// a time.
type Calculator struct {
	expr   string
	tokens []Token
}

// New returns a Calculator for the given expression. The expression is not
// examined until Eval.
func New(expr string) *Calculator {
	return &Calculator{expr: expr}
}

// Eval converts the expression to reverse Polish notation and evaluates it,
// returning the first error encountered. The token sequence is rebuilt from
// the expression on every call, so repeated calls yield identical results.
func (c *Calculator) Eval() (float32, error) {
	tokens, err := Convert(c.expr)
	if err != nil {
		c.tokens = nil
		return 0, err
	}
	c.tokens = tokens
	return evalRPN(tokens)
}

// Tokens returns the token sequence produced by the last call to Eval, in
// evaluation order, or nil if Eval has not run or failed to convert. The
// caller must not modify the returned slice.
func (c *Calculator) Tokens() []Token {
	return c.tokens
}

// evalRPN runs a token sequence in RPN order through a value stack. Exactly
// one value must remain when the tokens are exhausted; leftover values mean
// the expression had numbers no operator consumed.
func evalRPN(tokens []Token) (float32, error) {
	var stack []float32
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenNumber:
			stack = append(stack, tok.Num)
		case TokenOperation:
			if len(stack) < 2 {
				return 0, &Error{Kind: InvalidExpression, Col: tok.Col}
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-1]
			if tok.Op == OpDiv && b == 0 {
				return 0, &Error{Kind: DivisionByZero, Col: tok.Col}
			}
			stack[len(stack)-1] = tok.Op.apply(a, b)
		default:
			panic("calc: invalid token " + tok.String())
		}
	}
	if len(stack) != 1 {
		return 0, &Error{Kind: InvalidExpression}
	}
	return stack[0], nil
}

// EvalString is a shortcut to evaluate an expression in one call.
func EvalString(expr string) (float32, error) {
	return New(expr).Eval()
}
