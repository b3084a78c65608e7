package calc

// pending is an entry on the shunting-yard operator stack: either an
// operator awaiting its right operand or an open-parenthesis marker, which
// resets the precedence floor for everything pushed above it.
type pending struct {
	op   Op
	open bool
	col  int
}

// Convert tokenizes an infix expression and reorders it into reverse Polish
// notation using the shunting-yard algorithm. Operators of equal precedence
// associate left to right. The empty expression converts to an empty
// sequence.
func Convert(expr string) ([]Token, error) {
	sc := newScanner(expr)
	var out []Token
	var ops []pending
	for {
		tok, err := sc.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case scanEOF:
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.open {
					return nil, &Error{Kind: MismatchedParens, Col: top.col}
				}
				out = append(out, Token{Kind: TokenOperation, Op: top.op, Col: top.col})
			}
			return out, nil
		case scanNum:
			out = append(out, Token{Kind: TokenNumber, Num: tok.num, Col: tok.col})
		case scanOp:
			// Emit every pending operator that binds at least as tightly,
			// stopping at an open parenthesis.
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.open || top.op.Precedence() < tok.op.Precedence() {
					break
				}
				ops = ops[:len(ops)-1]
				out = append(out, Token{Kind: TokenOperation, Op: top.op, Col: top.col})
			}
			ops = append(ops, pending{op: tok.op, col: tok.col})
		case scanOpen:
			ops = append(ops, pending{open: true, col: tok.col})
		case scanClose:
			for {
				if len(ops) == 0 {
					return nil, &Error{Kind: MismatchedParens, Col: tok.col}
				}
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.open {
					break
				}
				out = append(out, Token{Kind: TokenOperation, Op: top.op, Col: top.col})
			}
		}
	}
}
