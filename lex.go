package calc

import (
	"strconv"
	"unicode"
)

type scanKind int8

const (
	// scanEOF indicates the end of the expression.
	scanEOF scanKind = iota
	// scanNum is a numeric literal, with any unary minus already folded in.
	scanNum
	// scanOp is a binary operator.
	scanOp
	// scanOpen and scanClose are the parentheses.
	scanOpen
	scanClose
)

type scanToken struct {
	kind scanKind
	num  float32
	op   Op
	col  int
}

// scanner walks an expression one rune at a time. The expression string is
// never mutated; the cursor is the only state.
type scanner struct {
	src []rune
	i   int
}

func newScanner(expr string) *scanner {
	return &scanner{src: []rune(expr)}
}

// next scans the next token. After the end of the input it keeps returning
// scanEOF tokens.
func (s *scanner) next() (scanToken, error) {
	for s.i < len(s.src) && unicode.IsSpace(s.src[s.i]) {
		s.i++
	}
	if s.i >= len(s.src) {
		return scanToken{kind: scanEOF, col: s.i + 1}, nil
	}
	c := s.src[s.i]
	col := s.i + 1
	if c == '-' && s.minusIsUnary() && s.i+1 < len(s.src) && isDigit(s.src[s.i+1]) {
		s.i++
		n, err := s.scanNumber(true, col)
		if err != nil {
			return scanToken{}, err
		}
		return scanToken{kind: scanNum, num: n, col: col}, nil
	}
	if isDigit(c) || c == '.' {
		n, err := s.scanNumber(false, col)
		if err != nil {
			return scanToken{}, err
		}
		return scanToken{kind: scanNum, num: n, col: col}, nil
	}
	s.i++
	switch c {
	case '+':
		return scanToken{kind: scanOp, op: OpAdd, col: col}, nil
	case '-':
		return scanToken{kind: scanOp, op: OpSub, col: col}, nil
	case '*':
		return scanToken{kind: scanOp, op: OpMul, col: col}, nil
	case '/':
		return scanToken{kind: scanOp, op: OpDiv, col: col}, nil
	case '(':
		return scanToken{kind: scanOpen, col: col}, nil
	case ')':
		return scanToken{kind: scanClose, col: col}, nil
	}
	return scanToken{}, &Error{Kind: UnsupportedToken, Col: col}
}

// minusIsUnary reports whether a '-' at the cursor negates the numeral that
// follows rather than acting as subtraction. That is the case at the start of
// the expression and directly after an operator, an open parenthesis, or a
// space.
func (s *scanner) minusIsUnary() bool {
	if s.i == 0 {
		return true
	}
	switch s.src[s.i-1] {
	case '(', '+', '-', '*', '/', ' ':
		return true
	}
	return false
}

// scanNumber consumes a run of digits containing at most one '.' and parses
// it. col is the column of the literal's first rune, including a folded
// unary minus.
func (s *scanner) scanNumber(neg bool, col int) (float32, error) {
	start := s.i
	dotted := false
	for s.i < len(s.src) && (isDigit(s.src[s.i]) || s.src[s.i] == '.') {
		if s.src[s.i] == '.' {
			if dotted {
				return 0, &Error{Kind: InvalidDecimal, Col: col}
			}
			dotted = true
		}
		s.i++
	}
	text := string(s.src[start:s.i])
	if neg {
		text = "-" + text
	}
	n, err := strconv.ParseFloat(text, 32)
	if err != nil {
		// Literals too large for a float32 saturate to infinity rather
		// than failing. Anything else, such as a lone '.', is malformed.
		if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
			return 0, &Error{Kind: InvalidExpression, Col: col}
		}
	}
	return float32(n), nil
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
