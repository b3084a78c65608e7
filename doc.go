// Package calc evaluates infix arithmetic expressions.
//
// An expression is a string of decimal numerals, the binary operators
// + - * /, parentheses, and whitespace. A minus sign directly in front of a
// numeral negates it. Evaluation converts the expression to reverse Polish
// notation with the shunting-yard algorithm, then runs the result through a
// stack machine, so "2+3*4" is 14 and "(2+3)*4" is 20.
//
// Every failure the package reports is an *Error carrying one of a closed
// set of kinds and, where one exists, the rune column that caused it.
package calc
