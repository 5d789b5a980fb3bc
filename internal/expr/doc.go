// Package expr parses single-variable algebraic expressions and re-emits
// them in PGFPlots (pgfmath) syntax.
//
// The pipeline is: lex → parse into a small tagged AST → pretty-print under
// pgfmath spelling rules:
//
//   - [Parse]: infix string → [Node]
//   - [Node.Eval]: numeric evaluation at a point
//   - [PGF]: AST → pgfmath expression string
//   - [Translate]: convenience Parse+PGF
//
// The grammar recognizes numeric literals, the variable x, the constants pi
// and e, binary + - * /, power ^ (or **, right-associative), unary negation,
// implicit multiplication (2x, 2(x+1), (x+1)(x-1)) and the functions listed
// in [Functions]. A leading "y =" style prefix is stripped.
//
// Trig output stays in radians; the emitted documents set
// "trig format plots=rad". log maps to pgfmath's natural-log ln.
package expr
