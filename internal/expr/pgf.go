package expr

import (
	"strconv"
	"strings"
)

// pgfFuncs maps source function names to their pgfmath spelling. log is the
// natural logarithm, which pgfmath spells ln. Trig stays in radians; the
// emitted preamble sets "trig format plots=rad".
var pgfFuncs = map[string]string{
	"sin":  "sin",
	"cos":  "cos",
	"tan":  "tan",
	"asin": "asin",
	"acos": "acos",
	"atan": "atan",
	"exp":  "exp",
	"log":  "ln",
	"ln":   "ln",
	"sqrt": "sqrt",
	"abs":  "abs",
}

// PGFName returns the pgfmath spelling of a supported function name.
func PGFName(name string) (string, bool) {
	target, ok := pgfFuncs[name]
	return target, ok
}

// Translate parses an infix expression and returns its pgfmath form.
func Translate(input string) (string, error) {
	node, err := Parse(input)
	if err != nil {
		return "", err
	}
	return PGF(node), nil
}

// PGF renders an AST as a pgfmath expression. Parentheses are re-inserted
// from the tree structure wherever pgfmath's own precedence could differ
// from the source semantics, so the output never depends on the renderer's
// defaults.
func PGF(node Node) string {
	var sb strings.Builder
	writePGF(&sb, node, 0)
	return sb.String()
}

// Precedence levels used when deciding parenthesization.
const (
	precSum = iota + 1
	precProduct
	precUnary
	precPower
	precAtom
)

func nodePrec(n Node) int {
	switch v := n.(type) {
	case Binary:
		switch v.Op {
		case '+', '-':
			return precSum
		case '*', '/':
			return precProduct
		case '^':
			return precPower
		}
	case Unary:
		return precUnary
	}
	return precAtom
}

// writePGF renders n in a context that binds with the given precedence;
// n is parenthesized whenever it binds more loosely than the context.
func writePGF(sb *strings.Builder, n Node, contextPrec int) {
	switch v := n.(type) {
	case Num:
		sb.WriteString(formatNumber(v.Value))
	case Var:
		sb.WriteString(`\x`)
	case Const:
		sb.WriteString(v.Name)
	case Unary:
		paren := contextPrec > precSum
		if paren {
			sb.WriteByte('(')
		}
		sb.WriteByte('-')
		writePGF(sb, v.Operand, precUnary)
		if paren {
			sb.WriteByte(')')
		}
	case Binary:
		prec := nodePrec(n)
		paren := prec < contextPrec
		if paren {
			sb.WriteByte('(')
		}
		if v.Op == '^' {
			// both sides fully explicit; (a^b)^c and a^(b^c) must differ
			writePGF(sb, v.Left, precPower+1)
			sb.WriteByte('^')
			writePGF(sb, v.Right, precPower+1)
		} else {
			rightPrec := prec
			if v.Op == '-' || v.Op == '/' {
				rightPrec = prec + 1
			}
			writePGF(sb, v.Left, prec)
			sb.WriteByte(' ')
			sb.WriteByte(v.Op)
			sb.WriteByte(' ')
			writePGF(sb, v.Right, rightPrec)
		}
		if paren {
			sb.WriteByte(')')
		}
	case Call:
		sb.WriteString(pgfFuncs[v.Name])
		sb.WriteByte('(')
		writePGF(sb, v.Arg, 0)
		sb.WriteByte(')')
	}
}

// formatNumber renders a literal with a dot decimal point and no locale
// dependence.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
