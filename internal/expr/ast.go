package expr

import (
	"math"
	"sort"
)

// Node is one node of a parsed expression tree.
type Node interface {
	// Eval computes the value of the subtree at the given x.
	Eval(x float64) float64
}

// Num is a numeric literal. Literals are non-negative as lexed; negative
// values appear as a Unary wrapping a Num.
type Num struct {
	Value float64
}

// Var is the sole variable x.
type Var struct{}

// Const is a named mathematical constant (pi or e).
type Const struct {
	Name string
}

// Unary is unary negation.
type Unary struct {
	Operand Node
}

// Binary is one of + - * / ^.
type Binary struct {
	Op    byte
	Left  Node
	Right Node
}

// Call is a named function applied to one argument.
type Call struct {
	Name string
	Arg  Node
}

var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// evalFuncs mirrors the mapping table in pgf.go; both enumerate the
// supported function set.
var evalFuncs = map[string]func(float64) float64{
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
	"asin": math.Asin,
	"acos": math.Acos,
	"atan": math.Atan,
	"exp":  math.Exp,
	"log":  math.Log,
	"ln":   math.Log,
	"sqrt": math.Sqrt,
	"abs":  math.Abs,
}

func (n Num) Eval(x float64) float64   { return n.Value }
func (Var) Eval(x float64) float64     { return x }
func (c Const) Eval(x float64) float64 { return constants[c.Name] }
func (u Unary) Eval(x float64) float64 { return -u.Operand.Eval(x) }

func (b Binary) Eval(x float64) float64 {
	l := b.Left.Eval(x)
	r := b.Right.Eval(x)
	switch b.Op {
	case '+':
		return l + r
	case '-':
		return l - r
	case '*':
		return l * r
	case '/':
		return l / r
	case '^':
		return math.Pow(l, r)
	}
	return math.NaN()
}

func (c Call) Eval(x float64) float64 {
	return evalFuncs[c.Name](c.Arg.Eval(x))
}

// Functions returns the supported function names in sorted order.
func Functions() []string {
	names := make([]string, 0, len(evalFuncs))
	for name := range evalFuncs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
