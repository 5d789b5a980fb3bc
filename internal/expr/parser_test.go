package expr

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestParseEval(t *testing.T) {
	tests := []struct {
		name  string
		input string
		x     float64
		want  float64
	}{
		{"polynomial", "x^2 + 1", 2, 5},
		{"double star power", "x**3", 2, 8},
		{"right assoc power", "2^3^2", 0, 512},
		{"implicit mult number var", "2x", 3, 6},
		{"implicit mult number paren", "2(x+1)", 2, 6},
		{"implicit mult paren paren", "(x+1)(x-1)", 3, 8},
		{"assignment prefix", "y = x + 1", 1, 2},
		{"sin", "sin(x)", math.Pi / 2, 1},
		{"nested call", "sqrt(abs(x))", -9, 3},
		{"log is natural", "log(e)", 0, 1},
		{"pi constant", "cos(pi)", 0, -1},
		{"division", "x/4", 2, 0.5},
		{"subtraction chain", "10 - 3 - 2", 0, 5},
		{"division chain", "16/4/2", 0, 2},
		{"unary in sum", "-x + 1", 2, -1},
		{"double negation", "--x", 3, 3},
		{"scientific literal", "1.5e2 + x", 1, 151},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("parse %q: %v", tt.input, err)
			}
			got := node.Eval(tt.x)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("%q at x=%g: got %g, want %g", tt.input, tt.x, got, tt.want)
			}
		})
	}
}

func TestParseUnaryBindsTighterThanPower(t *testing.T) {
	// negation binds above power: -x^2 is (-x)^2
	node, err := Parse("-x^2")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := node.Eval(3); got != 9 {
		t.Errorf("(-x)^2 at x=3: got %g, want 9", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		token string
	}{
		{"empty", "", ""},
		{"blank", "   ", ""},
		{"unbalanced open", "(x + 1", ""},
		{"unbalanced close", "x + 1)", ")"},
		{"unknown identifier", "x + foo", "foo"},
		{"unknown function", "sinc(x)", "sinc"},
		{"trailing tokens", "x + 1 )", ")"},
		{"bare operator", "x +", ""},
		{"bad character", "x $ 2", "$"},
		{"function without parens", "sin x", "x"},
		{"bad number", "1.2.3", "1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("parse %q: expected error, got nil", tt.input)
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("error %v does not wrap ErrParse", err)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("error %v is not a *ParseError", err)
			}
			if tt.token != "" && !strings.Contains(perr.Error(), tt.token) {
				t.Errorf("error %q does not name offending token %q", perr.Error(), tt.token)
			}
		})
	}
}

func TestFunctionsEnumerated(t *testing.T) {
	names := Functions()
	if len(names) == 0 {
		t.Fatal("no functions enumerated")
	}
	for _, name := range names {
		if _, ok := PGFName(name); !ok {
			t.Errorf("function %s has no PGF spelling", name)
		}
	}
}
