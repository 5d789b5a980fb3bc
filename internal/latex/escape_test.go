package latex

import "testing"

func TestEscape(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "time", "time"},
		{"percent", "load %", `load \%`},
		{"underscore", "x_label", `x\_label`},
		{"ampersand", "a & b", `a \& b`},
		{"hash", "#1", `\#1`},
		{"braces", "{x}", `\{x\}`},
		{"dollar", "$5", `\$5`},
		{"tilde", "~y", `\textasciitilde{}y`},
		{"caret", "x^2", `x\textasciicircum{}2`},
		{"backslash", `a\b`, `a\textbackslash{}b`},
		{"mixed", "50% & more_stuff", `50\% \& more\_stuff`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.input); got != tt.want {
				t.Errorf("Escape(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEscapeDoesNotReprocessReplacements(t *testing.T) {
	// The braces inserted by the backslash replacement must survive as-is.
	got := Escape(`\%`)
	want := `\textbackslash{}\%`
	if got != want {
		t.Errorf("Escape(`\\%%`) = %q, want %q", got, want)
	}
}
