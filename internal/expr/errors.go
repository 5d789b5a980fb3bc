package expr

import (
	"errors"
	"fmt"
)

// ErrParse indicates the input string is not a valid expression.
var ErrParse = errors.New("expr: expression does not parse")

// ParseError reports where parsing failed and the offending text.
type ParseError struct {
	Pos   int
	Token string
	Msg   string
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("expr: %s at position %d", e.Msg, e.Pos)
	}
	return fmt.Sprintf("expr: %s at position %d: %q", e.Msg, e.Pos, e.Token)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

func parseErrf(pos int, token, format string, args ...any) *ParseError {
	return &ParseError{Pos: pos, Token: token, Msg: fmt.Sprintf(format, args...)}
}
