package expr

import (
	"strconv"
	"strings"
	"unicode"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
	pos  int
	val  float64
}

// stripAssignment removes a leading "y =" style prefix, as users often paste
// whole equations. Only a single-letter left-hand side is recognized.
func stripAssignment(s string) string {
	trimmed := strings.TrimLeft(s, " \t")
	if len(trimmed) >= 2 && unicode.IsLetter(rune(trimmed[0])) {
		rest := strings.TrimLeft(trimmed[1:], " \t")
		if strings.HasPrefix(rest, "=") {
			return rest[1:]
		}
	}
	return s
}

func lex(input string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(input) {
		c := input[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c >= '0' && c <= '9' || c == '.':
			start := i
			for i < len(input) && (input[i] >= '0' && input[i] <= '9' || input[i] == '.') {
				i++
			}
			// exponent part, e.g. 1.5e-3
			if i < len(input) && (input[i] == 'e' || input[i] == 'E') {
				j := i + 1
				if j < len(input) && (input[j] == '+' || input[j] == '-') {
					j++
				}
				if j < len(input) && input[j] >= '0' && input[j] <= '9' {
					for j < len(input) && input[j] >= '0' && input[j] <= '9' {
						j++
					}
					i = j
				}
			}
			text := input[start:i]
			val, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, parseErrf(start, text, "invalid number")
			}
			toks = append(toks, token{kind: tokNumber, text: text, pos: start, val: val})
		case isIdentStart(c):
			start := i
			for i < len(input) && isIdentPart(input[i]) {
				i++
			}
			toks = append(toks, token{kind: tokIdent, text: input[start:i], pos: start})
		case c == '+':
			toks = append(toks, token{kind: tokPlus, text: "+", pos: i})
			i++
		case c == '-':
			toks = append(toks, token{kind: tokMinus, text: "-", pos: i})
			i++
		case c == '*':
			if i+1 < len(input) && input[i+1] == '*' {
				toks = append(toks, token{kind: tokCaret, text: "**", pos: i})
				i += 2
			} else {
				toks = append(toks, token{kind: tokStar, text: "*", pos: i})
				i++
			}
		case c == '/':
			toks = append(toks, token{kind: tokSlash, text: "/", pos: i})
			i++
		case c == '^':
			toks = append(toks, token{kind: tokCaret, text: "^", pos: i})
			i++
		case c == '(':
			toks = append(toks, token{kind: tokLParen, text: "(", pos: i})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokRParen, text: ")", pos: i})
			i++
		default:
			return nil, parseErrf(i, string(c), "unexpected character")
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: len(input)})
	return toks, nil
}

func isIdentStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || c >= '0' && c <= '9'
}
