package expr

// parser is a recursive-descent parser over the token stream.
//
// Precedence, tightest first: unary negation, ^ (right-associative),
// * / and implicit multiplication, + -.
type parser struct {
	toks []token
	i    int
}

// Parse converts an infix expression in the variable x into an AST.
// A leading "y =" prefix is accepted and ignored.
func Parse(input string) (Node, error) {
	src := stripAssignment(input)
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	if p.peek().kind == tokEOF {
		return nil, parseErrf(0, "", "empty expression")
	}
	node, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, parseErrf(tok.pos, tok.text, "unexpected trailing input")
	}
	return node, nil
}

func (p *parser) peek() token { return p.toks[p.i] }

func (p *parser) next() token {
	tok := p.toks[p.i]
	if tok.kind != tokEOF {
		p.i++
	}
	return tok
}

func (p *parser) parseSum() (Node, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().kind {
		case tokPlus:
			p.next()
			right, err := p.parseProduct()
			if err != nil {
				return nil, err
			}
			left = Binary{Op: '+', Left: left, Right: right}
		case tokMinus:
			p.next()
			right, err := p.parseProduct()
			if err != nil {
				return nil, err
			}
			left = Binary{Op: '-', Left: left, Right: right}
		default:
			return left, nil
		}
	}
}

func (p *parser) parseProduct() (Node, error) {
	left, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().kind {
		case tokStar:
			p.next()
			right, err := p.parsePower()
			if err != nil {
				return nil, err
			}
			left = Binary{Op: '*', Left: left, Right: right}
		case tokSlash:
			p.next()
			right, err := p.parsePower()
			if err != nil {
				return nil, err
			}
			left = Binary{Op: '/', Left: left, Right: right}
		case tokNumber, tokIdent, tokLParen:
			// implicit multiplication: 2x, 2(x+1), (x+1)(x-1)
			right, err := p.parsePower()
			if err != nil {
				return nil, err
			}
			left = Binary{Op: '*', Left: left, Right: right}
		default:
			return left, nil
		}
	}
}

// parsePower handles ^ with right associativity. The base is parsed at
// unary level, so negation binds tighter than power: -x^2 is (-x)^2.
func (p *parser) parsePower() (Node, error) {
	base, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokCaret {
		return base, nil
	}
	p.next()
	exp, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	return Binary{Op: '^', Left: base, Right: exp}, nil
}

func (p *parser) parseUnary() (Node, error) {
	if p.peek().kind == tokMinus {
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Unary{Operand: operand}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Node, error) {
	tok := p.next()
	switch tok.kind {
	case tokNumber:
		return Num{Value: tok.val}, nil
	case tokLParen:
		inner, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return nil, parseErrf(closing.pos, closing.text, "missing closing parenthesis")
		}
		return inner, nil
	case tokIdent:
		switch {
		case tok.text == "x":
			return Var{}, nil
		default:
			if _, ok := constants[tok.text]; ok {
				return Const{Name: tok.text}, nil
			}
			if _, ok := evalFuncs[tok.text]; ok {
				if open := p.next(); open.kind != tokLParen {
					return nil, parseErrf(open.pos, open.text, "function %s needs a parenthesized argument", tok.text)
				}
				arg, err := p.parseSum()
				if err != nil {
					return nil, err
				}
				if closing := p.next(); closing.kind != tokRParen {
					return nil, parseErrf(closing.pos, closing.text, "missing closing parenthesis")
				}
				return Call{Name: tok.text, Arg: arg}, nil
			}
			return nil, parseErrf(tok.pos, tok.text, "unknown identifier")
		}
	case tokEOF:
		return nil, parseErrf(tok.pos, "", "unexpected end of expression")
	default:
		return nil, parseErrf(tok.pos, tok.text, "unexpected token")
	}
}
