package main

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"unicode"

	mathhook "github.com/AhmedMashour/mathhook"
)

// A small recursive-descent parser for infix expressions. It builds raw
// trees; the kernel never parses text, so this lives with the CLI.
//
// Grammar:
//
//	expr   := term { ("+" | "-") term }
//	term   := unary { ("*" | "/") unary }
//	unary  := "-" unary | power
//	power  := atom [ "^" unary ]
//	atom   := NUMBER | IDENT [ "(" expr { "," expr } ")" ] | "(" expr ")"
//
// Integer and p/q literals stay exact; decimal literals are approximate.
// The identifiers pi, E, I, oo, zoo and nan denote constants.

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNum
	tokIdent
	tokOp
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

type parser struct {
	src  string
	toks []token
	i    int
}

// Parse parses src into a raw expression tree.
func Parse(src string) (mathhook.Expr, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{src: src, toks: toks}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, p.errorf(t, "unexpected %q", t.text)
	}
	return e, nil
}

func lex(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case strings.ContainsRune("+-*/^(),", rune(c)):
			toks = append(toks, token{kind: tokOp, text: string(c), pos: i})
			i++
		case c >= '0' && c <= '9' || c == '.':
			start := i
			dot := false
			for i < len(src) && (src[i] >= '0' && src[i] <= '9' || src[i] == '.') {
				if src[i] == '.' {
					if dot {
						return nil, fmt.Errorf("parse error at %d: malformed number", start)
					}
					dot = true
				}
				i++
			}
			toks = append(toks, token{kind: tokNum, text: src[start:i], pos: start})
		case unicode.IsLetter(rune(c)) || c == '_':
			start := i
			for i < len(src) && (unicode.IsLetter(rune(src[i])) || unicode.IsDigit(rune(src[i])) || src[i] == '_') {
				i++
			}
			toks = append(toks, token{kind: tokIdent, text: src[start:i], pos: start})
		default:
			return nil, fmt.Errorf("parse error at %d: unexpected character %q", i, c)
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: len(src)})
	return toks, nil
}

func (p *parser) peek() token { return p.toks[p.i] }

func (p *parser) next() token {
	t := p.toks[p.i]
	if t.kind != tokEOF {
		p.i++
	}
	return t
}

func (p *parser) accept(op string) bool {
	if t := p.peek(); t.kind == tokOp && t.text == op {
		p.i++
		return true
	}
	return false
}

func (p *parser) expect(op string) error {
	if !p.accept(op) {
		t := p.peek()
		return p.errorf(t, "expected %q", op)
	}
	return nil
}

func (p *parser) errorf(t token, format string, args ...interface{}) error {
	return fmt.Errorf("parse error at %d: %s", t.pos, fmt.Sprintf(format, args...))
}

func (p *parser) parseExpr() (mathhook.Expr, error) {
	first, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	terms := []mathhook.Expr{first}
	for {
		if p.accept("+") {
			t, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			terms = append(terms, t)
			continue
		}
		if p.accept("-") {
			t, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			terms = append(terms, mathhook.MulOf(mathhook.N(-1), t))
			continue
		}
		break
	}
	return mathhook.AddOf(terms...), nil
}

func (p *parser) parseTerm() (mathhook.Expr, error) {
	first, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	factors := []mathhook.Expr{first}
	for {
		if p.accept("*") {
			f, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			factors = append(factors, f)
			continue
		}
		if p.accept("/") {
			f, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			factors = append(factors, mathhook.PowOf(f, mathhook.N(-1)))
			continue
		}
		break
	}
	return mathhook.MulOf(factors...), nil
}

func (p *parser) parseUnary() (mathhook.Expr, error) {
	if p.accept("-") {
		e, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return mathhook.MulOf(mathhook.N(-1), e), nil
	}
	return p.parsePower()
}

func (p *parser) parsePower() (mathhook.Expr, error) {
	base, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if p.accept("^") {
		exp, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return mathhook.PowOf(base, exp), nil
	}
	return base, nil
}

func (p *parser) parseAtom() (mathhook.Expr, error) {
	t := p.peek()
	switch t.kind {
	case tokNum:
		p.next()
		if strings.Contains(t.text, ".") {
			f, err := strconv.ParseFloat(t.text, 64)
			if err != nil {
				return nil, p.errorf(t, "malformed number %q", t.text)
			}
			return mathhook.NFloat(f), nil
		}
		r, ok := new(big.Rat).SetString(t.text)
		if !ok {
			return nil, p.errorf(t, "malformed number %q", t.text)
		}
		return mathhook.NumFromRat(r), nil

	case tokIdent:
		p.next()
		if p.accept("(") {
			var args []mathhook.Expr
			if !p.accept(")") {
				for {
					a, err := p.parseExpr()
					if err != nil {
						return nil, err
					}
					args = append(args, a)
					if p.accept(",") {
						continue
					}
					if err := p.expect(")"); err != nil {
						return nil, err
					}
					break
				}
			}
			return mathhook.FuncOf(t.text, args...), nil
		}
		if c := mathhook.ConstantByName(t.text); c != nil {
			return c, nil
		}
		return mathhook.S(t.text), nil

	case tokOp:
		if t.text == "(" {
			p.next()
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if err := p.expect(")"); err != nil {
				return nil, err
			}
			return e, nil
		}
	}
	return nil, p.errorf(t, "unexpected %q", t.text)
}
