package expr

import (
	"fmt"
	"strconv"
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
	tokPercent
	tokCaret
	tokLParen
	tokRParen
	tokComma
	tokAssign
)

// token is one lexical unit of an expression, with its byte offset for
// error reporting.
type token struct {
	kind tokenKind
	text string
	num  float64 // valid when kind == tokNumber
	pos  int
}

func (t token) String() string {
	if t.kind == tokEOF {
		return "end of input"
	}
	return strconv.Quote(t.text)
}

// lexer scans expression source byte by byte. Expressions are ASCII;
// anything else is rejected.
type lexer struct {
	src string
	pos int
}

func (l *lexer) next() (token, error) {
	for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
		l.pos++
	}
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, pos: l.pos}, nil
	}

	start := l.pos
	c := l.src[l.pos]
	switch {
	case isDigit(c) || c == '.':
		return l.scanNumber()
	case isAlpha(c):
		for l.pos < len(l.src) && (isAlpha(l.src[l.pos]) || isDigit(l.src[l.pos])) {
			l.pos++
		}
		return token{kind: tokIdent, text: l.src[start:l.pos], pos: start}, nil
	}

	l.pos++
	lit := l.src[start:l.pos]
	punct := map[byte]tokenKind{
		'+': tokPlus, '-': tokMinus, '*': tokStar, '/': tokSlash,
		'%': tokPercent, '^': tokCaret, '(': tokLParen, ')': tokRParen,
		',': tokComma, '=': tokAssign,
	}
	if kind, ok := punct[c]; ok {
		return token{kind: kind, text: lit, pos: start}, nil
	}
	return token{}, fmt.Errorf("%w: unexpected character %q at offset %d", ErrSyntax, lit, start)
}

func (l *lexer) scanNumber() (token, error) {
	start := l.pos
	for l.pos < len(l.src) && (isDigit(l.src[l.pos]) || l.src[l.pos] == '.') {
		l.pos++
	}
	// Scientific notation: 1e-3, 2.5E+10.
	if l.pos < len(l.src) && (l.src[l.pos] == 'e' || l.src[l.pos] == 'E') {
		mark := l.pos
		l.pos++
		if l.pos < len(l.src) && (l.src[l.pos] == '+' || l.src[l.pos] == '-') {
			l.pos++
		}
		if l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
				l.pos++
			}
		} else {
			l.pos = mark // trailing 'e' belongs to the next token
		}
	}
	lit := l.src[start:l.pos]
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return token{}, fmt.Errorf("%w: bad number %q at offset %d", ErrSyntax, lit, start)
	}
	return token{kind: tokNumber, text: lit, num: v, pos: start}, nil
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
