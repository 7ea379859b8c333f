// Package expr parses arithmetic expressions into scalar computation
// graphs. It is the dynamic front end over the operation catalog: source
// text like
//
//	sin(x)*x + pow(y, p=3) - 1
//
// becomes one graph node per operation, with variables bound to leaf
// nodes supplied by the caller. After Backward on the returned root, the
// gradient of every bound variable can be read off its leaf.
//
// Grammar (precedence low to high):
//
//	expr   = term {("+" | "-") term}
//	term   = unary {("*" | "/" | "%") unary}
//	unary  = "-" unary | power
//	power  = primary ["^" number]
//	primary = number | ident | ident "(" args ")" | "(" expr ")"
//	args   = expr {"," expr} {"," ident "=" number}
//
// The exponent of "^", the modulus of "%", and keyword arguments are
// numeric literals: they become named operation constants, which never
// receive gradients. Bare numbers elsewhere become constant leaf nodes.
// The identifiers pi and e denote the usual constants.
package expr

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/semigrad-ml/semigrad/internal/ops"
	"github.com/semigrad-ml/semigrad/internal/scalar"
)

// Parsing errors. Syntax problems wrap ErrSyntax with position details.
var (
	ErrSyntax           = errors.New("expr: syntax error")
	ErrUnknownFunction  = errors.New("expr: unknown function")
	ErrUnboundVariable  = errors.New("expr: unbound variable")
	ErrConstantRequired = errors.New("expr: numeric literal required")
)

// Result is a parsed expression: the root of the constructed graph and
// the leaf node for each bound variable. A variable mentioned several
// times shares a single leaf, so its gradient accumulates across all
// mentions.
type Result struct {
	Root *scalar.Scalar
	Vars map[string]*scalar.Scalar
}

// Parse builds src into g, binding each variable name to a leaf holding
// its value from vars. The whole expression is evaluated eagerly during
// parsing; Result.Root carries the forward value.
func Parse(g *scalar.Graph, src string, vars map[string]float64) (*Result, error) {
	return parse(g, src, vars, make(map[string]*scalar.Scalar))
}

// ParseBound is Parse with variables bound to caller-created leaves
// instead of raw values. Useful when the same source is re-parsed into
// fresh graphs, e.g. by a descent loop that owns the parameter leaves.
func ParseBound(g *scalar.Graph, src string, leaves map[string]*scalar.Scalar) (*Result, error) {
	bound := make(map[string]*scalar.Scalar, len(leaves))
	for name, leaf := range leaves {
		bound[name] = leaf
	}
	return parse(g, src, nil, bound)
}

func parse(g *scalar.Graph, src string, vars map[string]float64, leaves map[string]*scalar.Scalar) (*Result, error) {
	p := &parser{
		graph:    g,
		lex:      &lexer{src: src},
		registry: ops.Registry(),
		values:   vars,
		leaves:   leaves,
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, fmt.Errorf("%w: unexpected %s at offset %d", ErrSyntax, p.tok, p.tok.pos)
	}
	return &Result{Root: root, Vars: p.leaves}, nil
}

type parser struct {
	graph    *scalar.Graph
	lex      *lexer
	tok      token
	registry map[string]*scalar.Op
	values   map[string]float64        // caller-supplied variable bindings
	leaves   map[string]*scalar.Scalar // one leaf per variable, shared across mentions
	minusOne *scalar.Scalar            // shared -1 leaf for negation
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// expect consumes the current token if it has the wanted kind.
func (p *parser) expect(kind tokenKind, what string) error {
	if p.tok.kind != kind {
		return fmt.Errorf("%w: expected %s, got %s at offset %d", ErrSyntax, what, p.tok, p.tok.pos)
	}
	return p.advance()
}

func (p *parser) parseExpr() (*scalar.Scalar, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokPlus || p.tok.kind == tokMinus {
		neg := p.tok.kind == tokMinus
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if neg {
			right = p.negate(right)
		}
		left = ops.Plus.Apply(left, right)
	}
	return left, nil
}

func (p *parser) parseTerm() (*scalar.Scalar, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.tok.kind {
		case tokStar:
			if err := p.advance(); err != nil {
				return nil, err
			}
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = ops.Times.Apply(left, right)
		case tokSlash:
			if err := p.advance(); err != nil {
				return nil, err
			}
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			// a/b = a * b^-1, differentiable in both operands.
			left = ops.Times.Apply(left, ops.Pow.ApplyWith(scalar.Params{"p": -1}, right))
		case tokPercent:
			if err := p.advance(); err != nil {
				return nil, err
			}
			m, err := p.parseNumber("modulus")
			if err != nil {
				return nil, err
			}
			left = ops.Mod.ApplyWith(scalar.Params{"m": m}, left)
		default:
			return left, nil
		}
	}
}

func (p *parser) parseUnary() (*scalar.Scalar, error) {
	if p.tok.kind == tokMinus {
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return p.negate(operand), nil
	}
	return p.parsePower()
}

func (p *parser) parsePower() (*scalar.Scalar, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.tok.kind == tokCaret {
		if err := p.advance(); err != nil {
			return nil, err
		}
		exp, err := p.parseNumber("exponent")
		if err != nil {
			return nil, err
		}
		return ops.Pow.ApplyWith(scalar.Params{"p": exp}, base), nil
	}
	return base, nil
}

func (p *parser) parsePrimary() (*scalar.Scalar, error) {
	switch p.tok.kind {
	case tokNumber:
		v := p.tok.num
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.graph.Value(v), nil
	case tokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokRParen, `")"`); err != nil {
			return nil, err
		}
		return inner, nil
	case tokIdent:
		name := p.tok.text
		pos := p.tok.pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.tok.kind == tokLParen {
			return p.parseCall(name, pos)
		}
		return p.resolveVariable(name, pos)
	default:
		return nil, fmt.Errorf("%w: unexpected %s at offset %d", ErrSyntax, p.tok, p.tok.pos)
	}
}

// parseCall parses "name(arg, ..., key=literal, ...)" into one catalog
// application. Positional arguments are expressions; keyword arguments are
// numeric literals passed as named constants.
func (p *parser) parseCall(name string, pos int) (*scalar.Scalar, error) {
	op, ok := p.registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q at offset %d", ErrUnknownFunction, name, pos)
	}
	if err := p.advance(); err != nil { // consume "("
		return nil, err
	}

	var inputs []*scalar.Scalar
	var params scalar.Params
	for p.tok.kind != tokRParen {
		if len(inputs) > 0 || params != nil {
			if err := p.expect(tokComma, `","`); err != nil {
				return nil, err
			}
		}
		if key, ok, err := p.tryKeyword(); err != nil {
			return nil, err
		} else if ok {
			v, err := p.parseNumber("keyword value")
			if err != nil {
				return nil, err
			}
			if params == nil {
				params = make(scalar.Params)
			}
			params[key] = v
			continue
		}
		if params != nil {
			return nil, fmt.Errorf("%w: positional argument after keyword at offset %d", ErrSyntax, p.tok.pos)
		}
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, arg)
	}
	if err := p.advance(); err != nil { // consume ")"
		return nil, err
	}

	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: %s needs at least one argument at offset %d", ErrSyntax, name, pos)
	}
	return op.ApplyWith(params, inputs...), nil
}

// tryKeyword consumes "ident =" if present, returning the key.
func (p *parser) tryKeyword() (string, bool, error) {
	if p.tok.kind != tokIdent {
		return "", false, nil
	}
	// One token of lookahead: "ident =" starts a keyword, anything else
	// is an expression beginning with an identifier.
	saved := *p.lex
	next, err := p.lex.next()
	if err != nil {
		return "", false, err
	}
	if next.kind != tokAssign {
		*p.lex = saved
		return "", false, nil
	}
	key := p.tok.text
	if err := p.advance(); err != nil {
		return "", false, err
	}
	return key, true, nil
}

// parseNumber consumes a numeric literal with optional leading minus.
func (p *parser) parseNumber(what string) (float64, error) {
	neg := false
	if p.tok.kind == tokMinus {
		neg = true
		if err := p.advance(); err != nil {
			return 0, err
		}
	}
	if p.tok.kind != tokNumber {
		return 0, fmt.Errorf("%w: %s at offset %d, got %s", ErrConstantRequired, what, p.tok.pos, p.tok)
	}
	v := p.tok.num
	if neg {
		v = -v
	}
	if err := p.advance(); err != nil {
		return 0, err
	}
	return v, nil
}

func (p *parser) resolveVariable(name string, pos int) (*scalar.Scalar, error) {
	if leaf, ok := p.leaves[name]; ok {
		return leaf, nil
	}
	v, ok := p.values[name]
	if !ok {
		switch name {
		case "pi":
			v = math.Pi
		case "e":
			v = math.E
		default:
			return nil, fmt.Errorf("%w: %q at offset %d", ErrUnboundVariable, name, pos)
		}
		// Built-in constants are plain leaves, not reported in Vars.
		return p.graph.Value(v), nil
	}
	leaf := p.graph.Value(v)
	p.leaves[name] = leaf
	return leaf, nil
}

// negate builds -x as x * (-1), reusing one shared -1 leaf per parse.
func (p *parser) negate(x *scalar.Scalar) *scalar.Scalar {
	if p.minusOne == nil {
		p.minusOne = p.graph.Value(-1)
	}
	return ops.Times.Apply(x, p.minusOne)
}
