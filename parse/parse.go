// Package parse provides JSON parsing into the ir document tree.
package parse

import (
	"errors"
	"strconv"

	"github.com/objkit/json-format/go-json/debug"
	"github.com/objkit/json-format/go-json/ir"
	"github.com/objkit/json-format/go-json/token"
)

// Parse parses one JSON document into an ir tree. The grammar is
// strict RFC 8259: exactly one root value, no trailing content.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		var te *token.TokenizeErr
		if errors.As(err, &te) {
			return nil, errAt(te.Err, &te.Pos)
		}
		return nil, err
	}
	if debug.Tokens() {
		for i := range toks {
			debug.Logf("tok %s\n", toks[i].Info())
		}
	}
	off := 0
	res, err := parseOne(toks, &off, 0, pOpts)
	if err != nil {
		return nil, err
	}
	if off != len(toks) {
		return nil, errUnexpected(&toks[off], "end of input")
	}
	return res, nil
}

func parseOne(toks []token.Token, pi *int, depth int, opts *parseOpts) (*ir.Node, error) {
	if *pi >= len(toks) {
		return nil, errAt(ErrEnd, toks[len(toks)-1].Pos)
	}
	t := &toks[*pi]
	if depth > opts.maxDepth {
		return nil, errAt(ErrDepth, t.Pos)
	}
	switch t.Type {
	case token.TNull:
		*pi++
		return ir.Null(), nil
	case token.TTrue:
		*pi++
		return ir.FromBool(true), nil
	case token.TFalse:
		*pi++
		return ir.FromBool(false), nil
	case token.TString:
		*pi++
		return ir.FromString(t.String()), nil
	case token.TNumber:
		*pi++
		return parseNumber(t)
	case token.TLSquare:
		*pi++
		return parseArr(toks, pi, depth, opts)
	case token.TLCurl:
		*pi++
		return parseObj(toks, pi, depth, opts)
	default:
		return nil, errUnexpected(t, "a value")
	}
}

func parseNumber(t *token.Token) (*ir.Node, error) {
	if !t.IsFloat {
		i, err := strconv.ParseInt(string(t.Bytes), 10, 64)
		if err == nil {
			return ir.FromInt(i), nil
		}
		// out of int64 range, fall through to float
	}
	f, err := strconv.ParseFloat(string(t.Bytes), 64)
	if err != nil {
		return nil, errAt(err, t.Pos)
	}
	return ir.FromFloat(f), nil
}

func parseArr(toks []token.Token, pi *int, depth int, opts *parseOpts) (*ir.Node, error) {
	res := &ir.Node{Type: ir.ArrayType}
	if *pi < len(toks) && toks[*pi].Type == token.TRSquare {
		*pi++
		return res, nil
	}
	for {
		v, err := parseOne(toks, pi, depth+1, opts)
		if err != nil {
			return nil, err
		}
		res.Values = append(res.Values, v)
		if *pi >= len(toks) {
			return nil, errAt(ErrEnd, toks[len(toks)-1].Pos)
		}
		t := &toks[*pi]
		switch t.Type {
		case token.TComma:
			*pi++
		case token.TRSquare:
			*pi++
			return res, nil
		default:
			return nil, errUnexpected(t, "',' or ']'")
		}
	}
}

func parseObj(toks []token.Token, pi *int, depth int, opts *parseOpts) (*ir.Node, error) {
	res := &ir.Node{Type: ir.ObjectType}
	if *pi < len(toks) && toks[*pi].Type == token.TRCurl {
		*pi++
		return res, nil
	}
	for {
		if *pi >= len(toks) {
			return nil, errAt(ErrEnd, toks[len(toks)-1].Pos)
		}
		kt := &toks[*pi]
		if kt.Type != token.TString {
			return nil, errUnexpected(kt, "an object key")
		}
		*pi++
		if *pi >= len(toks) {
			return nil, errAt(ErrEnd, toks[len(toks)-1].Pos)
		}
		if toks[*pi].Type != token.TColon {
			return nil, errUnexpected(&toks[*pi], "':'")
		}
		*pi++
		v, err := parseOne(toks, pi, depth+1, opts)
		if err != nil {
			return nil, err
		}
		res.Fields = append(res.Fields, kt.String())
		res.Values = append(res.Values, v)
		if *pi >= len(toks) {
			return nil, errAt(ErrEnd, toks[len(toks)-1].Pos)
		}
		t := &toks[*pi]
		switch t.Type {
		case token.TComma:
			*pi++
		case token.TRCurl:
			*pi++
			return res, nil
		default:
			return nil, errUnexpected(t, "',' or '}'")
		}
	}
}
