package json

import (
	"errors"
	"fmt"

	"github.com/objkit/json-format/go-json/debug"
	"github.com/objkit/json-format/go-json/ir"
	"github.com/objkit/json-format/go-json/parse"
)

type decodeOpts struct {
	keywordKeys bool
	nullToNil   bool
	maxDepth    int
}

type DecodeOption func(*decodeOpts)

// KeywordKeys decodes object keys as Keyword instead of string, at
// every nesting level.
func KeywordKeys() DecodeOption {
	return func(o *decodeOpts) { o.keywordKeys = true }
}

// NullToNil decodes JSON null as nil instead of the Null keyword, at
// every nesting level.
func NullToNil() DecodeOption {
	return func(o *decodeOpts) { o.nullToNil = true }
}

func DecodeMaxDepth(n int) DecodeOption {
	return func(o *decodeOpts) { o.maxDepth = n }
}

// Decode parses d and converts the document to a dynamic value.
// Malformed input fails with a *DecodeError carrying the byte offset
// and message of the parser's report.
func Decode(d []byte, opts ...DecodeOption) (any, error) {
	o := &decodeOpts{maxDepth: RecursionGuard}
	for _, f := range opts {
		f(o)
	}
	node, err := parse.Parse(d, parse.WithMaxDepth(o.maxDepth))
	if err != nil {
		if errors.Is(err, parse.ErrDepth) {
			return nil, &DecodeError{Err: ErrRecursionLimit}
		}
		var pe *parse.Error
		if errors.As(err, &pe) {
			return nil, &DecodeError{Pos: pe.Pos, Err: pe.Err}
		}
		return nil, &DecodeError{Err: err}
	}
	res, err := decodeOne(node, 0, o)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	if debug.Decode() {
		debug.Logf("decoded %#v\n", res)
	}
	return res, nil
}

func decodeOne(node *ir.Node, depth int, o *decodeOpts) (any, error) {
	if depth > o.maxDepth {
		return nil, ErrRecursionLimit
	}
	switch node.Type {
	case ir.NullType:
		if o.nullToNil {
			return nil, nil
		}
		return Null, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.NumberType:
		// numbers are always doubles in the dynamic value, even when
		// the source literal was integral
		if node.Int64 != nil {
			return float64(*node.Int64), nil
		}
		return *node.Float64, nil
	case ir.StringType:
		return node.String, nil
	case ir.ArrayType:
		res := make([]any, 0, len(node.Values))
		for _, v := range node.Values {
			sub, err := decodeOne(v, depth+1, o)
			if err != nil {
				return nil, err
			}
			res = append(res, sub)
		}
		return res, nil
	case ir.ObjectType:
		// duplicate fields collapse here, last write wins
		if o.keywordKeys {
			res := make(map[Keyword]any, len(node.Fields))
			for i, field := range node.Fields {
				sub, err := decodeOne(node.Values[i], depth+1, o)
				if err != nil {
					return nil, err
				}
				res[Keyword(field)] = sub
			}
			return res, nil
		}
		res := make(map[string]any, len(node.Fields))
		for i, field := range node.Fields {
			sub, err := decodeOne(node.Values[i], depth+1, o)
			if err != nil {
				return nil, err
			}
			res[field] = sub
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, node.Type)
	}
}
