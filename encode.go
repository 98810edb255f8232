package json

import (
	"bytes"
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/objkit/json-format/go-json/debug"
	"github.com/objkit/json-format/go-json/encode"
	"github.com/objkit/json-format/go-json/ir"
)

type encodeOpts struct {
	pretty   bool
	buf      *bytes.Buffer
	maxDepth int
}

type EncodeOption func(*encodeOpts)

// Pretty emits 2-space indented output instead of the compact form.
func Pretty() EncodeOption {
	return func(o *encodeOpts) { o.pretty = true }
}

// Buffer appends the output to buf instead of a new buffer. Existing
// content in buf is left untouched; on failure nothing is written.
func Buffer(buf *bytes.Buffer) EncodeOption {
	return func(o *encodeOpts) { o.buf = buf }
}

func EncodeMaxDepth(n int) EncodeOption {
	return func(o *encodeOpts) { o.maxDepth = n }
}

// Encode converts a dynamic value to JSON text, returning the buffer
// the text was appended to: the one given via Buffer, else a new one.
func Encode(v any, opts ...EncodeOption) (*bytes.Buffer, error) {
	o := &encodeOpts{maxDepth: RecursionGuard}
	for _, f := range opts {
		f(o)
	}
	node, err := encodeOne(v, 0, o)
	if err != nil {
		return nil, &EncodeError{Err: err}
	}
	if debug.Encode() {
		debug.Logf("encoding %v\n", node)
	}
	var encOpts []encode.EncodeOption
	if o.pretty {
		encOpts = append(encOpts, encode.Pretty())
	}
	// serialize fully before touching a caller-supplied sink, so a
	// write-side failure cannot leave partial text behind
	out := bytes.NewBuffer(nil)
	if err := encode.Encode(node, out, encOpts...); err != nil {
		return nil, &EncodeError{Err: err}
	}
	if o.buf == nil {
		return out, nil
	}
	o.buf.Write(out.Bytes())
	return o.buf, nil
}

func encodeOne(v any, depth int, o *encodeOpts) (*ir.Node, error) {
	if depth > o.maxDepth {
		return nil, ErrRecursionLimit
	}
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case float64:
		return numberNode(x)
	case float32:
		return numberNode(float64(x))
	case int:
		return ir.FromInt(int64(x)), nil
	case int8:
		return ir.FromInt(int64(x)), nil
	case int16:
		return ir.FromInt(int64(x)), nil
	case int32:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint:
		return numberNode(float64(x))
	case uint8:
		return ir.FromInt(int64(x)), nil
	case uint16:
		return ir.FromInt(int64(x)), nil
	case uint32:
		return ir.FromInt(int64(x)), nil
	case uint64:
		return numberNode(float64(x))
	case string:
		return stringNode(x), nil
	case Keyword:
		return stringNode(string(x)), nil
	case []byte:
		return stringNode(string(x)), nil
	case []any:
		res := &ir.Node{Type: ir.ArrayType}
		res.Values = make([]*ir.Node, 0, len(x))
		for _, item := range x {
			sub, err := encodeOne(item, depth+1, o)
			if err != nil {
				return nil, err
			}
			res.Values = append(res.Values, sub)
		}
		return res, nil
	case map[string]any:
		kvs := make([]ir.KeyVal, 0, len(x))
		for _, k := range slices.Sorted(maps.Keys(x)) {
			kvs = append(kvs, ir.KeyVal{Key: k})
		}
		return objNode(kvs, func(k string) any { return x[k] }, depth, o)
	case map[Keyword]any:
		kvs := make([]ir.KeyVal, 0, len(x))
		for _, k := range slices.Sorted(maps.Keys(x)) {
			kvs = append(kvs, ir.KeyVal{Key: string(k)})
		}
		return objNode(kvs, func(k string) any { return x[Keyword(k)] }, depth, o)
	case map[any]any:
		return anyMapNode(x, depth, o)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}

func objNode(kvs []ir.KeyVal, get func(string) any, depth int, o *encodeOpts) (*ir.Node, error) {
	for i := range kvs {
		sub, err := encodeOne(get(kvs[i].Key), depth+1, o)
		if err != nil {
			return nil, err
		}
		kvs[i].Val = sub
	}
	return ir.FromKeyVals(kvs), nil
}

// anyMapNode handles the fully dynamic mapping kind: nil keys are
// tombstone slots and are skipped, non-byte-sequence keys are
// rejected.
func anyMapNode(m map[any]any, depth int, o *encodeOpts) (*ir.Node, error) {
	kvs := make([]ir.KeyVal, 0, len(m))
	vals := make(map[string]any, len(m))
	for k, v := range m {
		if k == nil {
			continue
		}
		ks, ok := byteSeq(k)
		if !ok {
			return nil, fmt.Errorf("%w (have %T)", ErrInvalidKey, k)
		}
		if _, dup := vals[ks]; !dup {
			kvs = append(kvs, ir.KeyVal{Key: ks})
		}
		vals[ks] = v
	}
	slices.SortFunc(kvs, func(a, b ir.KeyVal) int {
		return strings.Compare(a.Key, b.Key)
	})
	return objNode(kvs, func(k string) any { return vals[k] }, depth, o)
}

func stringNode(s string) *ir.Node {
	// any byte-sequence-like value spelling exactly null encodes as
	// the JSON null token
	if s == "null" {
		return ir.Null()
	}
	return ir.FromString(s)
}

func numberNode(f float64) (*ir.Node, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("nan or inf number is not allowed")
	}
	// integral doubles in int64 range emit as integer literals
	if math.Round(f) == f && f >= -(1<<63) && f < 1<<63 {
		return ir.FromInt(int64(f)), nil
	}
	return ir.FromFloat(f), nil
}
