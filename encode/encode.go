package encode

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/objkit/json-format/go-json/ir"
	"github.com/objkit/json-format/go-json/token"
)

var ErrEncoding = errors.New("encoding error")

// EncState carries the serializer state through the recursion: depth
// and indent for pretty output, plus the optional colorizer.
type EncState struct {
	depth, indent int
	pretty        bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode serializes node to w, compact unless Pretty is given. No
// trailing newline is written, the output is exactly the document
// text.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.NullType:
		return writeValue(w, es, ir.NullType, "null")
	case ir.BoolType:
		return writeValue(w, es, ir.BoolType, strconv.FormatBool(node.Bool))
	case ir.NumberType:
		v, err := formatNumber(node)
		if err != nil {
			return err
		}
		return writeValue(w, es, ir.NumberType, v)
	case ir.StringType:
		return writeValue(w, es, ir.StringType, token.Quote(node.String))
	case ir.ArrayType:
		return encodeArr(node, w, es)
	case ir.ObjectType:
		return encodeObj(node, w, es)
	}
	return fmt.Errorf("%w: cannot encode node type %s", ErrEncoding, node.Type)
}

func formatNumber(node *ir.Node) (string, error) {
	if node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10), nil
	}
	f := *node.Float64
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: nan or inf number is not allowed", ErrEncoding)
	}
	fmtc := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		fmtc = 'e'
	}
	return strconv.FormatFloat(f, fmtc, -1, 64), nil
}

func encodeArr(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		return writeSep(w, es, ir.ArrayType, "[]")
	}
	if err := writeSep(w, es, ir.ArrayType, "["); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			if err := writeSep(w, es, ir.ArrayType, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.ArrayType, "]")
}

func encodeObj(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Fields) == 0 {
		return writeSep(w, es, ir.ObjectType, "{}")
	}
	if err := writeSep(w, es, ir.ObjectType, "{"); err != nil {
		return err
	}
	es.depth++
	for i, field := range node.Fields {
		if i > 0 {
			if err := writeSep(w, es, ir.ObjectType, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeField(w, es, token.Quote(field)); err != nil {
			return err
		}
		sep := ":"
		if es.pretty {
			sep = ": "
		}
		if err := writeSep(w, es, ir.ObjectType, sep); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.ObjectType, "}")
}

// Helper functions for writing

func writeNL(w io.Writer, es *EncState) error {
	if !es.pretty {
		return nil
	}
	indent := strings.Repeat(" ", es.indent*es.depth)
	return writeString(w, "\n"+indent)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeValue(w io.Writer, es *EncState, t ir.Type, s string) error {
	if es.Color != nil {
		s = es.Color(t, ValueColor, s)
	}
	return writeString(w, s)
}

func writeField(w io.Writer, es *EncState, s string) error {
	if es.Color != nil {
		s = es.Color(ir.ObjectType, FieldColor, s)
	}
	return writeString(w, s)
}

func writeSep(w io.Writer, es *EncState, t ir.Type, s string) error {
	if es.Color != nil {
		s = es.Color(t, SepColor, s)
	}
	return writeString(w, s)
}
