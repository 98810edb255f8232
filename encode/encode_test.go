package encode

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/objkit/json-format/go-json/ir"
)

func obj(kvs ...ir.KeyVal) *ir.Node { return ir.FromKeyVals(kvs) }
func kv(k string, v *ir.Node) ir.KeyVal {
	return ir.KeyVal{Key: k, Val: v}
}

func TestEncodeCompact(t *testing.T) {
	tts := []struct {
		node *ir.Node
		out  string
	}{
		{ir.Null(), `null`},
		{ir.FromBool(true), `true`},
		{ir.FromBool(false), `false`},
		{ir.FromInt(3), `3`},
		{ir.FromInt(-17), `-17`},
		{ir.FromFloat(3.5), `3.5`},
		{ir.FromFloat(1e-7), `1e-07`},
		{ir.FromString("hi"), `"hi"`},
		{ir.FromString("a\"b\n"), `"a\"b\n"`},
		{ir.FromSlice(nil), `[]`},
		{ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.Null()}), `[1,null]`},
		{obj(), `{}`},
		{obj(kv("a", ir.FromInt(1)), kv("b", ir.FromString("x"))), `{"a":1,"b":"x"}`},
		{
			obj(kv("a", ir.FromSlice([]*ir.Node{obj(kv("b", ir.Null()))}))),
			`{"a":[{"b":null}]}`,
		},
	}
	for _, tt := range tts {
		buf := bytes.NewBuffer(nil)
		if err := Encode(tt.node, buf); err != nil {
			t.Errorf("%s: %s", tt.out, err)
			continue
		}
		if buf.String() != tt.out {
			t.Errorf("got %s, want %s", buf.String(), tt.out)
		}
	}
}

func TestEncodePretty(t *testing.T) {
	node := obj(
		kv("a", ir.FromInt(1)),
		kv("b", ir.FromSlice([]*ir.Node{ir.FromBool(true), ir.Null()})),
		kv("c", obj()),
	)
	want := `{
  "a": 1,
  "b": [
    true,
    null
  ],
  "c": {}
}`
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, Pretty()); err != nil {
		t.Fatal(err)
	}
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestEncodeIndent(t *testing.T) {
	node := ir.FromSlice([]*ir.Node{ir.FromInt(1)})
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, Pretty(), Indent(4)); err != nil {
		t.Fatal(err)
	}
	if want := "[\n    1\n]"; buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestEncodeNaNInf(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := Encode(ir.FromFloat(f), bytes.NewBuffer(nil))
		if !errors.Is(err, ErrEncoding) {
			t.Errorf("%v: got %v, want %v", f, err, ErrEncoding)
		}
	}
}
