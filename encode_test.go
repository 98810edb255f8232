package json

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
)

func mustEncode(t *testing.T, v any, opts ...EncodeOption) string {
	t.Helper()
	buf, err := Encode(v, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestEncodeScalars(t *testing.T) {
	tts := []struct {
		v   any
		out string
	}{
		{nil, `null`},
		{true, `true`},
		{false, `false`},
		{"hi", `"hi"`},
		{Keyword("k"), `"k"`},
		{[]byte("raw"), `"raw"`},
		{[]any{}, `[]`},
		{map[string]any{}, `{}`},
		{int(7), `7`},
		{int64(-9), `-9`},
		{uint8(255), `255`},
	}
	for _, tt := range tts {
		if got := mustEncode(t, tt.v); got != tt.out {
			t.Errorf("%#v: got %s, want %s", tt.v, got, tt.out)
		}
	}
}

func TestEncodeIntFloatDistinction(t *testing.T) {
	if got := mustEncode(t, 3.0); got != `3` {
		t.Errorf("3.0 encoded as %s, want 3", got)
	}
	if got := mustEncode(t, 3.5); got != `3.5` {
		t.Errorf("3.5 encoded as %s, want 3.5", got)
	}
	if got := mustEncode(t, -0.0); got != `0` {
		t.Errorf("-0.0 encoded as %s, want 0", got)
	}
	// integral but outside int64 range stays floating point
	if got := mustEncode(t, 1e300); got != `1e+300` {
		t.Errorf("1e300 encoded as %s", got)
	}
}

func TestEncodeNullSpelling(t *testing.T) {
	for _, v := range []any{"null", Keyword("null"), []byte("null")} {
		if got := mustEncode(t, v); got != `null` {
			t.Errorf("%#v: got %s, want null", v, got)
		}
	}
	if got := mustEncode(t, "nulls"); got != `"nulls"` {
		t.Errorf("got %s, want \"nulls\"", got)
	}
}

func TestEncodeMapsSorted(t *testing.T) {
	v := map[string]any{"b": 1.0, "a": 2.0, "c": nil}
	if got := mustEncode(t, v); got != `{"a":2,"b":1,"c":null}` {
		t.Errorf("got %s", got)
	}
	kw := map[Keyword]any{Keyword("b"): true, Keyword("a"): false}
	if got := mustEncode(t, kw); got != `{"a":false,"b":true}` {
		t.Errorf("got %s", got)
	}
}

func TestEncodeAnyMapTombstones(t *testing.T) {
	v := map[any]any{
		nil:          "dropped",
		"a":          1.0,
		Keyword("b"): 2.0,
	}
	if got := mustEncode(t, v); got != `{"a":1,"b":2}` {
		t.Errorf("got %s", got)
	}
}

func TestEncodeInvalidKey(t *testing.T) {
	_, err := Encode(map[any]any{3.0: "x"})
	if !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("got %v, want %v", err, ErrInvalidKey)
	}
	if !strings.HasPrefix(err.Error(), "encode error: object key must be a byte sequence") {
		t.Errorf("message %q", err.Error())
	}
}

func TestEncodeUnsupported(t *testing.T) {
	_, err := Encode(func() {})
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("got %v, want %v", err, ErrUnsupportedType)
	}
	if !strings.HasPrefix(err.Error(), "encode error: type not supported") {
		t.Errorf("message %q", err.Error())
	}
	_, err = Encode([]any{1.0, make(chan int)})
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("nested: got %v, want %v", err, ErrUnsupportedType)
	}
}

func TestEncodeNaN(t *testing.T) {
	_, err := Encode(math.NaN())
	if err == nil {
		t.Fatal("no error")
	}
	if err.Error() != "encode error: nan or inf number is not allowed" {
		t.Errorf("message %q", err.Error())
	}
}

func TestEncodeAppend(t *testing.T) {
	buf := bytes.NewBufferString("log: ")
	out, err := Encode(true, Buffer(buf))
	if err != nil {
		t.Fatal(err)
	}
	if out != buf {
		t.Fatal("returned buffer is not the supplied one")
	}
	if buf.String() != "log: true" {
		t.Errorf("got %q", buf.String())
	}
}

func TestEncodeAppendUntouchedOnFailure(t *testing.T) {
	buf := bytes.NewBufferString("keep")
	_, err := Encode([]any{func() {}}, Buffer(buf))
	if err == nil {
		t.Fatal("no error")
	}
	if buf.String() != "keep" {
		t.Errorf("sink modified on failure: %q", buf.String())
	}
}

func TestEncodePretty(t *testing.T) {
	v := map[string]any{"a": 1.0, "b": []any{true, nil}}
	want := `{
  "a": 1,
  "b": [
    true,
    null
  ]
}`
	if got := mustEncode(t, v, Pretty()); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeCycleGuard(t *testing.T) {
	a := make([]any, 1)
	a[0] = a
	_, err := Encode(a)
	if !errors.Is(err, ErrRecursionLimit) {
		t.Fatalf("got %v, want %v", err, ErrRecursionLimit)
	}
	m := map[string]any{}
	m["self"] = m
	_, err = Encode(m)
	if !errors.Is(err, ErrRecursionLimit) {
		t.Fatalf("got %v, want %v", err, ErrRecursionLimit)
	}
}

func TestEncodeMaxDepthOption(t *testing.T) {
	v := []any{[]any{[]any{1.0}}}
	if _, err := Encode(v, EncodeMaxDepth(3)); err != nil {
		t.Fatalf("nesting within bound rejected: %s", err)
	}
	if _, err := Encode(v, EncodeMaxDepth(2)); !errors.Is(err, ErrRecursionLimit) {
		t.Fatalf("nesting beyond bound admitted: %v", err)
	}
}
