package json

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestDecodeNullPolicy(t *testing.T) {
	v, err := Decode([]byte(`null`))
	if err != nil {
		t.Fatal(err)
	}
	if v != Null {
		t.Errorf("got %#v, want the null keyword", v)
	}
	v, err = Decode([]byte(`null`), NullToNil())
	if err != nil {
		t.Fatal(err)
	}
	if v != nil {
		t.Errorf("got %#v, want nil", v)
	}
}

func TestDecodeNullPolicyNested(t *testing.T) {
	v, err := Decode([]byte(`{"a":[null]}`), NullToNil())
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"a": []any{nil}}
	if !reflect.DeepEqual(v, want) {
		t.Errorf("got %#v, want %#v", v, want)
	}
}

func TestDecodeKeyPolicy(t *testing.T) {
	v, err := Decode([]byte(`{"a":1}`))
	if err != nil {
		t.Fatal(err)
	}
	if want := (map[string]any{"a": float64(1)}); !reflect.DeepEqual(v, want) {
		t.Errorf("got %#v, want %#v", v, want)
	}
	v, err = Decode([]byte(`{"a":{"b":1}}`), KeywordKeys())
	if err != nil {
		t.Fatal(err)
	}
	want := map[Keyword]any{
		Keyword("a"): map[Keyword]any{Keyword("b"): float64(1)},
	}
	if !reflect.DeepEqual(v, want) {
		t.Errorf("got %#v, want %#v", v, want)
	}
}

func TestDecodeNumbersAreDoubles(t *testing.T) {
	v, err := Decode([]byte(`[3, 3.5, -2e2]`))
	if err != nil {
		t.Fatal(err)
	}
	want := []any{float64(3), 3.5, float64(-200)}
	if !reflect.DeepEqual(v, want) {
		t.Errorf("got %#v, want %#v", v, want)
	}
}

func TestDecodeScalars(t *testing.T) {
	tts := map[string]any{
		`true`:    true,
		`false`:   false,
		`"hi"`:    "hi",
		`""`:      "",
		`"null"`:  "null",
		`[]`:      []any{},
		`{}`:      map[string]any{},
		`"é"`: "é",
	}
	for in, want := range tts {
		v, err := Decode([]byte(in))
		if err != nil {
			t.Errorf("%s: %s", in, err)
			continue
		}
		if !reflect.DeepEqual(v, want) {
			t.Errorf("%s: got %#v, want %#v", in, v, want)
		}
	}
}

func TestDecodeDupKeysLastWins(t *testing.T) {
	v, err := Decode([]byte(`{"a":1,"a":2}`))
	if err != nil {
		t.Fatal(err)
	}
	if want := (map[string]any{"a": float64(2)}); !reflect.DeepEqual(v, want) {
		t.Errorf("got %#v, want %#v", v, want)
	}
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode([]byte(`{invalid`))
	if err == nil {
		t.Fatal("no error")
	}
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("not a DecodeError: %v", err)
	}
	if de.Pos == nil || de.Pos.I != 1 {
		t.Errorf("position %v, want offset 1", de.Pos)
	}
	msg := de.Error()
	if !strings.HasPrefix(msg, "decode error at position 1: ") {
		t.Errorf("message %q", msg)
	}
	if strings.TrimPrefix(msg, "decode error at position 1: ") == "" {
		t.Errorf("empty parser message in %q", msg)
	}
}

func TestDecodeDeepNesting(t *testing.T) {
	deep := strings.Repeat("[", 5000)
	_, err := Decode([]byte(deep))
	if !errors.Is(err, ErrRecursionLimit) {
		t.Fatalf("got %v, want %v", err, ErrRecursionLimit)
	}
	if got := err.Error(); got != "decode error: recursed too deeply" {
		t.Errorf("message %q", got)
	}
}

func TestDecodeWithinCustomDepth(t *testing.T) {
	if _, err := Decode([]byte(`[[1]]`), DecodeMaxDepth(2)); err != nil {
		t.Fatalf("nesting within bound rejected: %s", err)
	}
	if _, err := Decode([]byte(`[[[1]]]`), DecodeMaxDepth(2)); !errors.Is(err, ErrRecursionLimit) {
		t.Fatalf("nesting beyond bound admitted: %v", err)
	}
}
