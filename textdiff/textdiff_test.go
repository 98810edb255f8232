package textdiff

import (
	"strings"
	"testing"
)

func TestDiffEqual(t *testing.T) {
	v := map[string]any{"a": 1.0, "b": []any{true}}
	res, err := Diff(v, v)
	if err != nil {
		t.Fatal(err)
	}
	if res != "" {
		t.Errorf("got %q, want empty", res)
	}
}

func TestDiffChanged(t *testing.T) {
	from := map[string]any{"a": 1.0, "b": "same"}
	to := map[string]any{"a": 2.0, "b": "same"}
	res, err := Diff(from, to)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(res, `-  "a": 1,`) {
		t.Errorf("missing deletion in:\n%s", res)
	}
	if !strings.Contains(res, `+  "a": 2,`) {
		t.Errorf("missing insertion in:\n%s", res)
	}
	if !strings.Contains(res, ` "same"`) {
		t.Errorf("missing context in:\n%s", res)
	}
}

func TestLines(t *testing.T) {
	res := Lines("a\nb\nc", "a\nx\nc")
	want := " a\n-b\n+x\n c\n"
	if res != want {
		t.Errorf("got %q, want %q", res, want)
	}
}
