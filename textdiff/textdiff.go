// Package textdiff renders line diffs of canonically encoded dynamic
// values.
package textdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	json "github.com/objkit/json-format/go-json"
)

// Diff pretty-encodes from and to and returns their line diff, with
// "-"/"+" prefixed lines. The empty string means the two values render
// identically.
func Diff(from, to any) (string, error) {
	fb, err := json.Encode(from, json.Pretty())
	if err != nil {
		return "", err
	}
	tb, err := json.Encode(to, json.Pretty())
	if err != nil {
		return "", err
	}
	return Lines(fb.String(), tb.String()), nil
}

// Lines diffs two texts line-wise.
func Lines(from, to string) string {
	dmp := diffpatch.New()
	fc, tc, lineIndex := dmp.DiffLinesToChars(terminated(from), terminated(to))
	diffs := dmp.DiffMain(fc, tc, false)
	diffs = dmp.DiffCharsToLines(diffs, lineIndex)
	if len(diffs) == 1 && diffs[0].Type == diffpatch.DiffEqual {
		return ""
	}
	b := &strings.Builder{}
	for i := range diffs {
		d := &diffs[i]
		var prefix string
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
		case diffpatch.DiffInsert:
			prefix = "+"
		default:
			prefix = " "
		}
		for _, ln := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			b.WriteString(prefix)
			b.WriteString(ln)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func terminated(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
