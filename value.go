// Package json is a bidirectional codec between JSON text and Go
// dynamic values.
//
// Decode parses JSON into plain Go values: nil, bool, float64, string,
// Keyword, []any and map[string]any (map[Keyword]any under
// KeywordKeys). Encode walks a dynamic value back to JSON text. Both
// directions are pure per-call functions with no shared state, so
// concurrent calls need no coordination.
package json

// Keyword is a string distinguished only by its type tag. It is used
// for symbolic markers rather than literal text: the default decoding
// of JSON null, and object keys under the KeywordKeys policy.
type Keyword string

// Null is what JSON null decodes to unless NullToNil is given. Note
// that encoding any byte-sequence-like value whose content is "null"
// emits the JSON null token, so Null round-trips.
const Null = Keyword("null")

// RecursionGuard is the default nesting depth limit of both Decode and
// Encode. Exceeding it fails with ErrRecursionLimit instead of
// exhausting the stack.
const RecursionGuard = 2048

// byteSeq reports whether v is byte-sequence-like, returning its
// content. These are the value kinds usable as object keys.
func byteSeq(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case Keyword:
		return string(x), true
	case []byte:
		return string(x), true
	default:
		return "", false
	}
}
