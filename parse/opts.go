package parse

// DefaultMaxDepth bounds the descent when no WithMaxDepth option is
// given. It matches json.RecursionGuard so that the parser never
// admits a tree the conversion layer would reject.
const DefaultMaxDepth = 2048

type parseOpts struct {
	maxDepth int
}

type ParseOption func(*parseOpts)

func WithMaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}
