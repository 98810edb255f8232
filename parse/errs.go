package parse

import (
	"errors"
	"fmt"

	"github.com/objkit/json-format/go-json/token"
)

var (
	ErrParse = errors.New("parse error")
	ErrDepth = errors.New("nesting too deep")
	ErrEnd   = errors.New("unexpected end of input")
)

// Error is a parse failure at a position. Err carries the underlying
// report verbatim; Pos.I is its byte offset.
type Error struct {
	Pos *token.Pos
	Err error
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s at %s", ErrParse, e.Err.Error(), e.Pos.String())
}

func errAt(err error, pos *token.Pos) *Error {
	return &Error{Pos: pos, Err: err}
}

func errUnexpected(t *token.Token, want string) *Error {
	return &Error{
		Pos: t.Pos,
		Err: fmt.Errorf("unexpected %q, expected %s", string(t.Bytes), want),
	}
}
