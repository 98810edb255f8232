package json

import (
	"errors"
	"fmt"

	"github.com/objkit/json-format/go-json/token"
)

var (
	ErrUnsupportedType = errors.New("type not supported")
	ErrInvalidKey      = errors.New("object key must be a byte sequence")
	ErrRecursionLimit  = errors.New("recursed too deeply")
)

// DecodeError is any failure of Decode. Pos is set when the input was
// not well formed JSON; its byte offset and the underlying message
// come from the parser verbatim.
type DecodeError struct {
	Pos *token.Pos
	Err error
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (e *DecodeError) Error() string {
	if e.Pos != nil {
		return fmt.Sprintf("decode error at position %d: %s", e.Pos.I, e.Err.Error())
	}
	return fmt.Sprintf("decode error: %s", e.Err.Error())
}

// EncodeError is any failure of Encode.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode error: %s", e.Err.Error())
}
