package token

import "fmt"

type TokenType int

const (
	TString TokenType = iota
	TNumber
	TTrue
	TFalse
	TNull
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TComma
	TColon
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TString:  "TString",
		TNumber:  "TNumber",
		TTrue:    "TTrue",
		TFalse:   "TFalse",
		TNull:    "TNull",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TComma:   "TComma",
		TColon:   "TColon",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte

	// IsFloat is set on TNumber tokens whose literal carries a
	// fraction or exponent.
	IsFloat bool
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	if t.Type == TString {
		return QuotedToString(t.Bytes)
	}
	return string(t.Bytes)
}
