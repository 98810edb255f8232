package token

import "bytes"

var (
	litTrue  = []byte("true")
	litFalse = []byte("false")
	litNull  = []byte("null")
)

// Tokenize appends the tokens of the JSON document src to dst. The
// returned tokens share position state through one PosDoc, so byte
// offsets map back to line/column pairs.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	pd := NewPosDoc(src)
	i, n := 0, len(src)
	for i < n {
		c := src[i]
		switch c {
		case ' ', '\t', '\r':
			i++
			continue
		case '\n':
			pd.nl(i)
			i++
			continue
		case '{':
			dst = append(dst, punct(TLCurl, pd, i, src))
			i++
		case '}':
			dst = append(dst, punct(TRCurl, pd, i, src))
			i++
		case '[':
			dst = append(dst, punct(TLSquare, pd, i, src))
			i++
		case ']':
			dst = append(dst, punct(TRSquare, pd, i, src))
			i++
		case ',':
			dst = append(dst, punct(TComma, pd, i, src))
			i++
		case ':':
			dst = append(dst, punct(TColon, pd, i, src))
			i++
		case '"':
			sz, err := quoted(src[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, pd.Pos(i))
			}
			dst = append(dst, Token{
				Type:  TString,
				Pos:   pd.Pos(i),
				Bytes: src[i : i+sz],
			})
			i += sz
		case 't':
			sz, err := literal(src[i:], litTrue)
			if err != nil {
				return nil, NewTokenizeErr(err, pd.Pos(i))
			}
			dst = append(dst, punctSz(TTrue, pd, i, src, sz))
			i += sz
		case 'f':
			sz, err := literal(src[i:], litFalse)
			if err != nil {
				return nil, NewTokenizeErr(err, pd.Pos(i))
			}
			dst = append(dst, punctSz(TFalse, pd, i, src, sz))
			i += sz
		case 'n':
			sz, err := literal(src[i:], litNull)
			if err != nil {
				return nil, NewTokenizeErr(err, pd.Pos(i))
			}
			dst = append(dst, punctSz(TNull, pd, i, src, sz))
			i += sz
		default:
			if c == '-' || asciiDigit(c) {
				sz, isFloat, err := number(src[i:])
				if err != nil {
					return nil, NewTokenizeErr(err, pd.Pos(i))
				}
				dst = append(dst, Token{
					Type:    TNumber,
					Pos:     pd.Pos(i),
					Bytes:   src[i : i+sz],
					IsFloat: isFloat,
				})
				i += sz
				continue
			}
			return nil, UnexpectedErr(quoteByte(c), pd.Pos(i))
		}
	}
	if len(dst) == 0 {
		return nil, NewTokenizeErr(ErrEmptyDoc, pd.Pos(0))
	}
	return dst, nil
}

func punct(t TokenType, pd *PosDoc, i int, src []byte) Token {
	return punctSz(t, pd, i, src, 1)
}

func punctSz(t TokenType, pd *PosDoc, i int, src []byte, sz int) Token {
	return Token{
		Type:  t,
		Pos:   pd.Pos(i),
		Bytes: src[i : i+sz],
	}
}

func literal(d, lit []byte) (int, error) {
	if !bytes.HasPrefix(d, lit) {
		return 0, ErrLiteral
	}
	return len(lit), nil
}

func quoteByte(c byte) string {
	return "character " + Quote(string(rune(c)))
}
