package token

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// Quote renders v as a JSON string literal. Bytes outside the escape
// set are copied through untouched, so invalid utf-8 in v survives
// into the output byte for byte.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch c {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if c < 0x20 {
				d = append(d, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
			} else {
				d = append(d, c)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// quoted scans a string literal at the start of d, d[0] must be '"'.
// It returns the total number of bytes consumed including both quotes.
func quoted(d []byte) (int, error) {
	i := 1
	for i < len(d) {
		c := d[i]
		switch {
		case c == '"':
			return i + 1, nil
		case c == '\\':
			n, err := escape(d[i:])
			if err != nil {
				return 0, err
			}
			i += n
		case c < 0x20:
			return 0, ErrUnicodeControl
		default:
			i++
		}
	}
	return 0, ErrUnterminated
}

// escape scans one backslash escape at the start of d.
func escape(d []byte) (int, error) {
	if len(d) < 2 {
		return 0, ErrBadEscape
	}
	switch d[1] {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		return 2, nil
	case 'u':
		if len(d) < 6 {
			return 0, ErrBadUnicode
		}
		for _, c := range d[2:6] {
			if !hexDigit(c) {
				return 0, ErrBadUnicode
			}
		}
		return 6, nil
	default:
		return 0, ErrBadEscape
	}
}

func hexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}

func hex4(d []byte) rune {
	var r rune
	for _, c := range d[:4] {
		r <<= 4
		switch {
		case c >= '0' && c <= '9':
			r |= rune(c - '0')
		case c >= 'a' && c <= 'f':
			r |= rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			r |= rune(c-'A') + 10
		}
	}
	return r
}

// QuotedToString converts a scanned string literal, surrounding quotes
// included, to its string value. The literal must have passed quoted.
func QuotedToString(d []byte) string {
	b := &strings.Builder{}
	b.Grow(len(d) - 2)
	i := 1
	n := len(d) - 1
	for i < n {
		c := d[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		switch d[i+1] {
		case '"':
			b.WriteByte('"')
			i += 2
		case '\\':
			b.WriteByte('\\')
			i += 2
		case '/':
			b.WriteByte('/')
			i += 2
		case 'b':
			b.WriteByte('\b')
			i += 2
		case 'f':
			b.WriteByte('\f')
			i += 2
		case 'n':
			b.WriteByte('\n')
			i += 2
		case 'r':
			b.WriteByte('\r')
			i += 2
		case 't':
			b.WriteByte('\t')
			i += 2
		case 'u':
			r := hex4(d[i+2 : i+6])
			i += 6
			if utf16.IsSurrogate(r) && i+6 <= n && d[i] == '\\' && d[i+1] == 'u' {
				r2 := hex4(d[i+2 : i+6])
				if dec := utf16.DecodeRune(r, r2); dec != utf8.RuneError {
					r = dec
					i += 6
				}
			}
			if utf16.IsSurrogate(r) {
				r = utf8.RuneError
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}
