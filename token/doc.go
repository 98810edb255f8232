// Package token tokenizes JSON text per RFC 8259.
//
// Tokenize turns a byte slice into a flat token stream with byte-offset
// positions. String literals are validated here (escapes, control
// characters, unicode escapes) but left in their quoted form; use
// QuotedToString to obtain the string value.
package token
