package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Tokens bool
	Decode bool
	Encode bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("JX_DEBUG_TOKENS")
	d.Decode = boolEnv("JX_DEBUG_DECODE")
	d.Encode = boolEnv("JX_DEBUG_ENCODE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func Decode() bool {
	return d.Decode
}
func Encode() bool {
	return d.Encode
}
