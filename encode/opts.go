package encode

type EncodeOption func(*EncState)

// Pretty turns on pretty printing with the current indent width
// (2 spaces unless Indent overrides it).
func Pretty() EncodeOption {
	return func(es *EncState) { es.pretty = true }
}

func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
