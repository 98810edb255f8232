// Package encode serializes ir document trees to JSON text.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("alice")},
//	    {Key: "age", Val: ir.FromInt(30)},
//	})
//	err := encode.Encode(node, &buf)
//	err = encode.Encode(node, &buf, encode.Pretty())
//
// # Related Packages
//
//   - github.com/objkit/json-format/go-json/ir - document tree
//   - github.com/objkit/json-format/go-json/parse - text to document tree
package encode
