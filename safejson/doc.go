// Package safejson serialises arbitrary Go values to JSON without tripping over
// reference cycles. Output follows JavaScript JSON.stringify rules: a value
// that points back at one of its ancestors is replaced by the string
// "[Circular ~]" (the root) or "[Circular ~.path.to.ancestor]", non-finite
// numbers become null, and function or channel values are dropped from
// objects and rendered as null inside arrays.
//
// Maps are written with sorted keys, structs honour `json` tags ("-",
// omitempty, renames) and flatten embedded structs, and types implementing
// json.Marshaler or encoding.TextMarshaler render themselves.
package safejson
