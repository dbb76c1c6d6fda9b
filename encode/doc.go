// Package encode emits IR trees as JSON text.
//
// # Usage
//
//	root, _, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//	if err := encode.Encode(root, os.Stdout); err != nil {
//	    return err
//	}
//
//	// start at a deeper indentation
//	err = encode.Encode(root, w, encode.Depth(2))
//
// String payloads are always escaped, so the output is valid JSON for
// arbitrary parsed content.
//
// # Related Packages
//
//   - github.com/toon-format/go-toon/ir - IR representation
//   - github.com/toon-format/go-toon/parse - Parse TOON text into IR
package encode
