// Package parse parses TOON text into IR trees.
//
// # Usage
//
//	root, diags, err := parse.Parse([]byte("name: Alice\nage: 30\n"))
//	if err != nil {
//	    return err
//	}
//	for _, d := range diags {
//	    log.Print(d)
//	}
//	name := root.Get("name")
//
// Parsing never aborts on malformed lines: a line with a missing key or a
// missing colon is skipped, a Diagnostic is recorded, and parsing continues
// with the next line. The returned root is always an Object, even for empty
// or comment-only input.
//
// # Related Packages
//
//   - github.com/toon-format/go-toon/ir - IR representation
//   - github.com/toon-format/go-toon/encode - Encode IR as JSON
//   - github.com/toon-format/go-toon/token - Lexical classification
package parse
