// Package token classifies the lexical pieces of TOON lines: scalar value
// spans, the optional [N]{c1,c2,...} headers following a key, and JSON
// string quoting for the encoder.
//
// The package is deliberately line-blind: it operates on byte spans that the
// parser has already cut out of a line, and it never reports positions. The
// parser owns line/column accounting.
package token
