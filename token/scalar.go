package token

import "bytes"

// Scalar classifies one value span. The span is trimmed of surrounding
// whitespace before classification, so callers may pass raw field contents.
//
// Classification order: empty, double-quoted string, the true/false/null
// keywords (case sensitive), number, and finally bare string. A span that
// starts like a number but is not entirely consumed by the numeric grammar
// (e.g. "12ab") falls through to a bare string.
func Scalar(d []byte) Token {
	d = bytes.TrimSpace(d)
	if len(d) == 0 {
		return Token{Type: TEmpty}
	}
	if len(d) >= 2 && d[0] == '"' && d[len(d)-1] == '"' {
		// contents kept verbatim, no escape decoding
		return Token{Type: TString, Bytes: d[1 : len(d)-1]}
	}
	switch string(d) {
	case "true":
		return Token{Type: TTrue, Bytes: d}
	case "false":
		return Token{Type: TFalse, Bytes: d}
	case "null":
		return Token{Type: TNull, Bytes: d}
	}
	if n, isFloat := number(d); n == len(d) {
		if isFloat {
			return Token{Type: TFloat, Bytes: d}
		}
		return Token{Type: TInteger, Bytes: d}
	}
	return Token{Type: TLiteral, Bytes: d}
}
