package token

type TokenType int

const (
	// TEmpty is a span with no content after trimming. It is distinct
	// from TNull: the caller decides whether it means "nested object
	// follows" (property context) or null (list and table cells).
	TEmpty TokenType = iota
	TNull
	TTrue
	TFalse
	TInteger
	TFloat
	// TString is a double-quoted string; Bytes holds the contents with
	// the quotes stripped and no escape decoding applied.
	TString
	// TLiteral is a bare (unquoted) string.
	TLiteral
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TEmpty:   "TEmpty",
		TNull:    "TNull",
		TTrue:    "TTrue",
		TFalse:   "TFalse",
		TInteger: "TInteger",
		TFloat:   "TFloat",
		TString:  "TString",
		TLiteral: "TLiteral",
	}[t]
}

type Token struct {
	Type  TokenType
	Bytes []byte
}

func (t *Token) String() string {
	return string(t.Bytes)
}
