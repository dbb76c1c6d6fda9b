package token

import (
	"bytes"
	"math"
	"strings"
)

// Header is the parsed form of the optional [N] and {c1,c2,...} annotations
// between a key and its colon.
type Header struct {
	// Count is the declared element count from [N], or -1 when absent.
	// [] with no digits also yields -1.
	Count int
	// Columns holds the {…} column names in declared order, trimmed but
	// not deduplicated. HasColumns distinguishes {} from no braces.
	Columns    []string
	HasColumns bool
}

// ParseHeader scans d for a header. It returns the header and the number of
// bytes consumed. Malformed annotations (unterminated [ or {) consume
// nothing past the opening bracket; the parser's colon check then rejects
// the line.
func ParseHeader(d []byte) (Header, int) {
	h := Header{Count: -1}
	i := 0
	if i < len(d) && d[i] == '[' {
		j := i + 1
		n := asciiDigits(d[j:])
		if n > 0 {
			h.Count = atoi(d[j : j+n])
			j += n
		}
		if j < len(d) && d[j] == ']' {
			i = j + 1
		} else {
			// no closing bracket: leave the cursor so the caller
			// fails the colon requirement
			return h, i
		}
	}
	if i < len(d) && d[i] == '{' {
		j := bytes.IndexByte(d[i:], '}')
		if j < 0 {
			return h, i
		}
		h.HasColumns = true
		inner := strings.TrimSpace(string(d[i+1 : i+j]))
		if inner != "" {
			h.Columns = strings.Split(inner, ",")
			for k := range h.Columns {
				h.Columns[k] = strings.TrimSpace(h.Columns[k])
			}
		}
		i += j + 1
	}
	return h, i
}

// atoi converts a digit run, saturating at MaxInt so absurd counts cannot
// wrap negative and change how the caller dispatches on Count.
func atoi(d []byte) int {
	n := 0
	for _, c := range d {
		if n > (math.MaxInt-9)/10 {
			return math.MaxInt
		}
		n = n*10 + int(c-'0')
	}
	return n
}
