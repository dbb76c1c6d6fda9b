package parse

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/toon-format/go-toon/ir"
	"github.com/toon-format/go-toon/token"
)

// parseListValues parses a single-line comma-separated value list, e.g.
// the remainder of "nums[3]: 1,2,3". Interior empty cells become null; a
// line that ends at a separator contributes nothing after it.
func (p *parser) parseListValues(d []byte, lineNo int) *ir.Node {
	list := ir.NewList()
	rest := d
	for {
		j := bytes.IndexByte(rest, ',')
		field := rest
		if j >= 0 {
			field = rest[:j]
		}
		tok := token.Scalar(field)
		if tok.Type == token.TEmpty && j < 0 {
			break
		}
		if tok.Type == token.TEmpty {
			list.Append(ir.Null())
		} else {
			list.Append(p.scalarNode(tok, lineNo))
		}
		if j < 0 {
			break
		}
		rest = rest[j+1:]
	}
	return list
}

// parseTableRows consumes up to count lines as table rows keyed by cols,
// in declared column order. A negative count means no declared bound; rows
// then run until a blank line or end of input. Short tables stop silently.
// Rows shorter than the column list fill the missing columns with null;
// extra cells are dropped. Row indentation is consumed but not validated.
func (p *parser) parseTableRows(count int, cols []string) *ir.Node {
	list := ir.NewList()
	for count < 0 || len(list.Values) < count {
		if p.li >= len(p.lines) {
			break
		}
		line := p.lines[p.li]
		if len(bytes.TrimSpace(line)) == 0 {
			break
		}
		p.li++
		fields := strings.Split(string(line), ",")
		row := ir.NewObject()
		for i, col := range cols {
			var cell *ir.Node
			if i < len(fields) {
				tok := token.Scalar([]byte(fields[i]))
				if tok.Type == token.TEmpty {
					cell = ir.Null()
				} else {
					cell = p.scalarNode(tok, p.li)
				}
			} else {
				cell = ir.Null()
			}
			cell.Key = col
			row.Append(cell)
		}
		list.Append(row)
	}
	return list
}

// skipTableRows consumes a tabular block without parsing it, using the
// same termination rules as parseTableRows.
func (p *parser) skipTableRows(count int) {
	for n := 0; count < 0 || n < count; n++ {
		if p.li >= len(p.lines) {
			return
		}
		if len(bytes.TrimSpace(p.lines[p.li])) == 0 {
			return
		}
		p.li++
	}
}

func parseInt(d []byte) (int64, bool) {
	i, err := strconv.ParseInt(string(d), 10, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}

// parseFloat converts a grammar-validated numeric span. Magnitudes beyond
// float64 saturate to infinity in ParseFloat; that would leave JSON output
// unrepresentable, so they clamp to the largest finite value with a
// warning. Underflow keeps ParseFloat's result.
func (p *parser) parseFloat(d []byte, lineNo int) float64 {
	f, _ := strconv.ParseFloat(string(d), 64)
	if math.IsInf(f, 0) {
		p.diag(SeverityWarn, lineNo, 1, "float literal out of range")
		return math.Copysign(math.MaxFloat64, f)
	}
	return f
}
