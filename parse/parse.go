package parse

import (
	"bytes"
	"io"

	"github.com/toon-format/go-toon/debug"
	"github.com/toon-format/go-toon/ir"
	"github.com/toon-format/go-toon/token"
)

// Parse parses an in-memory TOON document. It returns the root Object, the
// ordered diagnostics recorded along the way, and an error. The error is
// reserved for callers that cannot supply a buffer (see ParseReader);
// syntax problems never abort the parse and surface as diagnostics only.
func Parse(d []byte, opts ...Option) (*ir.Node, []Diagnostic, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{
		lines: splitLines(d),
		opts:  pOpts,
	}
	root := ir.NewObject()
	p.stack = append(p.stack, root)
	for p.li < len(p.lines) {
		line := p.lines[p.li]
		p.li++
		p.parseLine(line)
	}
	return root, p.diags, nil
}

// ParseString is Parse for string input.
func ParseString(s string, opts ...Option) (*ir.Node, []Diagnostic, error) {
	return Parse([]byte(s), opts...)
}

// ParseReader reads rc to completion, closes it, and parses the contents.
func ParseReader(rc io.ReadCloser, opts ...Option) (*ir.Node, []Diagnostic, error) {
	d, err := io.ReadAll(rc)
	if cerr := rc.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, nil, err
	}
	return Parse(d, opts...)
}

type parser struct {
	lines [][]byte
	li    int // index of the next unconsumed line
	opts  *parseOpts
	diags []Diagnostic

	// stack holds the open Object nodes, one per active indentation
	// level; stack[0] is the root.
	stack []*ir.Node
}

func splitLines(d []byte) [][]byte {
	lines := bytes.Split(d, []byte{'\n'})
	for i, ln := range lines {
		if len(ln) > 0 && ln[len(ln)-1] == '\r' {
			lines[i] = ln[:len(ln)-1]
		}
	}
	return lines
}

func commentOrBlank(line []byte) bool {
	t := bytes.TrimLeft(line, " \t")
	return len(t) == 0 || t[0] == '#'
}

func (p *parser) diag(sev Severity, line, col int, msg string) {
	p.diags = append(p.diags, Diagnostic{
		Severity: sev,
		File:     p.opts.file,
		Line:     line,
		Col:      col,
		Message:  msg,
	})
}

// parseLine handles one top-level line: indentation, key, optional [N] and
// {cols} headers, the colon, and the value dispatch. The line has already
// been consumed from p.lines; table values consume further lines.
func (p *parser) parseLine(line []byte) {
	lineNo := p.li // 1-based: li was already advanced past this line
	if commentOrBlank(line) {
		return
	}

	// 2 spaces = 1 level; odd counts truncate down; tabs are not indent.
	spaces := 0
	for spaces < len(line) && line[spaces] == ' ' {
		spaces++
	}
	level := spaces / 2

	rest := line[spaces:]
	keyEnd := bytes.IndexAny(rest, ":[{")
	if keyEnd < 0 {
		keyEnd = len(rest)
	}
	key := string(bytes.TrimSpace(rest[:keyEnd]))
	if key == "" {
		p.diag(SeverityError, lineNo, spaces+1, "missing key")
		return
	}

	hdr, hn := token.ParseHeader(rest[keyEnd:])
	ci := keyEnd + hn
	if ci >= len(rest) || rest[ci] != ':' {
		p.diag(SeverityError, lineNo, spaces+ci+1, "expected ':'")
		return
	}
	value := rest[ci+1:]

	if level >= p.opts.maxDepth {
		p.diag(SeverityError, lineNo, 1, "nesting depth exceeds limit")
		if hdr.HasColumns {
			// consume the tabular block too, or its rows would be
			// reparsed as ordinary lines
			p.skipTableRows(hdr.Count)
		}
		return
	}

	var (
		node *ir.Node
		open bool // node is an empty Object opened for deeper lines
	)
	switch {
	case hdr.HasColumns:
		node = p.parseTableRows(hdr.Count, hdr.Columns)
	case hdr.Count >= 0:
		node = p.parseListValues(value, lineNo)
		if n := len(node.Values); n != hdr.Count {
			p.diag(SeverityWarn, lineNo, spaces+keyEnd+1, "declared count does not match value count")
		}
	default:
		tok := token.Scalar(value)
		if tok.Type == token.TEmpty {
			node = ir.NewObject()
			open = true
		} else {
			node = p.scalarNode(tok, lineNo)
		}
	}
	node.Key = key

	// Reparent: pop to the enclosing level. A jump of more than one
	// level deeper than the deepest open object cannot be represented;
	// the node attaches to the deepest open parent instead.
	if level+1 < len(p.stack) {
		p.stack = p.stack[:level+1]
	} else if level+1 > len(p.stack) {
		p.diag(SeverityWarn, lineNo, 1, "indentation jumps more than one level")
	}
	parent := p.stack[len(p.stack)-1]
	parent.Append(node)
	if open {
		p.stack = append(p.stack, node)
	}

	if debug.Parse() {
		debug.LogAny(map[string]any{
			"line": lineNo, "level": level, "key": key, "type": node.Type.String(),
		})
	}
}

// scalarNode converts a non-empty scalar token into a node. Integer
// literals that overflow int64 are promoted to a float node.
func (p *parser) scalarNode(tok token.Token, lineNo int) *ir.Node {
	switch tok.Type {
	case token.TNull:
		return ir.Null()
	case token.TTrue:
		return ir.FromBool(true)
	case token.TFalse:
		return ir.FromBool(false)
	case token.TInteger:
		if i, ok := parseInt(tok.Bytes); ok {
			return ir.FromInt(i)
		}
		return ir.FromFloat(p.parseFloat(tok.Bytes, lineNo))
	case token.TFloat:
		return ir.FromFloat(p.parseFloat(tok.Bytes, lineNo))
	case token.TString, token.TLiteral:
		return ir.FromString(string(tok.Bytes))
	default:
		return ir.Null()
	}
}
