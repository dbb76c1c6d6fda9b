package encode

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/toon-format/go-toon/ir"
	"github.com/toon-format/go-toon/token"
)

type EncState struct {
	depth, indent int

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w as indented JSON followed by a newline. The
// Depth option sets the initial indentation depth for embedding the output
// inside an already-indented sink.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeNL(w io.Writer, es *EncState) error {
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func applyColor(es *EncState, t ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ListType:
		return encodeList(node, w, es)
	case ir.StringType:
		return writeString(w, applyColor(es, ir.StringType, ValueColor, token.Quote(node.String)))
	case ir.IntType:
		return writeString(w, applyColor(es, ir.IntType, ValueColor, strconv.FormatInt(node.Int64, 10)))
	case ir.FloatType:
		return writeString(w, applyColor(es, ir.FloatType, ValueColor, formatFloat(node.Float64)))
	case ir.BoolType:
		return writeString(w, applyColor(es, ir.BoolType, ValueColor, strconv.FormatBool(node.Bool)))
	case ir.NullType:
		return writeString(w, applyColor(es, ir.NullType, ValueColor, "null"))
	default:
		panic("type")
	}
}

// JSON has no representation for non-finite numbers; they emit as null.
func formatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "null"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		return writeString(w, applyColor(es, ir.ObjectType, SepColor, "{}"))
	}
	if err := writeString(w, applyColor(es, ir.ObjectType, SepColor, "{")); err != nil {
		return err
	}
	es.depth++
	for i, yv := range node.Values {
		if err := writeNL(w, es); err != nil {
			return err
		}
		key := applyColor(es, ir.ObjectType, FieldColor, token.Quote(yv.Key))
		sep := applyColor(es, ir.ObjectType, SepColor, ": ")
		if err := writeString(w, key+sep); err != nil {
			return err
		}
		if err := encode(yv, w, es); err != nil {
			return err
		}
		if i < len(node.Values)-1 {
			if err := writeString(w, applyColor(es, ir.ObjectType, SepColor, ",")); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, applyColor(es, ir.ObjectType, SepColor, "}"))
}

func encodeList(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		return writeString(w, applyColor(es, ir.ListType, SepColor, "[]"))
	}
	if err := writeString(w, applyColor(es, ir.ListType, SepColor, "[")); err != nil {
		return err
	}
	es.depth++
	for i, yv := range node.Values {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(yv, w, es); err != nil {
			return err
		}
		if i < len(node.Values)-1 {
			if err := writeString(w, applyColor(es, ir.ListType, SepColor, ",")); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, applyColor(es, ir.ListType, SepColor, "]"))
}
