package ir

// Node is a single value in a TOON tree. The Type field selects which
// payload fields are meaningful; see the package documentation.
type Node struct {
	Type Type

	// Key is the property name when this node is an Object member.
	// It is empty for list elements and for the document root.
	Key string

	String  string
	Bool    bool
	Int64   int64
	Float64 float64

	// Values holds Object properties or List elements, in insertion order.
	Values []*Node
}

func NewObject() *Node {
	return &Node{Type: ObjectType}
}

func NewList() *Node {
	return &Node{Type: ListType}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: IntType, Int64: v}
}

func FromFloat(v float64) *Node {
	return &Node{Type: FloatType, Float64: v}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func (y *Node) WithKey(key string) *Node {
	y.Key = key
	return y
}

// Append adds a child as the last member of an Object or List. It is a
// no-op on leaf nodes.
func (y *Node) Append(child *Node) *Node {
	if y.Type.IsLeaf() || child == nil {
		return y
	}
	y.Values = append(y.Values, child)
	return y
}

// Get returns the value of the first property named field, or nil when y is
// not an Object or has no such property.
func Get(y *Node, field string) *Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	for _, yv := range y.Values {
		if yv.Key == field {
			return yv
		}
	}
	return nil
}

func FromSlice(ySlice []*Node) *Node {
	res := NewList()
	res.Values = append(res.Values, ySlice...)
	return res
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{}
	*res = *y
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			res.Values[i] = yv.Clone()
		}
	}
	return res
}

// Visit walks the tree rooted at y, calling f before (isPost=false) and
// after (isPost=true) each node's children. Returning false from the pre
// call skips the children.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
