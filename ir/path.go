package ir

import "strings"

// Get resolves a dot-separated path of property names against the tree
// rooted at y. Each segment selects the first property with that name,
// case-sensitively. A nil result means the path does not resolve. A literal
// "." cannot occur inside a key name; there is no escaping.
//
// Example:
//
//	root.Get("user.address.city")
func (y *Node) Get(path string) *Node {
	if y == nil || path == "" {
		return nil
	}
	res := y
	for seg := range strings.SplitSeq(path, ".") {
		if seg == "" {
			return nil
		}
		res = Get(res, seg)
		if res == nil {
			return nil
		}
	}
	return res
}

// At returns the list element at index i, or nil when y is not a List or i
// is out of range.
func (y *Node) At(i int) *Node {
	if y == nil || y.Type != ListType {
		return nil
	}
	if i < 0 || i >= len(y.Values) {
		return nil
	}
	return y.Values[i]
}

// Len returns the number of elements when y is a List. The second result is
// false for nil or non-List nodes; no sentinel length is ever reported.
func (y *Node) Len() (int, bool) {
	if y == nil || y.Type != ListType {
		return 0, false
	}
	return len(y.Values), true
}
