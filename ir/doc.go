// Package ir provides the in-memory representation of TOON documents.
//
// # Overview
//
// A TOON document (whether parsed from text or built programmatically) is a
// tree of ir.Node values. The tree follows the JSON data model: objects,
// lists, strings, integers, floats, booleans and null.
//
// # Node Structure
//
// Node is a tagged union. The Type field selects the kind, and only the
// payload fields for that kind are meaningful:
//
//   - StringType: String
//   - IntType: Int64
//   - FloatType: Float64
//   - BoolType: Bool
//   - NullType: no payload
//   - ObjectType, ListType: Values
//
// Reading a payload field under the wrong type yields that field's zero
// value; it is never undefined behavior.
//
// Object properties carry their name in the child's Key field, in insertion
// order. Keys are not required to be unique; lookups return the first match.
// List elements have an empty Key.
//
// Every node is owned by exactly one parent. Trees are not thread-safe;
// callers must synchronize access themselves.
//
// # Creating Nodes
//
//	obj := ir.NewObject()
//	obj.Append(ir.FromString("alice").WithKey("name"))
//	obj.Append(ir.FromInt(30).WithKey("age"))
//
//	arr := ir.NewList()
//	arr.Append(ir.FromInt(1))
//
// # Navigating Nodes
//
// Use Get with a dot-separated path, At for list indexing and Len for list
// length. All three report a miss as an absent result (nil node or false),
// never as a panic:
//
//	name := root.Get("user.name")
//	first := root.Get("nums").At(0)
//	n, ok := root.Get("nums").Len()
//
// # Related Packages
//
//   - github.com/toon-format/go-toon/parse - Parses TOON text into trees
//   - github.com/toon-format/go-toon/encode - Encodes trees as JSON
package ir
