package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	IntType
	FloatType
	StringType
	BoolType
	ObjectType
	ListType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		ObjectType: "Object",
		ListType:   "List",
		StringType: "String",
		IntType:    "Int",
		FloatType:  "Float",
		BoolType:   "Bool",
		NullType:   "Null",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":   NullType,
		"Bool":   BoolType,
		"Int":    IntType,
		"Float":  FloatType,
		"String": StringType,
		"List":   ListType,
		"Object": ObjectType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		IntType,
		FloatType,
		StringType,
		BoolType,
		ObjectType,
		ListType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ListType:
		return false
	default:
		return true
	}
}
