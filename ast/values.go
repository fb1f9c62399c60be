package ast

// Type is one of *NamedType, *ListType or *NonNullType. Wrapping types nest
// exactly as written in the source.
//
// http://spec.graphql.org/draft/#sec-Type-References
type Type interface {
	Node
	isType()
}

// NamedType references a type by name, e.g. Int.
type NamedType struct {
	Name string
}

// ListType wraps OfType in a list, e.g. [Int].
type ListType struct {
	OfType Type
}

// NonNullType marks OfType as required, e.g. Int!.
type NonNullType struct {
	OfType Type
}

func (*NamedType) node()   {}
func (*ListType) node()    {}
func (*NonNullType) node() {}

func (*NamedType) isType()   {}
func (*ListType) isType()    {}
func (*NonNullType) isType() {}

// Value is an input value literal. It is one of *Variable, IntValue,
// FloatValue, StringValue, BooleanValue, NullValue, EnumValue, *ListValue or
// *ObjectValue.
//
// http://spec.graphql.org/draft/#sec-Input-Values
type Value interface {
	Node
	isValue()
}

// Variable is a reference to an operation variable, written $name.
type Variable struct {
	Name string
}

// IntValue is a 64 bit integer literal.
type IntValue int64

// FloatValue is a floating point literal.
type FloatValue float64

// StringValue holds the unescaped contents of a string literal.
type StringValue string

// BooleanValue is true or false.
type BooleanValue bool

// NullValue is the literal null.
type NullValue struct{}

// EnumValue is a bare enum name.
type EnumValue string

// ListValue is an ordered list of values.
type ListValue struct {
	Values []Value
}

// ObjectValue is an input object literal. Field order is preserved.
type ObjectValue struct {
	Fields []*ObjectField
}

// ObjectField is a single name/value pair of an ObjectValue.
type ObjectField struct {
	Name  string
	Value Value
}

func (*Variable) node()    {}
func (IntValue) node()     {}
func (FloatValue) node()   {}
func (StringValue) node()  {}
func (BooleanValue) node() {}
func (NullValue) node()    {}
func (EnumValue) node()    {}
func (*ListValue) node()   {}
func (*ObjectValue) node() {}
func (*ObjectField) node() {}

func (*Variable) isValue()    {}
func (IntValue) isValue()     {}
func (FloatValue) isValue()   {}
func (StringValue) isValue()  {}
func (BooleanValue) isValue() {}
func (NullValue) isValue()    {}
func (EnumValue) isValue()    {}
func (*ListValue) isValue()   {}
func (*ObjectValue) isValue() {}
