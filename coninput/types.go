package coninput

// Kind identifies how a value is collected from the console.
type Kind int

const (
	// KindString reads one full line of text.
	KindString Kind = iota
	KindInt
	KindInt8
	KindInt16
	KindInt64
	KindFloat32
	KindFloat64
	KindBool
	// KindBigInt reads an arbitrary-precision integer (*math/big.Int).
	KindBigInt
	// KindDecimal reads an arbitrary-precision decimal (shopspring/decimal).
	KindDecimal
	// KindReader and KindWriter are pass-through kinds: the Builder hands
	// out its ambient input/output streams without prompting.
	KindReader
	KindWriter
	// KindSlice collects a size, then one element per index. Elem names
	// the element type.
	KindSlice
	// KindObject constructs a registered type through its factory. Name is
	// the registry key.
	KindObject
)

// Type describes a collectible value. Scalars need only Kind; slices carry
// their element type in Elem; objects carry their registry key in Name.
type Type struct {
	Kind Kind
	Elem *Type
	Name string
}

// String returns the short type name embedded in prompts.
func (t Type) String() string {
	switch t.Kind {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindInt8:
		return "int8"
	case KindInt16:
		return "int16"
	case KindInt64:
		return "int64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindBool:
		return "bool"
	case KindBigInt:
		return "big.Int"
	case KindDecimal:
		return "decimal.Decimal"
	case KindReader:
		return "io.Reader"
	case KindWriter:
		return "io.Writer"
	case KindSlice:
		if t.Elem == nil {
			return "[]"
		}
		return "[]" + t.Elem.String()
	case KindObject:
		return t.Name
	}
	return "?"
}

// Param describes one collectible parameter of an operation or factory.
// Params are always declared in invocation order.
type Param struct {
	Name string
	Type Type
}

// Shorthand constructors keep capability tables and factory declarations
// terse at the call site.

func String() Type  { return Type{Kind: KindString} }
func Int() Type     { return Type{Kind: KindInt} }
func Int8() Type    { return Type{Kind: KindInt8} }
func Int16() Type   { return Type{Kind: KindInt16} }
func Int64() Type   { return Type{Kind: KindInt64} }
func Float32() Type { return Type{Kind: KindFloat32} }
func Float64() Type { return Type{Kind: KindFloat64} }
func Bool() Type    { return Type{Kind: KindBool} }
func BigInt() Type  { return Type{Kind: KindBigInt} }
func Decimal() Type { return Type{Kind: KindDecimal} }
func Stdin() Type   { return Type{Kind: KindReader} }
func Stdout() Type  { return Type{Kind: KindWriter} }

// SliceOf returns the slice type over elem.
func SliceOf(elem Type) Type {
	e := elem
	return Type{Kind: KindSlice, Elem: &e}
}

// Object returns the type for a factory registered under name.
func Object(name string) Type {
	return Type{Kind: KindObject, Name: name}
}
