package jsontree

// Type identifies the kind of a JSON value.
type Type uint8

const (
	TypeInteger Type = iota + 1 // TypeInteger is an integer literal, reported only in strict number mode.
	TypeDouble                  // TypeDouble is a number; its literal text is kept verbatim.
	TypeNull                    // TypeNull is the null literal.
	TypeFalse                   // TypeFalse is the false literal.
	TypeTrue                    // TypeTrue is the true literal.
	TypeString                  // TypeString is a string.
	TypeArray                   // TypeArray is an array.
	TypeObject                  // TypeObject is an object with ordered keys.
)

// String returns the bracketed type name used in error messages, e.g. "<integer>".
func (t Type) String() string {
	switch t {
	case TypeInteger:
		return "<integer>"
	case TypeDouble:
		return "<double>"
	case TypeNull:
		return "<null>"
	case TypeFalse:
		return "<false>"
	case TypeTrue:
		return "<true>"
	case TypeString:
		return "<string>"
	case TypeArray:
		return "<array>"
	case TypeObject:
		return "<object>"
	default:
		return "<unknown type>"
	}
}

// Value is a node of a parsed JSON document.
//
// Objects keep their keys in document order and may contain duplicate keys.
// The accessors panic on out-of-range indices, like slice indexing.
type Value struct {
	typ   Type
	text  string   // string content or number literal
	keys  []string // object keys, parallel to elems
	elems []Value  // array elements or object values
}

// Type returns the kind of v.
func (v *Value) Type() Type {
	return v.typ
}

// Len returns the number of elements of an array or members of an object,
// and 0 for scalars.
func (v *Value) Len() int {
	return len(v.elems)
}

// Key returns the i-th key of an object.
func (v *Value) Key(i int) string {
	return v.keys[i]
}

// ObjectValue returns the i-th member value of an object.
func (v *Value) ObjectValue(i int) *Value {
	return &v.elems[i]
}

// Elem returns the i-th element of an array.
func (v *Value) Elem(i int) *Value {
	return &v.elems[i]
}

// String returns the content of a string or the literal text of a number.
// Other values render as their JSON literal or type name.
func (v *Value) String() string {
	switch v.typ {
	case TypeString, TypeDouble, TypeInteger:
		return v.text
	case TypeNull:
		return "null"
	case TypeTrue:
		return "true"
	case TypeFalse:
		return "false"
	default:
		return v.typ.String()
	}
}
