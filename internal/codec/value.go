// Package codec implements the TOON (Token-Oriented Object Notation)
// encoder and decoder described in SPEC_FULL.md. TOON is a compact,
// indentation-sensitive serialization format whose data model is
// isomorphic to JSON. The package is organized as a pipeline:
//
//	Encode:  host value -> normalize -> Value -> shape analysis -> emitter -> text
//	Decode:  text -> scanner -> line cursor -> parser + driver -> Value -> host value
//
// Every exported type in this package is a plain value record; none of
// them hold shared mutable state, so Encode and Decode may run
// concurrently on independent goroutines.
package codec

import (
	"fmt"
	"strconv"
)

// Kind identifies which variant of the TOON data model a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Field is a single key/value pair inside an Object. Fields preserve the
// order they were constructed in; the tabular encoding in the emitter
// depends on that order.
type Field struct {
	Key   string
	Value Value
}

// Object is an ordered mapping of string keys to Values. Unlike a Go map,
// Object preserves insertion order, which is required by the tabular
// encoding (Invariant 2 of SPEC_FULL.md).
type Object struct {
	Fields []Field
}

// Get returns the value stored under key and whether it was present.
func (o Object) Get(key string) (Value, bool) {
	for _, f := range o.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Len returns the number of fields in the object.
func (o Object) Len() int { return len(o.Fields) }

// Keys returns the ordered key sequence of the object.
func (o Object) Keys() []string {
	keys := make([]string, len(o.Fields))
	for i, f := range o.Fields {
		keys[i] = f.Key
	}
	return keys
}

// Value is the tagged union underlying the TOON data model: null, bool,
// int64, float64, string, array of Value, or an ordered Object. Only the
// field matching Kind is meaningful; Value trees are built once and never
// mutated after construction.
type Value struct {
	Kind   Kind
	bool   bool
	int    int64
	float  float64
	str    string
	array  []Value
	object Object
}

// Null constructs the null Value.
func Null() Value { return Value{Kind: KindNull} }

// Bool constructs a boolean Value.
func Bool(b bool) Value { return Value{Kind: KindBool, bool: b} }

// Int constructs a signed 64-bit integer Value.
func Int(i int64) Value { return Value{Kind: KindInt, int: i} }

// Float constructs a 64-bit floating point Value.
func Float(f float64) Value { return Value{Kind: KindFloat, float: f} }

// Str constructs a string Value.
func Str(s string) Value { return Value{Kind: KindString, str: s} }

// Arr constructs an array Value from the given elements.
func Arr(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{Kind: KindArray, array: items}
}

// ArrSlice constructs an array Value from a slice without copying.
func ArrSlice(items []Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{Kind: KindArray, array: items}
}

// Obj constructs an object Value from ordered fields.
func Obj(fields ...Field) Value {
	return Value{Kind: KindObject, object: Object{Fields: fields}}
}

// ObjFrom constructs an object Value from an already-built Object.
func ObjFrom(o Object) Value { return Value{Kind: KindObject, object: o} }

// IsNull reports whether the value is the null primitive.
func (v Value) IsNull() bool { return v.Kind == KindNull }

// IsPrimitive reports whether the value is null, bool, int, float, or string.
func (v Value) IsPrimitive() bool {
	switch v.Kind {
	case KindNull, KindBool, KindInt, KindFloat, KindString:
		return true
	default:
		return false
	}
}

// BoolValue returns the boolean payload; valid only when Kind == KindBool.
func (v Value) BoolValue() bool { return v.bool }

// IntValue returns the integer payload; valid only when Kind == KindInt.
func (v Value) IntValue() int64 { return v.int }

// FloatValue returns the float payload; valid only when Kind == KindFloat.
func (v Value) FloatValue() float64 { return v.float }

// StrValue returns the string payload; valid only when Kind == KindString.
func (v Value) StrValue() string { return v.str }

// ArrayValue returns the element slice; valid only when Kind == KindArray.
func (v Value) ArrayValue() []Value { return v.array }

// ObjectValue returns the ordered fields; valid only when Kind == KindObject.
func (v Value) ObjectValue() Object { return v.object }

// Equal reports whether two values describe the same TOON data model tree.
// Object field order matters (insertion order is part of the model);
// int and float compare by kind and value separately, matching the
// decoder's int-vs-float classification rule.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindNull:
		return true
	case KindBool:
		return v.bool == other.bool
	case KindInt:
		return v.int == other.int
	case KindFloat:
		return v.float == other.float
	case KindString:
		return v.str == other.str
	case KindArray:
		if len(v.array) != len(other.array) {
			return false
		}
		for i := range v.array {
			if !v.array[i].Equal(other.array[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.object.Fields) != len(other.object.Fields) {
			return false
		}
		for i := range v.object.Fields {
			a, b := v.object.Fields[i], other.object.Fields[i]
			if a.Key != b.Key || !a.Value.Equal(b.Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// GoString renders a debug representation, mainly useful in test failures.
func (v Value) GoString() string {
	switch v.Kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.bool)
	case KindInt:
		return strconv.FormatInt(v.int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.float, 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.str)
	case KindArray:
		return fmt.Sprintf("%v", v.array)
	case KindObject:
		return fmt.Sprintf("%v", v.object.Fields)
	default:
		return "<invalid>"
	}
}
