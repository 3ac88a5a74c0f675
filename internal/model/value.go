package model

import (
	"bytes"
	"encoding/json"
)

// Kind identifies the JSON type held by a Value.
type Kind int

const (
	// KindNull is the JSON null literal.
	KindNull Kind = iota

	// KindString is a JSON string.
	KindString

	// KindNumber is a JSON number. The source literal is kept verbatim.
	KindNumber

	// KindBool is a JSON true or false.
	KindBool

	// KindObject is a JSON object, stored as an ordered Record.
	KindObject

	// KindArray is a JSON array.
	KindArray
)

// String returns the JSON type name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value is a tagged JSON value.
// The zero Value is null.
type Value struct {
	kind Kind

	// text holds the string content, the number literal, or "true"/"false".
	text string

	// object is set for KindObject.
	object *Record

	// items is set for KindArray.
	items []Value
}

// NullValue returns the JSON null value.
func NullValue() Value {
	return Value{kind: KindNull}
}

// StringValue returns a JSON string value.
func StringValue(s string) Value {
	return Value{kind: KindString, text: s}
}

// NumberValue returns a JSON number value from its literal text.
// The literal is not validated; callers pass what the decoder produced.
func NumberValue(literal string) Value {
	return Value{kind: KindNumber, text: literal}
}

// BoolValue returns a JSON boolean value.
func BoolValue(b bool) Value {
	if b {
		return Value{kind: KindBool, text: "true"}
	}
	return Value{kind: KindBool, text: "false"}
}

// ObjectValue wraps a Record as a JSON object value.
// A nil record is treated as an empty object.
func ObjectValue(r *Record) Value {
	if r == nil {
		r = NewRecord()
	}
	return Value{kind: KindObject, object: r}
}

// ArrayValue returns a JSON array value holding items in order.
func ArrayValue(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindArray, items: items}
}

// Kind returns the JSON type of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is JSON null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// IsScalar reports whether the value is a string, number, or boolean.
func (v Value) IsScalar() bool {
	return v.kind == KindString || v.kind == KindNumber || v.kind == KindBool
}

// Text returns the scalar text of the value: the string content, the number
// literal, or "true"/"false". It returns "" for null, objects, and arrays.
func (v Value) Text() string {
	if !v.IsScalar() {
		return ""
	}
	return v.text
}

// Object returns the Record of an object value, or nil.
func (v Value) Object() *Record {
	if v.kind != KindObject {
		return nil
	}
	return v.object
}

// Items returns the elements of an array value, or nil.
func (v Value) Items() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.items
}

// Equal reports whether two values are structurally equal.
// Numbers compare by literal text and objects compare field by field in order.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindObject:
		return v.object.Equal(other.object)
	case KindArray:
		if len(v.items) != len(other.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(other.items[i]) {
				return false
			}
		}
		return true
	default:
		return v.text == other.text
	}
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// encode appends the compact JSON encoding of v to buf.
func (v Value) encode(buf *bytes.Buffer) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindString:
		return encodeString(buf, v.text)
	case KindNumber, KindBool:
		buf.WriteString(v.text)
	case KindObject:
		return v.object.encode(buf)
	case KindArray:
		buf.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	}
	return nil
}

// encodeString appends s as a JSON string literal without HTML escaping.
func encodeString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}
