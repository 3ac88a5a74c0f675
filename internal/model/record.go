package model

import (
	"bytes"
	"strings"
)

// Field is a single named value within a Record.
type Field struct {
	Name  string
	Value Value
}

// Record is an ordered mapping of field names to values.
// Field order follows the source document. Duplicate names are kept in
// place; lookups return the first occurrence.
type Record struct {
	fields []Field
}

// NewRecord creates a Record holding the given fields in order.
func NewRecord(fields ...Field) *Record {
	return &Record{fields: fields}
}

// Add appends a field to the end of the record.
func (r *Record) Add(name string, value Value) {
	r.fields = append(r.fields, Field{Name: name, Value: value})
}

// Fields returns the record's fields in order.
// The returned slice must not be modified.
func (r *Record) Fields() []Field {
	if r == nil {
		return nil
	}
	return r.fields
}

// Len returns the number of fields in the record.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.fields)
}

// Get returns the value of the first field whose name matches name,
// ignoring case. The second result reports whether the field exists.
func (r *Record) Get(name string) (Value, bool) {
	if r == nil {
		return Value{}, false
	}
	for _, f := range r.fields {
		if strings.EqualFold(f.Name, name) {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Category returns the category value stored under field.
func (r *Record) Category(field string) (Value, bool) {
	return r.Get(field)
}

// hashContainerField is the nested object some exports use for hash values.
const hashContainerField = "hashes"

// Hash returns the value of the given hash algorithm for this record.
// The hash is looked up as a top-level field first (e.g. "MD5") and then
// inside a nested "hashes" object. Null and empty values count as absent.
func (r *Record) Hash(alg HashAlgorithm) (string, bool) {
	if !alg.IsValid() {
		return "", false
	}

	if v, ok := r.Get(alg.FieldName()); ok {
		return hashText(v)
	}

	container, ok := r.Get(hashContainerField)
	if !ok {
		return "", false
	}
	if v, ok := container.Object().Get(alg.FieldName()); ok {
		return hashText(v)
	}
	return "", false
}

// hashText extracts a usable hash string from a value.
func hashText(v Value) (string, bool) {
	if !v.IsScalar() {
		return "", false
	}
	text := v.Text()
	if text == "" {
		return "", false
	}
	return text, true
}

// Equal reports whether two records have the same fields in the same order.
func (r *Record) Equal(other *Record) bool {
	if r.Len() != other.Len() {
		return false
	}
	for i, f := range r.Fields() {
		o := other.fields[i]
		if f.Name != o.Name || !f.Value.Equal(o.Value) {
			return false
		}
	}
	return true
}

// MarshalJSON implements json.Marshaler, preserving field order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := r.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// encode appends the compact JSON encoding of the record to buf.
func (r *Record) encode(buf *bytes.Buffer) error {
	buf.WriteByte('{')
	for i, f := range r.Fields() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeField(buf, f); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

// encodeField appends `"name":value` to buf.
func encodeField(buf *bytes.Buffer, f Field) error {
	if err := encodeString(buf, f.Name); err != nil {
		return err
	}
	buf.WriteByte(':')
	return f.Value.encode(buf)
}
