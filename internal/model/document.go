package model

import (
	"bytes"
)

// DefaultRecordsField is the top-level key holding the record collection
// in Project VIC (OData) exports.
const DefaultRecordsField = "value"

// ContextField is the OData context metadata key.
const ContextField = "odata.context"

// Document is a parsed Project VIC file.
// It keeps the top-level metadata fields in source order and remembers where
// the record collection appeared among them, so output reproduces the
// source document's shape.
type Document struct {
	// Metadata holds every top-level field except the record collection.
	Metadata []Field

	// RecordsField is the key the record collection was found under,
	// or the configured key when the collection was absent.
	RecordsField string

	// recordsIndex is the position of the collection among the top-level
	// keys. -1 means the collection was absent and is written last.
	recordsIndex int

	// Records holds the record collection in source order.
	Records []*Record

	// Skipped counts collection elements that were not objects.
	Skipped int
}

// NewDocument creates an empty Document whose collection lives under recordsField.
func NewDocument(recordsField string) *Document {
	if recordsField == "" {
		recordsField = DefaultRecordsField
	}
	return &Document{
		RecordsField: recordsField,
		recordsIndex: -1,
		Records:      []*Record{},
	}
}

// AddMetadata appends a top-level metadata field.
func (d *Document) AddMetadata(name string, value Value) {
	d.Metadata = append(d.Metadata, Field{Name: name, Value: value})
}

// MarkRecordsPosition records that the collection appears next among the
// top-level keys, under the given key.
func (d *Document) MarkRecordsPosition(key string) {
	d.RecordsField = key
	d.recordsIndex = len(d.Metadata)
}

// HasRecordsField reports whether the collection key was present in the source.
func (d *Document) HasRecordsField() bool {
	return d.recordsIndex >= 0
}

// Context returns the OData context string, if present.
func (d *Document) Context() (string, bool) {
	for _, f := range d.Metadata {
		if f.Name == ContextField && f.Value.Kind() == KindString {
			return f.Value.Text(), true
		}
	}
	return "", false
}

// Scanned returns the number of collection elements seen, including skipped ones.
func (d *Document) Scanned() int {
	return len(d.Records) + d.Skipped
}

// WithRecords returns a shallow copy of the document whose collection is
// replaced by records. The receiver is not modified.
func (d *Document) WithRecords(records []*Record) *Document {
	if records == nil {
		records = []*Record{}
	}
	out := *d
	out.Metadata = append([]Field(nil), d.Metadata...)
	out.Records = records
	out.Skipped = 0
	return &out
}

// MarshalJSON implements json.Marshaler.
// Metadata fields keep their order and the collection is written at its
// source position, or last when it was absent.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	written := 0
	writeSep := func() {
		if written > 0 {
			buf.WriteByte(',')
		}
		written++
	}

	writeRecords := func() error {
		writeSep()
		items := make([]Value, len(d.Records))
		for i, r := range d.Records {
			items[i] = ObjectValue(r)
		}
		return encodeField(&buf, Field{Name: d.RecordsField, Value: ArrayValue(items...)})
	}

	for i, f := range d.Metadata {
		if i == d.recordsIndex {
			if err := writeRecords(); err != nil {
				return nil, err
			}
		}
		writeSep()
		if err := encodeField(&buf, f); err != nil {
			return nil, err
		}
	}
	if d.recordsIndex < 0 || d.recordsIndex >= len(d.Metadata) {
		if err := writeRecords(); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
