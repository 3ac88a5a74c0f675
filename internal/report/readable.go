package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fcgreg/VIC-CatParser/internal/model"
)

// ruleWidth is the width of the dashed rule around each record block.
const ruleWidth = 40

// Exif-style array entries carry their label and value under these keys.
const (
	propertyNameField  = "PropertyName"
	propertyValueField = "PropertyValue"
)

// ReadableWriter outputs one labeled text block per record.
// Every present field is printed as "Name: value" in record order. Null
// fields are omitted. Each block is bounded by a dashed rule and followed by
// a blank line.
type ReadableWriter struct {
	baseWriter
}

// NewReadableWriter creates a ReadableWriter that outputs to the given writer.
func NewReadableWriter(output io.Writer) *ReadableWriter {
	return &ReadableWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs every matched record as a text block.
// An empty MatchSet produces no output.
func (w *ReadableWriter) Write(matches *model.MatchSet) (int, error) {
	if matches.IsEmpty() {
		return 0, nil
	}

	var sb strings.Builder
	for _, r := range matches.Records {
		w.writeRecord(&sb, r)
	}

	return w.output.Write([]byte(sb.String()))
}

// writeRecord writes a single record block.
func (w *ReadableWriter) writeRecord(sb *strings.Builder, r *model.Record) {
	rule := strings.Repeat("-", ruleWidth)

	sb.WriteString(rule)
	sb.WriteString("\n")
	for _, f := range r.Fields() {
		writeField(sb, "", f.Name, f.Value)
	}
	sb.WriteString(rule)
	sb.WriteString("\n\n")
}

// writeField writes one field at the given indentation.
// Objects expand into indented fields and arrays into "- item" lines.
func writeField(sb *strings.Builder, indent, name string, v model.Value) {
	switch v.Kind() {
	case model.KindNull:
		return
	case model.KindObject:
		sb.WriteString(fmt.Sprintf("%s%s:\n", indent, name))
		for _, f := range v.Object().Fields() {
			writeField(sb, indent+"  ", f.Name, f.Value)
		}
	case model.KindArray:
		sb.WriteString(fmt.Sprintf("%s%s:\n", indent, name))
		for _, item := range v.Items() {
			writeItem(sb, indent+"  ", item)
		}
	default:
		sb.WriteString(fmt.Sprintf("%s%s: %s\n", indent, name, v.Text()))
	}
}

// writeItem writes one array element as a "- " line.
func writeItem(sb *strings.Builder, indent string, v model.Value) {
	if v.IsNull() {
		return
	}
	sb.WriteString(fmt.Sprintf("%s- %s\n", indent, inlineValue(v)))
}

// inlineValue renders a value on a single line.
// Exif-style {PropertyName, PropertyValue} objects render as "Name: Value";
// other objects render as comma-separated "key: value" pairs.
func inlineValue(v model.Value) string {
	switch v.Kind() {
	case model.KindNull:
		return ""
	case model.KindObject:
		obj := v.Object()
		if label, ok := propertyPair(obj); ok {
			return label
		}
		parts := make([]string, 0, obj.Len())
		for _, f := range obj.Fields() {
			if f.Value.IsNull() {
				continue
			}
			parts = append(parts, f.Name+": "+inlineValue(f.Value))
		}
		return strings.Join(parts, ", ")
	case model.KindArray:
		parts := make([]string, 0, len(v.Items()))
		for _, item := range v.Items() {
			if item.IsNull() {
				continue
			}
			parts = append(parts, inlineValue(item))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return v.Text()
	}
}

// propertyPair renders an Exif-style entry, reporting whether obj is one.
func propertyPair(obj *model.Record) (string, bool) {
	if obj.Len() != 2 {
		return "", false
	}
	name, ok := obj.Get(propertyNameField)
	if !ok || !name.IsScalar() {
		return "", false
	}
	value, ok := obj.Get(propertyValueField)
	if !ok {
		return "", false
	}
	return name.Text() + ": " + inlineValue(value), true
}
