package report

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/fcgreg/VIC-CatParser/internal/model"
)

// JSONWriter outputs the matched records as a Project VIC document.
// The source document's top-level metadata (odata.context and anything else)
// is kept in order and the record collection holds only the matches, so the
// output can be fed back into any tool that reads the original file.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the source document with its collection replaced by the matches.
func (w *JSONWriter) Write(matches *model.MatchSet) (int, error) {
	return w.writeJSON(matches.OutputDocument())
}

// writeJSON encodes v and writes it to the output with a trailing newline.
// HTML characters are not escaped; hash sets and URLs stay byte-identical.
func (w *JSONWriter) writeJSON(v interface{}) (int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if w.indent {
		enc.SetIndent(w.indentPrefix, w.indentString)
	}

	if err := enc.Encode(v); err != nil {
		return 0, err
	}

	return w.output.Write(buf.Bytes())
}
