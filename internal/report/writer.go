package report

import (
	"fmt"
	"io"

	"github.com/fcgreg/VIC-CatParser/internal/config"
	"github.com/fcgreg/VIC-CatParser/internal/model"
)

// Writer errors.
var (
	// ErrNoHashAlgorithm is returned when a hash-only writer is requested
	// without a valid hash algorithm.
	ErrNoHashAlgorithm = fmt.Errorf("%w: hashonly output requires a hash algorithm", config.ErrUsage)

	// ErrUnknownFormat is returned by NewWriter for an unsupported format.
	ErrUnknownFormat = fmt.Errorf("%w: unknown output format", config.ErrUsage)
)

// Writer defines the interface for rendering a MatchSet.
// Implementations write the matched records in one format.
type Writer interface {
	// Write renders the matched records to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(matches *model.MatchSet) (int, error)
}

// Options holds the settings shared by NewWriter across formats.
type Options struct {
	// Hash selects the algorithm for FormatHashOnly.
	Hash model.HashAlgorithm

	// Pretty enables indented output for FormatJSON.
	Pretty bool
}

// NewWriter returns the Writer for format, writing to output.
func NewWriter(format model.Format, output io.Writer, opts Options) (Writer, error) {
	switch format {
	case model.FormatJSON:
		var jsonOpts []JSONWriterOption
		if opts.Pretty {
			jsonOpts = append(jsonOpts, WithPrettyPrint())
		}
		return NewJSONWriter(output, jsonOpts...), nil
	case model.FormatReadable:
		return NewReadableWriter(output), nil
	case model.FormatHashOnly:
		return NewHashOnlyWriter(output, opts.Hash)
	case model.FormatMarkdown:
		return NewMarkdownWriter(output), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, int(format))
	}
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
