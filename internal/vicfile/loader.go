package vicfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/fcgreg/VIC-CatParser/internal/model"
)

// Options configures decoding.
type Options struct {
	// RecordsField is the top-level key holding the record collection.
	// It is matched ignoring case. Empty means model.DefaultRecordsField.
	RecordsField string
}

// DefaultOptions returns the options for standard Project VIC exports.
func DefaultOptions() Options {
	return Options{RecordsField: model.DefaultRecordsField}
}

// Load reads the file at path fully into memory and decodes it.
func Load(path string, opts Options) (*model.Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}

	doc, err := decode(bytes.NewReader(data), opts)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return nil, err
	}
	return doc, nil
}

// Decode reads a Project VIC document from r.
func Decode(r io.Reader, opts Options) (*model.Document, error) {
	return decode(r, opts)
}
