package vicfile

import (
	"errors"
	"fmt"
)

// Loader errors.
var (
	// ErrFileNotFound is returned when the input file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrUnreadable is returned when the input file exists but cannot be read,
	// for example because of permissions or because the path is a directory.
	ErrUnreadable = errors.New("file is not readable")

	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("invalid Project VIC JSON")
)

// ParseError describes malformed input.
type ParseError struct {
	// Path is the file being decoded. Empty when decoding a plain reader.
	Path string

	// Offset is the byte offset where decoding stopped.
	Offset int64

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s at offset %d: %v", ErrParse, e.Offset, e.Err)
	}
	return fmt.Sprintf("%s: %s at offset %d: %v", ErrParse, e.Path, e.Offset, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
