package sink

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrWrite is returned when the destination cannot be created or written.
var ErrWrite = errors.New("cannot write output")

// StdoutName is the destination name reported for standard output.
const StdoutName = "stdout"

// File and directory permissions for output files.
// Hash lists and record dumps are forensic material, so files are owner-only.
const (
	fileMode os.FileMode = 0600
	dirMode  os.FileMode = 0750
)

// Name returns a display name for the destination path.
func Name(path string) string {
	if path == "" {
		return StdoutName
	}
	return path
}

// Write writes data to path, or to stdout when path is empty.
// An existing file is truncated; a missing file and its parent directories
// are created. It returns the number of bytes written.
func Write(path string, data []byte, stdout io.Writer) (n int, err error) {
	if path == "" {
		n, err = stdout.Write(data)
		if err != nil {
			return n, fmt.Errorf("%w to %s: %w", ErrWrite, StdoutName, err)
		}
		return n, nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, dirMode); err != nil {
			return 0, fmt.Errorf("%w: failed to create output directory: %w", ErrWrite, err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, fileMode) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrWrite, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrWrite, cerr)
		}
	}()

	n, err = f.Write(data)
	if err != nil {
		return n, fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return n, nil
}
