package sink

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// failingWriter always returns an error.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

// TestWrite tests writing to files and stdout.
func TestWrite(t *testing.T) {
	t.Parallel()

	t.Run("empty path writes to stdout", func(t *testing.T) {
		t.Parallel()

		var stdout bytes.Buffer
		n, err := Write("", []byte("aaa\n"), &stdout)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 4 || stdout.String() != "aaa\n" {
			t.Errorf("got %d bytes %q", n, stdout.String())
		}
	})

	t.Run("creates file and parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "dir", "out.txt")
		var stdout bytes.Buffer
		if _, err := Write(path, []byte("hello"), &stdout); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read output: %v", err)
		}
		if string(data) != "hello" {
			t.Errorf("got %q, expected %q", data, "hello")
		}
		if stdout.Len() != 0 {
			t.Error("expected nothing on stdout")
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat failed: %v", err)
		}
		if info.Mode().Perm() != 0600 {
			t.Errorf("got mode %o, expected 0600", info.Mode().Perm())
		}
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.txt")
		if err := os.WriteFile(path, []byte("a much longer previous content"), 0600); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}
		if _, err := Write(path, []byte("new"), nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		data, _ := os.ReadFile(path)
		if string(data) != "new" {
			t.Errorf("got %q, expected %q", data, "new")
		}
	})

	t.Run("unwritable destination", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		_, err := Write(dir, []byte("x"), nil)
		if !errors.Is(err, ErrWrite) {
			t.Errorf("expected ErrWrite, got %v", err)
		}
	})

	t.Run("stdout failure", func(t *testing.T) {
		t.Parallel()

		_, err := Write("", []byte("x"), failingWriter{})
		if !errors.Is(err, ErrWrite) {
			t.Errorf("expected ErrWrite, got %v", err)
		}
	})
}

// TestName tests destination display names.
func TestName(t *testing.T) {
	t.Parallel()

	if Name("") != StdoutName {
		t.Errorf("got %q, expected %q", Name(""), StdoutName)
	}
	if Name("out.json") != "out.json" {
		t.Errorf("got %q", Name("out.json"))
	}
}
