package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fcgreg/VIC-CatParser/internal/config"
	"github.com/fcgreg/VIC-CatParser/internal/model"
	"github.com/fcgreg/VIC-CatParser/internal/sink"
	"github.com/fcgreg/VIC-CatParser/internal/vicfile"
)

// threeRecords is a minimal document with two records in category 1.
const threeRecords = `{"value":[
{"id":1,"category":1,"hashes":{"md5":"aaa"}},
{"id":2,"category":0,"hashes":{"md5":"bbb"}},
{"id":3,"category":1,"hashes":{"md5":"ccc"}}
]}`

// writeInput writes content to a file in a temporary directory and returns its path.
func writeInput(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}
	return path
}

// runDefault executes the default pipeline for cfg and returns stdout.
func runDefault(t *testing.T, cfg *config.Config) (string, *model.Run, error) {
	t.Helper()

	var stdout bytes.Buffer
	run := model.NewRun(cfg.InputFile, cfg.Category, cfg.OutputFile)
	err := DefaultPipeline(cfg, &stdout).Execute(context.Background(), run)
	return stdout.String(), run, err
}

func TestStepNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		step Step
		want string
	}{
		{NewLoadStep(), "load"},
		{NewFilterStep(), "filter"},
		{NewRenderStep(model.FormatJSON), "render"},
		{NewWriteStep(&bytes.Buffer{}), "write"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			if got := tt.step.Name(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestStepOptions(t *testing.T) {
	t.Parallel()

	t.Run("load step records field", func(t *testing.T) {
		t.Parallel()

		s := NewLoadStep(WithRecordsField("items"))
		if s.opts.RecordsField != "items" {
			t.Errorf("expected records field items, got %q", s.opts.RecordsField)
		}
	})

	t.Run("filter step category field", func(t *testing.T) {
		t.Parallel()

		s := NewFilterStep(WithCategoryField("cat"))
		if s.categoryField != "cat" {
			t.Errorf("expected category field cat, got %q", s.categoryField)
		}
	})

	t.Run("render step defaults to md5", func(t *testing.T) {
		t.Parallel()

		s := NewRenderStep(model.FormatHashOnly)
		if s.opts.Hash != model.HashMD5 {
			t.Errorf("expected md5, got %s", s.opts.Hash)
		}
	})
}

func TestDefaultPipeline(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	p := DefaultPipeline(cfg, &bytes.Buffer{})

	want := []string{"load", "filter", "render", "write"}
	got := p.StepNames()
	if len(got) != len(want) {
		t.Fatalf("expected %d steps, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("step %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestEndToEnd(t *testing.T) {
	t.Parallel()

	t.Run("hashonly md5", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		cfg.InputFile = writeInput(t, threeRecords)
		cfg.Category = "1"
		cfg.Format = model.FormatHashOnly
		cfg.Hash = model.HashMD5

		out, run, err := runDefault(t, cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != "aaa\nccc\n" {
			t.Errorf("expected %q, got %q", "aaa\nccc\n", out)
		}
		if run.BytesWritten != len(out) {
			t.Errorf("expected %d bytes written, got %d", len(out), run.BytesWritten)
		}
		if len(run.PerformedSteps) != 4 {
			t.Errorf("expected 4 performed steps, got %v", run.PerformedSteps)
		}
	})

	t.Run("readable", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		cfg.InputFile = writeInput(t, threeRecords)
		cfg.Category = "1"
		cfg.Format = model.FormatReadable

		out, _, err := runDefault(t, cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		rule := strings.Repeat("-", 40)
		want := rule + "\nid: 1\ncategory: 1\nhashes:\n  md5: aaa\n" + rule + "\n\n" +
			rule + "\nid: 3\ncategory: 1\nhashes:\n  md5: ccc\n" + rule + "\n\n"
		if out != want {
			t.Errorf("unexpected readable output:\n%s\nwant:\n%s", out, want)
		}
	})

	t.Run("json keeps matched records", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		cfg.InputFile = writeInput(t, threeRecords)
		cfg.Category = "1"

		out, run, err := runDefault(t, cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var decoded struct {
			Value []struct {
				ID int `json:"id"`
			} `json:"value"`
		}
		if err := json.Unmarshal([]byte(out), &decoded); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if len(decoded.Value) != 2 || decoded.Value[0].ID != 1 || decoded.Value[1].ID != 3 {
			t.Errorf("unexpected records: %+v", decoded.Value)
		}
		if run.Matches.Scanned() != 3 {
			t.Errorf("expected 3 scanned, got %d", run.Matches.Scanned())
		}
		if run.Matches.Source != cfg.InputFile {
			t.Errorf("expected source %q, got %q", cfg.InputFile, run.Matches.Source)
		}
	})

	t.Run("no matches is not an error", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		cfg.InputFile = writeInput(t, threeRecords)
		cfg.Category = "9"
		cfg.Format = model.FormatHashOnly

		out, run, err := runDefault(t, cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != "" {
			t.Errorf("expected empty output, got %q", out)
		}
		if !run.Matches.IsEmpty() {
			t.Errorf("expected empty match set, got %d", run.Matches.Len())
		}
	})

	t.Run("writes to output file", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		cfg.InputFile = writeInput(t, threeRecords)
		cfg.Category = "1"
		cfg.Format = model.FormatHashOnly
		cfg.OutputFile = filepath.Join(t.TempDir(), "nested", "out.txt")

		out, _, err := runDefault(t, cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != "" {
			t.Errorf("expected nothing on stdout, got %q", out)
		}

		data, err := os.ReadFile(cfg.OutputFile)
		if err != nil {
			t.Fatalf("failed to read output: %v", err)
		}
		if string(data) != "aaa\nccc\n" {
			t.Errorf("unexpected file content %q", string(data))
		}
	})
}

func TestEndToEndErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing input", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		cfg.InputFile = filepath.Join(t.TempDir(), "missing.json")
		cfg.Category = "1"

		_, run, err := runDefault(t, cfg)
		if !errors.Is(err, vicfile.ErrFileNotFound) {
			t.Fatalf("expected ErrFileNotFound, got %v", err)
		}
		if len(run.PerformedSteps) != 0 {
			t.Errorf("expected no performed steps, got %v", run.PerformedSteps)
		}
	})

	t.Run("malformed input", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		cfg.InputFile = writeInput(t, `{"value":[{"id":1,`)
		cfg.Category = "1"

		out, _, err := runDefault(t, cfg)
		if !errors.Is(err, vicfile.ErrParse) {
			t.Fatalf("expected ErrParse, got %v", err)
		}
		if out != "" {
			t.Errorf("expected no output, got %q", out)
		}
	})

	t.Run("unwritable destination", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		blocker := filepath.Join(dir, "file")
		if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
			t.Fatalf("failed to write blocker: %v", err)
		}

		cfg := config.NewConfig()
		cfg.InputFile = writeInput(t, threeRecords)
		cfg.Category = "1"
		cfg.OutputFile = filepath.Join(blocker, "out.json")

		_, run, err := runDefault(t, cfg)
		if !errors.Is(err, sink.ErrWrite) {
			t.Fatalf("expected ErrWrite, got %v", err)
		}
		if len(run.PerformedSteps) != 3 {
			t.Errorf("expected load, filter and render to complete, got %v", run.PerformedSteps)
		}
	})

	t.Run("filter without document", func(t *testing.T) {
		t.Parallel()

		err := NewFilterStep().Do(context.Background(), model.NewRun("x", "1", ""))
		if !errors.Is(err, errNoDocument) {
			t.Errorf("expected errNoDocument, got %v", err)
		}
	})

	t.Run("render without matches", func(t *testing.T) {
		t.Parallel()

		err := NewRenderStep(model.FormatJSON).Do(context.Background(), model.NewRun("x", "1", ""))
		if !errors.Is(err, errNoMatches) {
			t.Errorf("expected errNoMatches, got %v", err)
		}
	})
}
