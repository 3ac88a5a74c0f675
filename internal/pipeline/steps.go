package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fcgreg/VIC-CatParser/internal/config"
	"github.com/fcgreg/VIC-CatParser/internal/filter"
	"github.com/fcgreg/VIC-CatParser/internal/model"
	"github.com/fcgreg/VIC-CatParser/internal/report"
	"github.com/fcgreg/VIC-CatParser/internal/sink"
	"github.com/fcgreg/VIC-CatParser/internal/vicfile"
)

// LoadStep reads and decodes the Project VIC document named by run.Source.
type LoadStep struct {
	opts   vicfile.Options
	logger *slog.Logger
}

// LoadStepOption configures a LoadStep.
type LoadStepOption func(*LoadStep)

// WithRecordsField sets the top-level key holding the record collection.
func WithRecordsField(name string) LoadStepOption {
	return func(s *LoadStep) {
		s.opts.RecordsField = name
	}
}

// WithLoadLogger sets a custom logger for the load step.
func WithLoadLogger(logger *slog.Logger) LoadStepOption {
	return func(s *LoadStep) {
		s.logger = logger
	}
}

// NewLoadStep creates a new load step.
func NewLoadStep(opts ...LoadStepOption) *LoadStep {
	s := &LoadStep{
		opts:   vicfile.DefaultOptions(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *LoadStep) Name() string {
	return "load"
}

// Do executes the load step.
func (s *LoadStep) Do(_ context.Context, run *model.Run) error {
	doc, err := vicfile.Load(run.Source, s.opts)
	if err != nil {
		return fmt.Errorf("failed to load input: %w", err)
	}

	if !doc.HasRecordsField() {
		s.logger.Warn("record collection not found",
			"source", run.Source,
			"field", s.opts.RecordsField,
		)
	}
	if doc.Skipped > 0 {
		s.logger.Warn("skipped non-object elements in record collection",
			"source", run.Source,
			"skipped", doc.Skipped,
		)
	}

	s.logger.Debug("document loaded",
		"source", run.Source,
		"records", len(doc.Records),
	)
	run.Document = doc
	return nil
}

// FilterStep keeps the records whose category field equals run.Category.
type FilterStep struct {
	categoryField string
	logger        *slog.Logger
}

// FilterStepOption configures a FilterStep.
type FilterStepOption func(*FilterStep)

// WithCategoryField sets the record field holding the category.
func WithCategoryField(name string) FilterStepOption {
	return func(s *FilterStep) {
		s.categoryField = name
	}
}

// WithFilterLogger sets a custom logger for the filter step.
func WithFilterLogger(logger *slog.Logger) FilterStepOption {
	return func(s *FilterStep) {
		s.logger = logger
	}
}

// NewFilterStep creates a new filter step.
func NewFilterStep(opts ...FilterStepOption) *FilterStep {
	s := &FilterStep{
		categoryField: filter.DefaultCategoryField,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *FilterStep) Name() string {
	return "filter"
}

// Do executes the filter step.
func (s *FilterStep) Do(_ context.Context, run *model.Run) error {
	if run.Document == nil {
		return fmt.Errorf("filter: %w", errNoDocument)
	}

	matches := filter.ByCategory(run.Document, run.Category, s.categoryField)
	matches.Source = run.Source

	s.logger.Debug("records filtered",
		"category", run.Category,
		"field", s.categoryField,
		"scanned", matches.Scanned(),
		"matched", matches.Len(),
	)
	run.Matches = matches
	return nil
}

// RenderStep renders run.Matches into run.Output.
// The whole output is built in memory before anything reaches the sink.
type RenderStep struct {
	format model.Format
	opts   report.Options
	logger *slog.Logger
}

// RenderStepOption configures a RenderStep.
type RenderStepOption func(*RenderStep)

// WithRenderOptions sets the writer options (hash algorithm, pretty printing).
func WithRenderOptions(opts report.Options) RenderStepOption {
	return func(s *RenderStep) {
		s.opts = opts
	}
}

// WithRenderLogger sets a custom logger for the render step.
func WithRenderLogger(logger *slog.Logger) RenderStepOption {
	return func(s *RenderStep) {
		s.logger = logger
	}
}

// NewRenderStep creates a render step for the given format.
func NewRenderStep(format model.Format, opts ...RenderStepOption) *RenderStep {
	s := &RenderStep{
		format: format,
		opts:   report.Options{Hash: model.HashMD5},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *RenderStep) Name() string {
	return "render"
}

// Do executes the render step.
func (s *RenderStep) Do(_ context.Context, run *model.Run) error {
	if run.Matches == nil {
		return fmt.Errorf("render: %w", errNoMatches)
	}

	var buf bytes.Buffer
	w, err := report.NewWriter(s.format, &buf, s.opts)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if _, err := w.Write(run.Matches); err != nil {
		return fmt.Errorf("failed to render %s output: %w", s.format, err)
	}

	s.logger.Debug("output rendered",
		"format", s.format.String(),
		"bytes", buf.Len(),
	)
	run.Output = buf.Bytes()
	return nil
}

// WriteStep writes run.Output to run.Destination, or to stdout when no
// destination is set.
type WriteStep struct {
	stdout io.Writer
	logger *slog.Logger
}

// WriteStepOption configures a WriteStep.
type WriteStepOption func(*WriteStep)

// WithWriteLogger sets a custom logger for the write step.
func WithWriteLogger(logger *slog.Logger) WriteStepOption {
	return func(s *WriteStep) {
		s.logger = logger
	}
}

// NewWriteStep creates a write step that uses stdout for runs without a
// destination.
func NewWriteStep(stdout io.Writer, opts ...WriteStepOption) *WriteStep {
	s := &WriteStep{
		stdout: stdout,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *WriteStep) Name() string {
	return "write"
}

// Do executes the write step.
func (s *WriteStep) Do(_ context.Context, run *model.Run) error {
	n, err := sink.Write(run.Destination, run.Output, s.stdout)
	run.BytesWritten = n
	if err != nil {
		return err
	}

	s.logger.Debug("output written",
		"destination", sink.Name(run.Destination),
		"bytes", n,
	)
	return nil
}

// DefaultPipeline creates the load, filter, render and write pipeline
// described by cfg. Output without a destination goes to stdout.
func DefaultPipeline(cfg *config.Config, stdout io.Writer, opts ...Option) *Pipeline {
	p := New(opts...)

	p.AddSteps(
		NewLoadStep(
			WithRecordsField(cfg.RecordsField),
			WithLoadLogger(p.logger),
		),
		NewFilterStep(
			WithCategoryField(cfg.CategoryField),
			WithFilterLogger(p.logger),
		),
		NewRenderStep(cfg.Format,
			WithRenderOptions(report.Options{Hash: cfg.Hash, Pretty: cfg.Pretty}),
			WithRenderLogger(p.logger),
		),
		NewWriteStep(stdout, WithWriteLogger(p.logger)),
	)

	return p
}
