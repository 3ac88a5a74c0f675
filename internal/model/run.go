package model

// Run is the state carried through one invocation of the processing pipeline.
// Each step reads what earlier steps produced and fills in its own part.
type Run struct {
	// Source is the path of the Project VIC file to read.
	Source string

	// Category is the category value to match.
	Category string

	// Destination is the output file path. Empty means standard output.
	Destination string

	// Document is set by the load step.
	Document *Document

	// Matches is set by the filter step.
	Matches *MatchSet

	// Output holds the fully rendered output, set by the render step.
	Output []byte

	// BytesWritten is set by the write step.
	BytesWritten int

	// PerformedSteps lists the steps that completed, in order.
	PerformedSteps []string

	// Error is the error that stopped the run, if any.
	Error error
}

// NewRun creates a Run for the given source file and category.
func NewRun(source, category, destination string) *Run {
	return &Run{
		Source:         source,
		Category:       category,
		Destination:    destination,
		PerformedSteps: make([]string, 0),
	}
}
