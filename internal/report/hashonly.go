package report

import (
	"io"
	"strings"

	"github.com/fcgreg/VIC-CatParser/internal/model"
)

// HashOnlyWriter outputs one hash value per line for a single algorithm.
// Records without that hash are skipped. The output is suitable as a plain
// hash list for other forensic tools.
type HashOnlyWriter struct {
	baseWriter

	// algorithm selects which hash field is written.
	algorithm model.HashAlgorithm
}

// NewHashOnlyWriter creates a HashOnlyWriter for the given algorithm.
// It returns ErrNoHashAlgorithm when alg is not a selectable algorithm.
func NewHashOnlyWriter(output io.Writer, alg model.HashAlgorithm) (*HashOnlyWriter, error) {
	if !alg.IsValid() {
		return nil, ErrNoHashAlgorithm
	}
	return &HashOnlyWriter{
		baseWriter: newBaseWriter(output),
		algorithm:  alg,
	}, nil
}

// Algorithm returns the hash algorithm this writer emits.
func (w *HashOnlyWriter) Algorithm() model.HashAlgorithm {
	return w.algorithm
}

// Write outputs the selected hash of each matched record, in order.
func (w *HashOnlyWriter) Write(matches *model.MatchSet) (int, error) {
	if matches.IsEmpty() {
		return 0, nil
	}

	var sb strings.Builder
	for _, r := range matches.Records {
		hash, ok := r.Hash(w.algorithm)
		if !ok {
			continue
		}
		sb.WriteString(hash)
		sb.WriteString("\n")
	}

	return w.output.Write([]byte(sb.String()))
}
