package model

import (
	"fmt"
	"strings"
)

// Format selects how matched records are rendered.
type Format int

const (
	// FormatJSON reproduces the source document with only the matched records.
	FormatJSON Format = iota

	// FormatReadable renders one labeled text block per record.
	FormatReadable

	// FormatHashOnly renders one hash value per line.
	FormatHashOnly

	// FormatMarkdown renders a Markdown report with per-record tables.
	FormatMarkdown
)

// Formats returns every output format in CLI order.
func Formats() []Format {
	return []Format{FormatJSON, FormatReadable, FormatHashOnly, FormatMarkdown}
}

// FormatNames returns the CLI names of every output format.
func FormatNames() []string {
	formats := Formats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = f.String()
	}
	return names
}

// ParseFormat converts a CLI name to a Format. Matching ignores case.
func ParseFormat(name string) (Format, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, f := range Formats() {
		if f.String() == normalized {
			return f, nil
		}
	}
	return FormatJSON, fmt.Errorf("unsupported format %q (choose from %s)",
		name, strings.Join(FormatNames(), ", "))
}

// String returns the CLI name of the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatReadable:
		return "readable"
	case FormatHashOnly:
		return "hashonly"
	case FormatMarkdown:
		return "markdown"
	default:
		return "unknown"
	}
}
