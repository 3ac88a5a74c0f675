package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/fcgreg/VIC-CatParser/internal/filter"
	"github.com/fcgreg/VIC-CatParser/internal/model"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "vic-catparser"

	// DefaultFormat is the output format when none is requested.
	DefaultFormat = model.FormatJSON

	// DefaultHash is the hash algorithm used by hashonly output when none is requested.
	DefaultHash = model.HashMD5

	// DefaultRecordsField is the top-level key of the record collection in
	// Project VIC exports.
	DefaultRecordsField = model.DefaultRecordsField

	// DefaultCategoryField is the record field compared against the category argument.
	DefaultCategoryField = filter.DefaultCategoryField
)

// Config holds all configuration options for one vic-catparser run.
// It is populated from CLI flags (and optionally a defaults file) and passed
// through the application rather than kept in global state.
type Config struct {
	// InputFile is the Project VIC JSON file to read.
	InputFile string

	// Category is the category value to extract, as given on the command line.
	Category string

	// OutputFile is the destination path. Empty means standard output.
	// An existing file is overwritten; parent directories are created.
	OutputFile string

	// Format selects how matched records are rendered.
	Format model.Format

	// Hash selects the hash field emitted by hashonly output.
	// It is validated for every format so that a typo fails fast.
	Hash model.HashAlgorithm

	// Pretty enables indented JSON output.
	Pretty bool

	// RecordsField is the top-level key holding the record collection.
	RecordsField string

	// CategoryField is the record field holding the category.
	CategoryField string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// Quiet suppresses the summary line printed after a successful run.
	Quiet bool

	// LogJSON switches log output from text to JSON lines.
	LogJSON bool

	// ConfigFilePath is the path to the defaults file.
	// If empty, the tool searches the current directory, the home directory,
	// and the XDG config directory.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Format:        DefaultFormat,
		Hash:          DefaultHash,
		RecordsField:  DefaultRecordsField,
		CategoryField: DefaultCategoryField,
	}
}

// XDGConfigDir returns the XDG config directory for vic-catparser.
// On Linux: ~/.config/vic-catparser
// On macOS: ~/Library/Application Support/vic-catparser
// On Windows: %APPDATA%\vic-catparser
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found; every error wraps ErrUsage.
// It does not touch the filesystem, so argument errors are reported before
// any file is opened.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.InputFile) == "" {
		return ErrNoInput
	}

	if strings.TrimSpace(c.Category) == "" {
		return ErrNoCategory
	}

	if !validFormat(c.Format) {
		return fmt.Errorf("%w (got %d)", ErrInvalidFormat, int(c.Format))
	}

	if c.Hash != model.HashNone && !c.Hash.IsValid() {
		return fmt.Errorf("%w (got %d)", ErrInvalidHash, int(c.Hash))
	}

	if c.Format == model.FormatHashOnly && c.Hash == model.HashNone {
		return ErrHashRequired
	}

	if strings.TrimSpace(c.RecordsField) == "" || strings.TrimSpace(c.CategoryField) == "" {
		return ErrEmptyFieldName
	}

	return nil
}

// validFormat reports whether f is one of the supported formats.
func validFormat(f model.Format) bool {
	for _, known := range model.Formats() {
		if f == known {
			return true
		}
	}
	return false
}

// ParseFormat converts a format name to a model.Format, wrapping failures
// in ErrInvalidFormat.
func ParseFormat(name string) (model.Format, error) {
	f, err := model.ParseFormat(name)
	if err != nil {
		return f, fmt.Errorf("%w: %q", ErrInvalidFormat, name)
	}
	return f, nil
}

// ParseHash converts a hash algorithm name to a model.HashAlgorithm,
// wrapping failures in ErrInvalidHash.
func ParseHash(name string) (model.HashAlgorithm, error) {
	h, err := model.ParseHashAlgorithm(name)
	if err != nil {
		return h, fmt.Errorf("%w: %q", ErrInvalidHash, name)
	}
	return h, nil
}
