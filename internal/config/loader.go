package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name looked up in the
// current and home directories.
const DefaultConfigFile = ".vic-catparser"

// XDGConfigFile is the configuration file name inside XDGConfigDir.
const XDGConfigFile = "config.yaml"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the defaults file.
// Every field is optional; unset fields leave the built-in default alone.
type File struct {
	// Format is the default output format (json, readable, hashonly, markdown).
	Format string `yaml:"format,omitempty"`

	// Hash is the default hash algorithm for hashonly output.
	Hash string `yaml:"hash,omitempty"`

	// Pretty enables indented JSON output by default.
	Pretty *bool `yaml:"pretty,omitempty"`

	// RecordsField overrides the top-level record collection key.
	RecordsField string `yaml:"recordsField,omitempty"`

	// CategoryField overrides the record category key.
	CategoryField string `yaml:"categoryField,omitempty"`
}

// LoadConfigFile loads defaults from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the config file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .vic-catparser in the current directory
// 3. Look for .vic-catparser in the user's home directory
// 4. Look for config.yaml in the XDG config directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	candidates := make([]string, 0, 3)
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}
	candidates = append(candidates, filepath.Join(XDGConfigDir(), XDGConfigFile))

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// Apply copies the values set in the file onto cfg.
// Invalid format or hash names return errors wrapping ErrUsage.
func (cf *File) Apply(cfg *Config) error {
	if cf.Format != "" {
		f, err := ParseFormat(cf.Format)
		if err != nil {
			return err
		}
		cfg.Format = f
	}

	if cf.Hash != "" {
		h, err := ParseHash(cf.Hash)
		if err != nil {
			return err
		}
		cfg.Hash = h
	}

	if cf.Pretty != nil {
		cfg.Pretty = *cf.Pretty
	}

	if cf.RecordsField != "" {
		cfg.RecordsField = cf.RecordsField
	}

	if cf.CategoryField != "" {
		cfg.CategoryField = cf.CategoryField
	}

	return nil
}
