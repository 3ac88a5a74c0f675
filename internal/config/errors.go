package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fcgreg/VIC-CatParser/internal/model"
)

// ErrUsage is wrapped by every configuration validation error.
// Callers use errors.Is(err, ErrUsage) to tell bad arguments apart from
// failures that happen while processing the input.
var ErrUsage = errors.New("usage error")

// Configuration validation errors.
// These errors are returned by Config.Validate() and File.Apply() and all
// wrap ErrUsage.
var (
	// ErrNoInput is returned when no input file is given.
	ErrNoInput = fmt.Errorf("%w: no input file specified", ErrUsage)

	// ErrNoCategory is returned when the category argument is empty.
	ErrNoCategory = fmt.Errorf("%w: no category specified", ErrUsage)

	// ErrInvalidFormat is returned for an output format outside the supported set.
	ErrInvalidFormat = fmt.Errorf("%w: invalid format: must be one of %s",
		ErrUsage, strings.Join(model.FormatNames(), ", "))

	// ErrInvalidHash is returned for a hash algorithm outside the supported set.
	ErrInvalidHash = fmt.Errorf("%w: invalid hash algorithm: must be one of %s",
		ErrUsage, strings.Join(model.HashAlgorithmNames(), ", "))

	// ErrHashRequired is returned when hashonly output is requested without
	// a hash algorithm.
	ErrHashRequired = fmt.Errorf("%w: hashonly format requires --hash", ErrUsage)

	// ErrEmptyFieldName is returned when the records or category field name is blank.
	ErrEmptyFieldName = fmt.Errorf("%w: field names must not be empty", ErrUsage)
)
