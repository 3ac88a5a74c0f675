package pipeline

import "errors"

var (
	errNoDocument = errors.New("no document loaded")
	errNoMatches  = errors.New("no records filtered")
)
