// Package vicfile loads Project VIC JSON hash-set files.
//
// A Project VIC export is a single JSON object carrying OData metadata
// (odata.context) and a "value" array of media records. The whole file is read
// into memory and decoded token by token so that field order and number
// literals survive, which lets the JSON output reproduce the source shape.
//
// Load distinguishes three failure classes so the CLI can report them
// separately: a missing file (ErrFileNotFound), a file that exists but cannot
// be read (ErrUnreadable), and malformed content (*ParseError, which matches
// ErrParse).
package vicfile
