// Package model defines the core data structures used throughout vic-catparser.
//
// This package contains the following main types:
//   - Value: A tagged JSON value (null, string, number, bool, object, array)
//   - Record: An ordered mapping of field names to Values
//   - Document: A parsed Project VIC file (metadata plus the record collection)
//   - MatchSet: The records that matched a requested Category
//   - Run: The state carried through the processing pipeline
//
// Records are kept as ordered field lists rather than fixed structs so that
// files with schema variations still load, while the fields the pipeline
// depends on (Category and the hash fields) are reached through typed accessors.
// Field order and number literals are preserved so JSON output reproduces the
// source shape.
package model
