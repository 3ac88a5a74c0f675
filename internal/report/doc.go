// Package report renders matched Project VIC records.
//
// This package contains writers for each output format:
//   - JSONWriter: the source document shape with only the matched records
//   - ReadableWriter: one labeled text block per record
//   - HashOnlyWriter: one hash value per line for a chosen algorithm
//   - MarkdownWriter: a Markdown report with summary and per-record tables
//
// Writers implement the Writer interface, so the caller picks a format once
// (see NewWriter) and renders without caring which one it got.
package report
