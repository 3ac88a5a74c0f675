// Package main provides the entry point for the vic-catparser CLI.
//
// vic-catparser extracts the records of one Category from a Project VIC JSON
// hash-set file and writes them as JSON, readable text, a list of hashes, or
// a Markdown report.
//
// Usage:
//
//	vic-catparser json_file category [flags]
//	vic-catparser vic.json 1 -f hashonly --hash sha1 -o cat1.txt
//
// See --help for all available options.
package main

// main is the entry point for vic-catparser.
func main() {
	Execute()
}
