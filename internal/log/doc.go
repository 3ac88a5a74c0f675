// Package log provides logging for vic-catparser, built on the standard slog
// package.
//
// Project VIC files are forensic hash sets. Hash values must not end up in
// diagnostic logs that may be shared in bug reports, so every logger created
// here wraps its handler in a RedactingHandler that masks:
//   - attributes named after a hash algorithm (md5, sha1, photodna) or
//     containing "hash"
//   - string values shaped like MD5, SHA1 or SHA256 hex digests
//   - long base64 blobs such as PhotoDNA hashes
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	logger.Debug("record matched", "mediaID", 42, "md5", md5) // md5 is masked
//	slog.SetDefault(logger)
package log
