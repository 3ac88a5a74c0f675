// Package sink writes rendered output to its destination: a file when a
// path is given, standard output otherwise.
//
// Output is written in one call after rendering has finished, so a failed
// run never leaves a partially rendered file behind a successful exit.
package sink
