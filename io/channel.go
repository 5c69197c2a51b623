// Package io provides the collaborators of the LMC++ engine: program
// images (Rom), locating them on a file system (Finder), and the console
// (Tape) used by the INP and OUT instructions.
package io

// Console defines the interface for integer console I/O.
type Console interface {
	// ReadInteger blocks until a valid integer is read. Malformed input is
	// reported and retried; an error is only returned if the input fails.
	ReadInteger() (value int32, err error)
	// WriteInteger displays an integer.
	WriteInteger(value int32) error
	// Diagnostic displays a non-fatal error.
	Diagnostic(err error)
}
