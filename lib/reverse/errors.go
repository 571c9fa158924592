package reverse

/*
 * errors.go
 * Errors we might return
 * By J. Stuart McMurray
 * Created 20241018
 * Last Modified 20241018
 */

import "fmt"

// ReadError indicates reading the input failed.  Nothing will have been
// written.
type ReadError struct {
	Err error
}

// Error implements the error interface.
func (err ReadError) Error() string {
	return fmt.Sprintf("reading input: %s", err.Err)
}

// Unwrap returns err.Err.
func (err ReadError) Unwrap() error { return err.Err }

// WriteError indicates writing the reversed output failed.
type WriteError struct {
	Written int   /* Bytes written before the error. */
	Err     error /* What happened. */
}

// Error implements the error interface.
func (err WriteError) Error() string {
	return fmt.Sprintf(
		"writing output after %d bytes: %s",
		err.Written,
		err.Err,
	)
}

// Unwrap returns err.Err.
func (err WriteError) Unwrap() error { return err.Err }
