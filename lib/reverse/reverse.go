// Package reverse - Reverse text, one code point at a time
//
// Text is treated as UTF-8.  Each valid UTF-8 sequence is kept together
// and moved as a unit; any byte which isn't part of a valid sequence is
// moved on its own, unchanged.  Nothing is ever added, removed, or replaced,
// so the output is always the same length as the input.  Newlines aren't
// special; a trailing newline ends up at the front.
package reverse

/*
 * reverse.go
 * Reverse text, one code point at a time
 * By J. Stuart McMurray
 * Created 20241018
 * Last Modified 20241018
 */

import (
	"io"
	"slices"
	"unicode/utf8"
)

// AppendBytes reverses src, appends it to dst, and returns the extended
// buffer.  src and dst must not overlap.
func AppendBytes(dst, src []byte) []byte {
	/* Make room for the whole thing, then fill it from the back. */
	start := len(dst)
	dst = slices.Grow(dst, len(src))[:start+len(src)]
	out := dst[start:]
	for i := 0; i < len(src); {
		/* Invalid bytes come back with a size of 1, which is what we
		want anyways. */
		_, size := utf8.DecodeRune(src[i:])
		copy(out[len(src)-i-size:], src[i:i+size])
		i += size
	}
	return dst
}

// Bytes returns a reversed copy of b.
func Bytes(b []byte) []byte {
	return AppendBytes(make([]byte, 0, len(b)), b)
}

// String returns s, reversed.
func String(s string) string { return string(Bytes([]byte(s))) }

// Copy reads src until EOF, reverses what it read, and writes the lot to dst
// in a single call to dst.Write.  Nothing is written until src is exhausted.
// Copy returns the number of bytes written.  Errors reading src are returned
// as a ReadError and errors writing dst as a WriteError.  A short write is
// reported as a WriteError wrapping io.ErrShortWrite.
func Copy(dst io.Writer, src io.Reader) (int64, error) {
	/* Slurp ALL the input. */
	in, err := io.ReadAll(src)
	if nil != err {
		return 0, ReadError{Err: err}
	}

	/* Flip it and send it out. */
	out := Bytes(in)
	n, err := dst.Write(out)
	if nil == err && n != len(out) {
		err = io.ErrShortWrite
	}
	if nil != err {
		return int64(n), WriteError{Written: n, Err: err}
	}

	return int64(n), nil
}
