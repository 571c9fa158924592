// Package chanlog - Log to a channel, for testing
package chanlog

/*
 * chanlog.go
 * Log to a channel, for testing
 * By J. Stuart McMurray
 * Created 20241018
 * Last Modified 20241018
 */

import (
	"log/slog"
	"strings"
	"testing"
)

// BufLen is the number of unread log lines a ChanLog will hold before
// blocking.
const BufLen = 1024

// ChanLog wraps a chan string as a blockingish logfile.  Each write is sent,
// less surrounding whitespace, to the wrapped chan.  It expects one log line
// per write, as slog's handlers do.
type ChanLog chan string

// New returns a new ChanLog with a BufLen-sized buffer and an slog.Logger
// which writes JSON to it.  The logger doesn't log timestamps, to make
// lines predictable.
func New() (ChanLog, *slog.Logger) {
	cl := ChanLog(make(chan string, BufLen))
	sl := slog.New(slog.NewJSONHandler(cl, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if 0 == len(groups) && slog.TimeKey == a.Key {
				return slog.Attr{}
			}
			return a
		},
	}))
	return cl, sl
}

// Write sends b to cl as a string.  It always returns len(b), nil.
func (cl ChanLog) Write(b []byte) (int, error) {
	cl <- strings.TrimSpace(string(b))
	return len(b), nil
}

// Expect expects the log lines on cl, in order.  It calls t.Errorf for
// mismatches and blocks until as many lines as it was given are read.
func (cl ChanLog) Expect(t *testing.T, lines ...string) {
	t.Helper()
	for _, want := range lines {
		got, ok := <-cl
		if !ok {
			t.Errorf(
				"Log channel closed while waiting for %q",
				want,
			)
			return
		}
		if got != want {
			t.Errorf(
				"Unexpected log line:\n got: %s\nwant: %s",
				got,
				want,
			)
		}
	}
}

// ExpectEmpty is like cl.Expect, but also checks that nothing else has been
// logged.  Leftover lines are reported with t.Errorf.  It doesn't wait for
// more lines, so all logging should be finished before it's called.
func (cl ChanLog) ExpectEmpty(t *testing.T, lines ...string) {
	t.Helper()
	cl.Expect(t, lines...)

	/* Anything left is an error. */
	var got []string
	for done := false; !done; {
		select {
		case l, ok := <-cl:
			if !ok { /* Closed.  This works. */
				done = true
				continue
			}
			got = append(got, l)
		default:
			done = true
		}
	}
	if 0 == len(got) {
		return
	}
	t.Errorf("Unexpected leftover log lines:\n%s", strings.Join(got, "\n"))
}
