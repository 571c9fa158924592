// Program stdinrev - Reverse stdin to stdout
package main

/*
 * stdinrev.go
 * Reverse stdin to stdout
 * By J. Stuart McMurray
 * Created 20241018
 * Last Modified 20241020
 */

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/magisterquis/goxterm"
	"github.com/magisterquis/stdinrev/lib/reverse"
)

var (
	// LogEnvVar is the environment variable we use for the default
	// logfile, which will be "" if unset.
	LogEnvVar = "STDINREV_LOG"
	// TerminalHint is printed to stderr if stdin is a terminal, so
	// whoever's typing knows how to finish.
	TerminalHint = "Reading until EOF (Ctrl+D)..."
)

// Log messages and keys.
const (
	LMReversed    = "Reversed input"
	LMTerminating = "Program terminating"

	LKError   = "error"
	LKWritten = "written"
)

func main() {
	os.Exit(rmain(os.Args, os.Getenv, os.Stdin, os.Stdout, os.Stderr))
}

// rmain is the real main.  It takes its args (including the program name),
// environment, and stdio from the caller and returns the exit code.
func rmain(
	args []string,
	getenv func(string) string,
	stdin io.Reader,
	stdout io.Writer,
	stderr io.Writer,
) int {
	/* Command-line flags. */
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		logFile = fs.String(
			"log",
			getenv(LogEnvVar),
			"Optional `file` to which to write JSON logs",
		)
	)
	fs.Usage = func() {
		fmt.Fprintf(
			stderr,
			`Usage: %s [options] <input

Reads all of stdin and writes it to stdout, backwards.  No newline is added.

Options:
`,
			args[0],
		)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args[1:]); errors.Is(err, flag.ErrHelp) {
		return 0
	} else if nil != err {
		return 2
	}

	/* Input only comes from stdin. */
	if 0 != fs.NArg() {
		fs.Usage()
		return 2
	}

	/* Set up logging.  If we're not writing to a logfile, we'll just kinda
	discard log messages. */
	var lw = io.Discard
	if "" != *logFile {
		f, err := os.OpenFile(
			*logFile,
			os.O_CREATE|os.O_WRONLY|os.O_APPEND,
			0600,
		)
		if nil != err {
			fmt.Fprintf(
				stderr,
				"Error opening logfile %s: %s\n",
				*logFile,
				err,
			)
			return 2
		}
		defer f.Close()
		lw = f
	}
	sl := slog.New(slog.NewJSONHandler(lw, nil))

	/* Let a human know we're waiting on them. */
	if f, ok := stdin.(*os.File); ok && goxterm.IsTerminal(int(f.Fd())) {
		fmt.Fprintln(stderr, TerminalHint)
	}

	return run(sl, stdout, stdin)
}

// run reverses stdin to stdout and returns the program's exit code.
func run(sl *slog.Logger, stdout io.Writer, stdin io.Reader) int {
	n, err := reverse.Copy(stdout, stdin)
	if nil != err {
		log.Printf("Error: %s", err)
		sl.Error(LMTerminating, LKError, err, LKWritten, n)
		return 1
	}
	sl.Info(LMReversed, LKWritten, n)
	return 0
}
