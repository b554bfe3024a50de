package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

// outputWriter wraps w according to the --strip mode. In auto mode escape
// sequences are kept only when w is a terminal.
func outputWriter(w io.Writer, mode string) (io.Writer, error) {
	switch mode {
	case "never":
		return w, nil
	case "always":
		return stripWriter{w: w}, nil
	case "auto":
		if isTerminal(w) {
			return w, nil
		}
		return stripWriter{w: w}, nil
	default:
		return nil, fmt.Errorf("invalid --strip value %q (want auto, always, or never)", mode)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// stripWriter removes ANSI escape sequences from each write. Callers must
// not split a sequence across writes.
type stripWriter struct {
	w io.Writer
}

func (s stripWriter) Write(p []byte) (int, error) {
	if _, err := io.WriteString(s.w, ansi.Strip(string(p))); err != nil {
		return 0, err
	}
	return len(p), nil
}
