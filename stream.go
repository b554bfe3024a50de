package termfield

import (
	"io"
	"iter"
	"strings"
)

// RenderIter renders t once per record and writes each result to w as it
// arrives. A newline follows every record unless the rendered text already
// ends with one. Rendering stops at the first error.
func RenderIter(w io.Writer, t *Template, seq iter.Seq[Record]) error {
	var streamErr error
	seq(func(rec Record) bool {
		if err := writeRecord(w, t, rec); err != nil {
			streamErr = err
			return false
		}
		return true
	})
	return streamErr
}

// RenderSeq2 is like [RenderIter] for sources that can fail, such as
// [JSONLRecords]. A source error stops rendering and is returned.
func RenderSeq2(w io.Writer, t *Template, seq iter.Seq2[Record, error]) error {
	var streamErr error
	seq(func(rec Record, err error) bool {
		if err != nil {
			streamErr = err
			return false
		}
		if err := writeRecord(w, t, rec); err != nil {
			streamErr = err
			return false
		}
		return true
	})
	return streamErr
}

// RenderChan renders records from a channel and writes them to w.
// It is a thin wrapper around [RenderIter].
func RenderChan(w io.Writer, t *Template, ch <-chan Record) error {
	return RenderIter(w, t, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

func writeRecord(w io.Writer, t *Template, rec Record) error {
	out, err := t.Execute(rec)
	if err != nil {
		return err
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err = io.WriteString(w, out)
	return err
}
