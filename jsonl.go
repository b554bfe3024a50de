package termfield

import (
	"encoding/json"
	"errors"
	"io"
	"iter"
)

// JSONLRecords decodes newline-delimited JSON objects from r. Numbers are
// kept as json.Number so they render exactly as written. Iteration ends at
// EOF or after yielding the first decode error.
func JSONLRecords(r io.Reader) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		dec := json.NewDecoder(r)
		dec.UseNumber()
		for {
			var rec Record
			err := dec.Decode(&rec)
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(rec, nil) {
				return
			}
		}
	}
}
