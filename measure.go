package termfield

import (
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Measurer computes the visible width of scalar text.
type Measurer interface {
	Measure(text string) int
}

// MeasureFunc adapts a function to [Measurer].
type MeasureFunc func(text string) int

// Measure calls fn(text).
func (fn MeasureFunc) Measure(text string) int { return fn(text) }

var (
	// Runes counts one unit per rune after stripping ANSI escape sequences.
	// Wide and combining characters count as one unit each.
	Runes Measurer = MeasureFunc(func(text string) int {
		return utf8.RuneCountInString(ansi.Strip(text))
	})

	// Cells counts terminal display cells after stripping ANSI escape
	// sequences. East-Asian wide characters count as two cells and
	// zero-width characters as none.
	Cells Measurer = MeasureFunc(func(text string) int {
		return runewidth.StringWidth(ansi.Strip(text))
	})
)

// ParseMeasurer returns the measurer named "runes" or "cells". The empty
// string selects [Runes].
func ParseMeasurer(name string) (Measurer, error) {
	switch name {
	case "", "runes":
		return Runes, nil
	case "cells":
		return Cells, nil
	default:
		return nil, fmt.Errorf("%w: unsupported measurer %q", ErrInvalidArgument, name)
	}
}

// Width returns the visible width of c using [Runes].
func Width(c Content) int {
	return WidthWith(Runes, c)
}

// WidthWith returns the visible width of c, measuring each [Text] with m.
// A [Seq] measures as the sum of its elements, to any depth up to
// [MaxDepth].
func WidthWith(m Measurer, c Content) int {
	if m == nil {
		m = Runes
	}
	return measure(m, c, 0)
}

func measure(m Measurer, c Content, depth int) int {
	switch v := c.(type) {
	case Text:
		if v == "" {
			return 0
		}
		return m.Measure(string(v))
	case Seq:
		if depth >= MaxDepth {
			return 0
		}
		n := 0
		for _, e := range v {
			n += measure(m, e, depth+1)
		}
		return n
	default:
		return 0
	}
}
