package termfield

import (
	"fmt"
	"strings"
)

// Justify places c in a field of the given width. It is shorthand for
// Field{Width: width, Mode: mode, Fill: fill}.Justify(c).
func Justify(c Content, width int, mode Mode, fill string) (string, error) {
	return Field{Width: width, Mode: mode, Fill: fill}.Justify(c)
}

// Justify places c in the field.
//
// Content is never truncated: when c is wider than the field no fill is
// added and the result is longer than Width. Fill is repeated literally, so
// a multi-character fill may overshoot Width.
//
// [Between] requires c to be a [Seq] of exactly two elements and fails with
// [ErrBetweenShape] otherwise. An unknown mode fails with
// [ErrUnsupportedMode].
func (f Field) Justify(c Content) (string, error) {
	f = f.WithDefaults()
	switch f.Mode {
	case Start:
		return justifyStart(c, f), nil
	case Center:
		return justifyCenter(c, f), nil
	case Between:
		return justifyBetween(c, f)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMode, f.Mode)
	}
}

func justifyStart(c Content, f Field) string {
	pad := f.Width - WidthWith(f.Measurer, c)
	return Render(c) + repeat(f.Fill, pad)
}

// justifyCenter favors the left side: when the content width is odd the
// right side gets one repetition less.
func justifyCenter(c Content, f Field) string {
	w := WidthWith(f.Measurer, c)
	left := 0
	if d := f.Width - w; d > 0 {
		left = (d + 1) / 2
	}
	right := left
	if w%2 != 0 {
		right--
	}
	return repeat(f.Fill, left) + Render(c) + repeat(f.Fill, right)
}

func justifyBetween(c Content, f Field) (string, error) {
	seq, ok := c.(Seq)
	if !ok || len(seq) != 2 {
		return "", fmt.Errorf("%w: got %d", ErrBetweenShape, elements(c))
	}
	pad := f.Width - WidthWith(f.Measurer, seq)
	return Render(seq[0]) + repeat(f.Fill, pad) + Render(seq[1]), nil
}

func repeat(fill string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(fill, n)
}
