package termfield

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidTemplate = errors.New("invalid template")
	ErrTooDeep         = errors.New("content nested too deeply")

	ErrUnsupportedMode = fmt.Errorf("%w: unsupported justify mode", ErrInvalidArgument)
	ErrBetweenShape    = fmt.Errorf("%w: between requires exactly two elements", ErrInvalidArgument)
)

// MaxDepth bounds how deeply nested a [Seq] may be. [Of] rejects deeper
// values; [Width] and [Render] stop descending past it.
const MaxDepth = 64

// DefaultFill is the fill used when a [Field] leaves Fill empty.
const DefaultFill = " "

// Mode selects where fill is placed relative to content.
type Mode string

const (
	// Start places content at the start of the field and fill after it.
	Start Mode = "start"
	// Between places fill between the two elements of a two-element [Seq].
	Between Mode = "between"
	// Center splits fill on both sides of the content.
	Center Mode = "center"
)

var modes = []Mode{Start, Between, Center}

// String returns the mode name.
func (m Mode) String() string { return string(m) }

// Modes returns all supported modes.
func Modes() []Mode {
	out := make([]Mode, len(modes))
	copy(out, modes)
	return out
}

// ParseMode parses a mode name. The empty string parses as [Start].
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return Start, nil
	}
	for _, m := range modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedMode, s)
}

// Field describes a fixed-width field.
//
// The zero value of every member selects its default: Mode [Start],
// Fill [DefaultFill], Measurer [Runes]. Width is the target visible width;
// content wider than Width is never truncated.
type Field struct {
	Width int
	Mode  Mode
	// Fill is repeated literally to pad the field. An empty Fill means
	// [DefaultFill]; a field cannot be padded with nothing.
	Fill     string
	Measurer Measurer
}

// WithDefaults returns f with unset members replaced by their defaults.
func (f Field) WithDefaults() Field {
	if f.Mode == "" {
		f.Mode = Start
	}
	if f.Fill == "" {
		f.Fill = DefaultFill
	}
	if f.Measurer == nil {
		f.Measurer = Runes
	}
	return f
}

// Validate reports whether f can be used to justify content.
func (f Field) Validate() error {
	if f.Width < 0 {
		return fmt.Errorf("%w: negative width %d", ErrInvalidArgument, f.Width)
	}
	if _, err := ParseMode(string(f.Mode)); err != nil {
		return err
	}
	return nil
}
