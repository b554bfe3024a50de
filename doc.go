// Package termfield renders fixed-width, column-aligned text for terminals.
//
// Text may carry ANSI escape sequences (colors, styles, cursor movement).
// Those sequences never count toward a value's width, so styled and plain
// text line up the same way.
//
// # Content
//
// A value placed in a field is a [Content]: [Empty], a scalar [Text], or a
// [Seq] of content. Use [Of] to convert untyped data such as decoded JSON or
// YAML:
//
//	c, err := termfield.Of([]any{"Total", 42})
//
// # Measuring
//
// [Width] returns the visible width of content. A [Seq] measures as the sum
// of its elements, recursively:
//
//	termfield.Width(termfield.Text("\x1b[36mTest")) // 4
//	termfield.Width(termfield.Seq{termfield.Text("Foo"), termfield.Seq{termfield.Text("Bar")}}) // 6
//
// The default [Runes] measurer counts one unit per character. [Cells] counts
// terminal display cells, so East-Asian wide characters take two.
//
// # Justifying
//
// A [Field] describes a fixed-width slot. [Field.Justify] places content in
// it using one of three modes:
//
//   - [Start] — content then fill
//   - [Center] — fill on both sides; odd-width content loses one fill on the right
//   - [Between] — first element, fill, second element (requires a two-element [Seq])
//
// Content wider than the field is never truncated; it is returned without
// fill.
//
//	termfield.Justify(termfield.Text("Test"), 10, termfield.Center, ".") // "...Test..."
//
// # Templates
//
// A [Template] binds named fields to a Go [text/template]. [LoadTemplate]
// reads one from YAML, and [RenderIter] renders a stream of records such as
// those produced by [JSONLRecords].
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidArgument] — base of the two below and of invalid field specs
//   - [ErrUnsupportedMode] — unknown justify mode
//   - [ErrBetweenShape] — between mode without exactly two elements
//   - [ErrInvalidTemplate] — malformed template text or YAML document
//   - [ErrTooDeep] — content nested deeper than [MaxDepth]
package termfield
