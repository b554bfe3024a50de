package termfield

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Content is a value placed in a field. It is one of [Empty], a [Text], or a
// [Seq]. A nil Content behaves like [Empty].
type Content interface {
	content()
}

type empty struct{}

func (empty) content() {}

// Empty is absent content: zero width, empty output.
var Empty Content = empty{}

// Text is scalar content. It may carry ANSI escape sequences, which do not
// count toward its width.
type Text string

func (Text) content() {}

// Seq is an ordered list of content. Its width is the sum of its elements'
// widths and it renders as their concatenation.
type Seq []Content

func (Seq) content() {}

// Int returns the decimal text of n.
func Int(n int64) Text { return Text(strconv.FormatInt(n, 10)) }

// Float returns the shortest text that represents f. Magnitudes of 1e21 and
// above, or below 1e-6, use exponent form ("1e+21", "1.5e-7").
func Float(f float64) Text { return Text(formatFloat(f, 64)) }

func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.IsNaN(f):
		return "NaN"
	}
	if abs := math.Abs(f); abs != 0 && (abs >= 1e21 || abs < 1e-6) {
		s := strconv.FormatFloat(f, 'e', -1, bitSize)
		mant, exp, _ := strings.Cut(s, "e")
		return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(f, 'f', -1, bitSize)
}

// Of converts an untyped value into Content.
//
// Strings, numbers, json.Number, and bools become [Text]. Slices and arrays
// become a [Seq] of their converted elements. nil becomes [Empty]. A
// [fmt.Stringer] uses its String method; anything else renders with %v.
// Values nested deeper than [MaxDepth] fail with [ErrTooDeep].
func Of(v any) (Content, error) {
	return contentOf(v, 0)
}

func contentOf(v any, depth int) (Content, error) {
	if depth > MaxDepth {
		return nil, fmt.Errorf("%w: exceeds %d levels", ErrTooDeep, MaxDepth)
	}
	switch x := v.(type) {
	case nil:
		return Empty, nil
	case Content:
		return x, nil
	case string:
		return Text(x), nil
	case []byte:
		return Text(x), nil
	case json.Number:
		return Text(x.String()), nil
	case bool:
		return Text(strconv.FormatBool(x)), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return Text(strconv.FormatUint(uint64(x), 10)), nil
	case uint8:
		return Text(strconv.FormatUint(uint64(x), 10)), nil
	case uint16:
		return Text(strconv.FormatUint(uint64(x), 10)), nil
	case uint32:
		return Text(strconv.FormatUint(uint64(x), 10)), nil
	case uint64:
		return Text(strconv.FormatUint(x, 10)), nil
	case float32:
		return Text(formatFloat(float64(x), 32)), nil
	case float64:
		return Float(x), nil
	case []any:
		return seqOf(len(x), func(i int) any { return x[i] }, depth)
	case []string:
		seq := make(Seq, len(x))
		for i, s := range x {
			seq[i] = Text(s)
		}
		return seq, nil
	case fmt.Stringer:
		if rv := reflect.ValueOf(x); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return Empty, nil
		}
		return Text(x.String()), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return seqOf(rv.Len(), func(i int) any { return rv.Index(i).Interface() }, depth)
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Empty, nil
		}
	}
	return Text(fmt.Sprintf("%v", v)), nil
}

func seqOf(n int, at func(int) any, depth int) (Content, error) {
	seq := make(Seq, n)
	for i := range n {
		c, err := contentOf(at(i), depth+1)
		if err != nil {
			return nil, err
		}
		seq[i] = c
	}
	return seq, nil
}

// Render returns the text of c. A [Seq] renders as the concatenation of its
// elements.
func Render(c Content) string {
	var sb strings.Builder
	render(&sb, c, 0)
	return sb.String()
}

func render(sb *strings.Builder, c Content, depth int) {
	switch v := c.(type) {
	case Text:
		sb.WriteString(string(v))
	case Seq:
		if depth >= MaxDepth {
			return
		}
		for _, e := range v {
			render(sb, e, depth+1)
		}
	}
}

// elements reports how many top-level elements c holds.
func elements(c Content) int {
	switch v := c.(type) {
	case Seq:
		return len(v)
	case Text:
		return 1
	default:
		return 0
	}
}
