package termfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepeatNonPositive(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", repeat(".", 0))
	assert.Equal(t, "", repeat(".", -3))
	assert.Equal(t, "ababab", repeat("ab", 3))
}

func TestElements(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, elements(nil))
	assert.Equal(t, 0, elements(Empty))
	assert.Equal(t, 1, elements(Text("")))
	assert.Equal(t, 2, elements(Seq{Text("a"), Seq{Text("b"), Text("c")}}))
}

func TestJustifyCenterClampsBeforeAdjusting(t *testing.T) {
	t.Parallel()
	// Odd content wider than the field: right pad would be -1 without the clamp.
	got := justifyCenter(Text("abcde"), Field{Width: 2}.WithDefaults())
	assert.Equal(t, "abcde", got)
}

func TestChanToIterStopsEarly(t *testing.T) {
	t.Parallel()
	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	ch <- 3
	close(ch)
	var got []int
	for v := range chanToIter(ch) {
		got = append(got, v)
		if v == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, 3, <-ch)
}

func TestMeasureSkipsEmptyText(t *testing.T) {
	t.Parallel()
	calls := 0
	m := MeasureFunc(func(s string) int {
		calls++
		return len(s)
	})
	assert.Equal(t, 3, WidthWith(m, Seq{Text(""), Text("abc"), Empty}))
	assert.Equal(t, 1, calls)
}
