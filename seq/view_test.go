// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package seq_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/byvalue/seq"
)

func TestWorkedExample(t *testing.T) {
	t.Parallel()

	base := count(10)
	view, ok := seq.Sub(base, seq.Span(2, 7))
	require.True(t, ok)

	assert.Equal(t, 5, view.Len())
	assert.Equal(t, 2, view.At(0))
	assert.Equal(t, 6, view.At(4))
	_, ok = view.Get(5)
	assert.False(t, ok)
	assert.PanicsWithError(t, "seq: index out of range [5] with length 5", func() { view.At(5) })

	assert.Equal(t, []int{2, 3, 4, 5, 6}, slices.Collect(view.Iter().All()))
	assert.Equal(t, []int{6, 5, 4, 3, 2}, slices.Collect(view.Iter().Backward()))
	assert.Equal(t, "[2 3 4 5 6]", fmt.Sprint(view))
}

func TestSubProperties(t *testing.T) {
	t.Parallel()

	for n := range 7 {
		base := count(n)
		for start := -1; start <= n+1; start++ {
			for end := -1; end <= n+1; end++ {
				view, ok := seq.Sub(base, seq.Span(start, end))
				valid := 0 <= start && start <= end && end <= n
				require.Equal(t, valid, ok, "Span(%d, %d) over %d", start, end, n)

				if !valid {
					assert.Panics(t, func() { seq.MustSub(base, seq.Span(start, end)) })
					continue
				}

				assert.Equal(t, end-start, view.Len())
				for i := range view.Len() {
					assert.Equal(t, base[start+i], view.At(i))
				}
				assert.Equal(t, base[start:end], ints(view.ToSlice()))
			}
		}
	}
}

func TestResubrange(t *testing.T) {
	t.Parallel()

	const n = 6
	base := count(n)
	for a := 0; a <= n; a++ {
		for b := a; b <= n; b++ {
			outer := seq.MustSub(base, seq.Span(a, b))
			for c := 0; c <= b-a; c++ {
				for d := c; d <= b-a; d++ {
					inner, ok := outer.Sub(seq.Span(c, d))
					require.True(t, ok)

					// Composition is flat: the inner view addresses base directly.
					assert.Equal(t, seq.Interval{Start: a + c, End: a + d}, inner.Interval())
					for i := range inner.Len() {
						assert.Equal(t, base[a+c+i], inner.At(i))
					}

					innermost := inner.MustSub(seq.Full())
					assert.Equal(t, inner.Interval(), innermost.Interval())
				}
			}

			_, ok := outer.Sub(seq.To(b - a + 1))
			assert.False(t, ok)
		}
	}
}

func TestViewHelpers(t *testing.T) {
	t.Parallel()

	view := seq.ViewOf(count(4))
	assert.Equal(t, seq.Interval{Start: 0, End: 4}, view.Interval())
	assert.Equal(t, []int{0, 1, 2, 3}, slices.Collect(view.Values()))
	assert.False(t, seq.IsEmpty[int](view))

	var idx []int
	for i, v := range seq.Backward[int](view.MustSub(seq.From(2))) {
		idx = append(idx, i)
		assert.Equal(t, i+2, v)
	}
	assert.Equal(t, []int{1, 0}, idx)

	strs := slices.Collect(seq.Map[int](view, func(x int) string { return fmt.Sprint(x * x) }))
	assert.Equal(t, []string{"0", "1", "4", "9"}, strs)

	v, ok := seq.Get[int](view, 3)
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	_, ok = seq.Get[int](view, -1)
	assert.False(t, ok)
	assert.Equal(t, 2, seq.Index[int](view, 2))
	assert.Panics(t, func() { seq.Index[int](view, 4) })

	empty := view.MustSub(seq.Span(4, 4))
	assert.True(t, seq.IsEmpty[int](empty))
	assert.Equal(t, "[]", fmt.Sprint(empty))
}

func TestFuncAndSlice(t *testing.T) {
	t.Parallel()

	squares := seq.NewFunc(5, func(i int) int { return i * i })
	view := seq.MustSub(squares, seq.Inclusive(1, 3))
	assert.Equal(t, []int{1, 4, 9}, view.ToSlice())
	assert.Panics(t, func() { squares.At(5) })

	raw := []byte("abc")
	s := seq.NewSlice(raw,
		func(_ int, b byte) string { return string(b) },
		func(_ int, s string) byte { return s[0] },
	)
	assert.Equal(t, "b", seq.Replace(s, 1, "x"))
	assert.Equal(t, "axc", string(raw))

	fixed := seq.NewFixedSlice(raw, func(i int, b byte) int { return i + int(b) })
	assert.Equal(t, int('a'), fixed.At(0))
	assert.Panics(t, func() { fixed.SetAt(0, 0) })
}
