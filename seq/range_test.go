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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/byvalue/seq"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	ok := func(start, end int) *seq.Interval { return &seq.Interval{Start: start, End: end} }

	tests := []struct {
		r    seq.Range
		n    int
		want *seq.Interval // nil means the range must not resolve.
		kind seq.RangeErrorKind
	}{
		{r: seq.Full(), n: 0, want: ok(0, 0)},
		{r: seq.Full(), n: 10, want: ok(0, 10)},
		{r: seq.Range{}, n: 3, want: ok(0, 3)},

		{r: seq.From(0), n: 10, want: ok(0, 10)},
		{r: seq.From(10), n: 10, want: ok(10, 10)},
		{r: seq.From(11), n: 10, kind: seq.OutOfRange},
		{r: seq.From(-1), n: 10, kind: seq.Invalid},

		{r: seq.To(0), n: 10, want: ok(0, 0)},
		{r: seq.To(10), n: 10, want: ok(0, 10)},
		{r: seq.To(11), n: 10, kind: seq.OutOfRange},
		{r: seq.To(-1), n: 10, kind: seq.Invalid},

		{r: seq.ToInclusive(0), n: 10, want: ok(0, 1)},
		{r: seq.ToInclusive(9), n: 10, want: ok(0, 10)},
		{r: seq.ToInclusive(10), n: 10, kind: seq.OutOfRange},
		{r: seq.ToInclusive(0), n: 0, kind: seq.Invalid},

		{r: seq.Span(2, 7), n: 10, want: ok(2, 7)},
		{r: seq.Span(3, 3), n: 10, want: ok(3, 3)},
		{r: seq.Span(10, 10), n: 10, want: ok(10, 10)},
		{r: seq.Span(0, 0), n: 0, want: ok(0, 0)},
		{r: seq.Span(7, 2), n: 10, kind: seq.Invalid},
		{r: seq.Span(5, 3), n: 2, kind: seq.Invalid},
		{r: seq.From(5), n: 2, kind: seq.OutOfRange},
		{r: seq.Span(2, 11), n: 10, kind: seq.OutOfRange},
		{r: seq.Span(-1, 2), n: 10, kind: seq.Invalid},

		{r: seq.Inclusive(2, 6), n: 10, want: ok(2, 7)},
		{r: seq.Inclusive(9, 9), n: 10, want: ok(9, 10)},
		{r: seq.Inclusive(5, 10), n: 10, kind: seq.OutOfRange},
		{r: seq.Inclusive(6, 2), n: 10, kind: seq.Invalid},
		{r: seq.Inclusive(0, 0), n: 0, kind: seq.Invalid},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v/%d", tt.r, tt.n), func(t *testing.T) {
			t.Parallel()

			iv, resolved := tt.r.Resolve(tt.n)
			err := tt.r.Check(tt.n)
			if tt.want != nil {
				require.True(t, resolved)
				require.NoError(t, err)
				assert.Equal(t, *tt.want, iv)
				assert.Equal(t, *tt.want, tt.r.MustResolve(tt.n))
				return
			}

			assert.False(t, resolved)
			var rangeErr *seq.RangeError
			require.ErrorAs(t, err, &rangeErr)
			assert.Equal(t, tt.kind, rangeErr.Kind)
			assert.Equal(t, tt.n, rangeErr.Len)

			assert.PanicsWithError(t, err.Error(), func() { tt.r.MustResolve(tt.n) })
		})
	}
}

func TestRangeCompose(t *testing.T) {
	t.Parallel()

	base := seq.Interval{Start: 2, End: 7}
	iv, ok := seq.Span(1, 3).Compose(base)
	assert.True(t, ok)
	assert.Equal(t, seq.Interval{Start: 3, End: 5}, iv)

	iv, ok = seq.From(5).Compose(base)
	assert.True(t, ok)
	assert.Equal(t, seq.Interval{Start: 7, End: 7}, iv)

	_, ok = seq.To(6).Compose(base)
	assert.False(t, ok)

	var rangeErr *seq.RangeError
	defer func() {
		require.ErrorAs(t, recover().(error), &rangeErr)
		assert.Equal(t, 5, rangeErr.Len)
	}()
	seq.To(6).MustCompose(base)
}

func TestRangeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[0, len)", seq.Full().String())
	assert.Equal(t, "[3, len)", seq.From(3).String())
	assert.Equal(t, "[0, 3)", seq.To(3).String())
	assert.Equal(t, "[0, 3]", seq.ToInclusive(3).String())
	assert.Equal(t, "[1, 3)", seq.Span(1, 3).String())
	assert.Equal(t, "[1, 3]", seq.Inclusive(1, 3).String())
	assert.Equal(t, "[1, 3)", seq.Interval{Start: 1, End: 3}.String())

	err := seq.Span(4, 2).Check(10)
	assert.EqualError(t, err, "seq: invalid range [4, 2) for length 10")
	err = seq.Inclusive(4, 10).Check(10)
	assert.EqualError(t, err, "seq: range [4, 10] out of range for length 10")
}

func TestInterval(t *testing.T) {
	t.Parallel()

	iv := seq.Interval{Start: 2, End: 5}
	assert.Equal(t, 3, iv.Len())
	assert.False(t, iv.Empty())
	assert.True(t, iv.Contains(2))
	assert.True(t, iv.Contains(4))
	assert.False(t, iv.Contains(5))
	assert.True(t, seq.Interval{Start: 5, End: 5}.Empty())
	assert.Equal(t, seq.Interval{Start: 3, End: 4}, iv.Compose(seq.Interval{Start: 1, End: 2}))
}
