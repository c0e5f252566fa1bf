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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/byvalue/seq"
)

func TestMutationRoundTrip(t *testing.T) {
	t.Parallel()

	g := newGuarded(10)
	m, ok := seq.SubMut(g, seq.Span(2, 7))
	require.True(t, ok)
	assert.Equal(t, 1, g.Borrowed())

	m.SetAt(0, 100)
	assert.Equal(t, 100, m.At(0))
	assert.Equal(t, 100, g.s[2])

	assert.Equal(t, 3, m.ReplaceAt(1, 200))
	assert.Equal(t, 200, g.s[3])

	seq.Set[int](m, 4, 7)
	assert.Equal(t, 7, g.s[6])
	assert.Equal(t, 7, seq.Replace[int](m, 4, 8))

	// Failed writes never reach the backend.
	assert.False(t, seq.TrySet[int](m, 5, -1))
	_, ok = seq.TryReplace[int](m, -1, -1)
	assert.False(t, ok)
	assert.PanicsWithError(t, "seq: index out of range [5] with length 5", func() { m.SetAt(5, -1) })
	assert.Equal(t, ints{0, 1, 100, 200, 4, 5, 8, 7, 8, 9}, g.s)

	m.Release()
	m.Release()
	assert.False(t, m.Live())
	assert.Equal(t, 0, g.Borrowed())

	err := borrowError(t, func() { m.At(0) })
	assert.Equal(t, seq.Released, err.Reason)
	assert.EqualError(t, err, "seq: cannot read [2, 7): borrow was released")
}

func TestUnguardedMutation(t *testing.T) {
	t.Parallel()

	base := count(4)
	a := seq.ViewMutOf(base)
	b := seq.MustSubMut(base, seq.From(2)) // Not tracked.
	b.SetAt(0, 20)
	assert.Equal(t, 20, a.At(2))

	v, ok := seq.TryReplace[int](a, 3, 30)
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, ints{0, 1, 20, 30}, base)
	assert.True(t, seq.TrySet[int](base, 0, -1))
	assert.Equal(t, -1, base[0])
}

func TestOverlappingBorrows(t *testing.T) {
	t.Parallel()

	g := newGuarded(10)
	first := seq.MustSubMut(g, seq.Span(0, 5))

	err := borrowError(t, func() { seq.MustSubMut(g, seq.Span(4, 6)) })
	assert.Equal(t, seq.Overlapping, err.Reason)
	assert.Equal(t, seq.Interval{Start: 4, End: 6}, err.Want)
	assert.Equal(t, seq.Interval{Start: 0, End: 5}, err.Held)
	assert.NotZero(t, err.Goroutine)

	// Shared access to an exclusively borrowed interval also fails.
	err = borrowError(t, func() { seq.MustSub(g, seq.Inclusive(4, 4)) })
	assert.Equal(t, "read", err.Op)
	err = borrowError(t, func() { seq.NewIter[int](g) })
	assert.Equal(t, seq.Interval{Start: 0, End: 10}, err.Want)

	// Disjoint and empty intervals do not conflict.
	second := seq.MustSubMut(g, seq.From(5))
	empty := seq.MustSubMut(g, seq.Span(2, 2))
	_ = seq.MustSub(g, seq.Span(5, 5))
	assert.Equal(t, 2, g.Borrowed())

	first.Release()
	second.Release()
	empty.Release()
	assert.Equal(t, 0, g.Borrowed())
	assert.Equal(t, 45, sum(seq.ViewOf[int](g)))
}

func TestReborrow(t *testing.T) {
	t.Parallel()

	g := newGuarded(6)
	parent := seq.ViewMutOf[int](g)
	child := parent.MustSubMut(seq.Span(1, 4))
	assert.Equal(t, seq.Interval{Start: 1, End: 4}, child.Interval())
	assert.Equal(t, 1, g.Borrowed())

	err := borrowError(t, func() { parent.SetAt(0, 9) })
	assert.Equal(t, seq.Frozen, err.Reason)
	err = borrowError(t, func() { parent.MustSubMut(seq.From(4)) })
	assert.Equal(t, seq.Frozen, err.Reason)
	assert.Equal(t, "reborrow", err.Op)

	err = borrowError(t, func() { parent.At(0) })
	assert.Equal(t, seq.Frozen, err.Reason)
	assert.Equal(t, "read", err.Op)

	grandchild := child.MustSubMut(seq.To(1))
	assert.Equal(t, seq.Interval{Start: 1, End: 2}, grandchild.Interval())
	grandchild.SetAt(0, 42)
	grandchild.Release()

	child.SetAt(1, 43)
	child.Release()
	parent.SetAt(0, 41)
	assert.Equal(t, ints{41, 42, 43, 3, 4, 5}, g.s)

	// Releasing a parent invalidates everything reborrowed from it.
	child = parent.MustSubMut(seq.Full())
	parent.Release()
	assert.Equal(t, 0, g.Borrowed())
	err = borrowError(t, func() { child.At(0) })
	assert.Equal(t, seq.Released, err.Reason)
}

func TestSharedReadsOfBorrowedElements(t *testing.T) {
	t.Parallel()

	// Views and iterators created before an overlapping mutable view fail on
	// the elements it holds.
	g := newGuarded(6)
	ro := seq.MustSub(g, seq.Span(0, 3))
	it := seq.NewIter[int](ro)
	m := seq.MustSubMut(g, seq.Span(1, 4))
	m.SetAt(0, 99)

	assert.Equal(t, 0, ro.At(0))
	err := borrowError(t, func() { ro.At(1) })
	assert.Equal(t, seq.Overlapping, err.Reason)
	assert.Equal(t, seq.Interval{Start: 1, End: 2}, err.Want)
	assert.Equal(t, seq.Interval{Start: 1, End: 4}, err.Held)
	borrowError(t, func() { ro.Get(2) })

	v, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, 0, v)
	borrowError(t, func() { it.Next() })

	m.Release()
	assert.Equal(t, 99, ro.At(1))
	assert.Equal(t, []int{0, 99, 2}, ro.ToSlice())

	// A view of a mutable view cannot be read while it is frozen.
	m = seq.MustSubMut(g, seq.Full())
	view := m.View()
	child := m.MustSubMut(seq.Full())
	child.SetAt(0, 7)
	err = borrowError(t, func() { view.At(0) })
	assert.Equal(t, seq.Frozen, err.Reason)
	borrowError(t, func() { m.View() })
	child.Release()
	assert.Equal(t, 7, view.At(0))
	m.Release()
}

func TestViewOfViewMut(t *testing.T) {
	t.Parallel()

	g := newGuarded(6)
	m := seq.MustSubMut(g, seq.From(2))
	view := m.View()
	sub := m.MustSub(seq.Span(1, 3))
	assert.Equal(t, seq.Interval{Start: 3, End: 5}, sub.Interval())

	m.SetAt(1, 30)
	assert.Equal(t, 30, view.At(1))
	assert.Equal(t, 30, sub.At(0))
	assert.Equal(t, []int{30, 4}, sub.MustSub(seq.Full()).ToSlice())
	assert.Equal(t, []int{2, 30, 4, 5}, collect(m.Iter().All()))

	m.Release()
	err := borrowError(t, func() { view.At(0) })
	assert.Equal(t, seq.Released, err.Reason)
}

func TestAssertIdle(t *testing.T) {
	t.Parallel()

	g := newGuarded(6)
	g.AssertIdle("grow")

	m := seq.MustSubMut(g, seq.To(3))
	err := borrowError(t, func() { g.AssertIdle("grow") })
	assert.Equal(t, seq.Busy, err.Reason)
	assert.Contains(t, err.Error(), "seq: cannot grow: [0, 3) is exclusively borrowed by goroutine ")

	m.Release()
	g.AssertIdle("grow")
}

func TestWrapperSharesGuard(t *testing.T) {
	t.Parallel()

	g := newGuarded(4)
	w := seq.Wrap(g,
		func(v int) float64 { return float64(v) / 2 },
		func(f float64) int { return int(f * 2) },
	)

	m := seq.MustSubMut(w, seq.Span(0, 2))
	m.SetAt(1, 2.5)
	assert.Equal(t, 5, g.s[1])

	err := borrowError(t, func() { seq.MustSubMut(g, seq.Span(1, 3)) })
	assert.Equal(t, seq.Overlapping, err.Reason)
	m.Release()
	seq.MustSubMut(g, seq.Span(1, 3)).Release()

	// An unguarded wrapped sequence tracks nothing.
	u := seq.Wrap(count(3), func(v int) int { return -v }, func(v int) int { return -v })
	seq.MustSubMut(u, seq.Full())
	seq.MustSubMut(u, seq.Full())
}

func sum(s seq.Indexer[int]) int {
	var total int
	for _, v := range seq.All(s) {
		total += v
	}
	return total
}
