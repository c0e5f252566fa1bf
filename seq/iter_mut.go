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

package seq

import "iter"

// IterMut is a double-ended iterator over mutable element handles.
//
// Each pull invalidates the previously returned [Handle]. The iterator holds a
// [Loan] over the interval it covers, which is released when the iterator is
// exhausted or [IterMut.Release] is called.
type IterMut[T any] struct {
	base   Setter[T]
	origin int // Start of the source interval, for Handle.Index.
	cur    Cursor
	loan   *Loan
	gen    uint64
}

// Handle is a by-value accessor for one element yielded by an [IterMut].
//
// A handle is only valid until the next pull on its iterator; using it after
// that panics with a [*BorrowError].
type Handle[T any] struct {
	it  *IterMut[T]
	idx int
	gen uint64
}

// NewIterMut returns a mutable iterator over all of s.
//
// Panics with a [*BorrowError] if s cannot be exclusively borrowed.
func NewIterMut[T any](s Setter[T]) *IterMut[T] {
	base, iv, parent := mutWindow(s)
	return &IterMut[T]{
		base:   base,
		origin: iv.Start,
		cur:    CursorOver(iv),
		loan:   lend(base, iv, parent),
	}
}

// IterMutFrom returns a mutable iterator over s that starts at from.
//
// Returns false unless 0 <= from <= s.Len().
func IterMutFrom[T any](s Setter[T], from int) (*IterMut[T], bool) {
	if from < 0 || from > s.Len() {
		return nil, false
	}
	it := NewIterMut(s)
	it.cur.AdvanceBy(from)
	return it, true
}

// MustIterMutFrom is like [IterMutFrom], but panics with a [*BoundsError].
func MustIterMutFrom[T any](s Setter[T], from int) *IterMut[T] {
	it, ok := IterMutFrom(s, from)
	if !ok {
		panic(&BoundsError{Index: from, Len: s.Len()})
	}
	return it
}

// Len returns the number of handles remaining.
func (it *IterMut[T]) Len() int {
	return it.cur.Len()
}

// Next returns a handle to the next element from the front.
func (it *IterMut[T]) Next() (Handle[T], bool) {
	return it.handle(it.cur.Next())
}

// NextBack returns a handle to the next element from the back.
func (it *IterMut[T]) NextBack() (Handle[T], bool) {
	return it.handle(it.cur.NextBack())
}

// AdvanceBy skips up to n elements from the front, returning how many were
// skipped.
func (it *IterMut[T]) AdvanceBy(n int) int {
	it.gen++
	return it.cur.AdvanceBy(n)
}

// AdvanceBackBy skips up to n elements from the back, returning how many were
// skipped.
func (it *IterMut[T]) AdvanceBackBy(n int) int {
	it.gen++
	return it.cur.AdvanceBackBy(n)
}

// All drains this iterator from the front. The iterator is released when the
// loop ends, even if it ends early.
func (it *IterMut[T]) All() iter.Seq[Handle[T]] {
	return func(yield func(Handle[T]) bool) {
		defer it.Release()
		for {
			h, ok := it.Next()
			if !ok || !yield(h) {
				return
			}
		}
	}
}

// Release ends this iterator: it yields nothing further, and its loan is
// returned. Releasing twice is a no-op.
func (it *IterMut[T]) Release() {
	it.gen++
	it.cur.Front = it.cur.Back
	it.loan.Release()
}

func (it *IterMut[T]) handle(idx int, ok bool) (Handle[T], bool) {
	it.gen++
	if !ok {
		it.Release()
		return Handle[T]{}, false
	}
	it.loan.CheckWrite()
	return Handle[T]{it, idx, it.gen}, true
}

// Index returns the index of this handle's element in the sequence the
// iterator was created from.
func (h Handle[T]) Index() int {
	return h.idx - h.it.origin
}

// Get returns the element's value.
func (h Handle[T]) Get() T {
	h.check("read")
	h.it.loan.CheckRead()
	return h.it.base.At(h.idx)
}

// Set overwrites the element's value.
func (h Handle[T]) Set(value T) {
	h.check("write")
	h.it.loan.CheckWrite()
	h.it.base.SetAt(h.idx, value)
}

// Replace overwrites the element's value and returns the previous one.
func (h Handle[T]) Replace(value T) T {
	h.check("write")
	h.it.loan.CheckWrite()
	return replaceAt(h.it.base, h.idx, value)
}

func (h Handle[T]) check(op string) {
	if h.it == nil || h.gen != h.it.gen {
		panic(&BorrowError{Reason: Stale, Op: op, Want: Interval{h.idx, h.idx + 1}})
	}
}
