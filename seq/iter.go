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

// Iter is a double-ended iterator over the values of a sequence.
//
// The front and back may be advanced independently; iteration ends when they
// meet.
type Iter[T any] struct {
	base  Indexer[T]
	cur   Cursor
	owner *Loan
}

// NewIter returns an iterator over all of s.
func NewIter[T any](s Indexer[T]) *Iter[T] {
	base, iv, owner := window(s)
	v := newView(base, iv, owner)
	return &Iter[T]{v.base, CursorOver(v.iv), v.owner}
}

// IterFrom returns an iterator over s that starts at from.
//
// Returns false unless 0 <= from <= s.Len().
func IterFrom[T any](s Indexer[T], from int) (*Iter[T], bool) {
	if from < 0 || from > s.Len() {
		return nil, false
	}
	it := NewIter(s)
	it.cur.AdvanceBy(from)
	return it, true
}

// MustIterFrom is like [IterFrom], but panics with a [*BoundsError].
func MustIterFrom[T any](s Indexer[T], from int) *Iter[T] {
	it, ok := IterFrom(s, from)
	if !ok {
		panic(&BoundsError{Index: from, Len: s.Len()})
	}
	return it
}

// Len returns the number of values remaining.
func (it *Iter[T]) Len() int {
	return it.cur.Len()
}

// Next returns the next value from the front.
func (it *Iter[T]) Next() (T, bool) {
	return it.at(it.cur.Next())
}

// NextBack returns the next value from the back.
func (it *Iter[T]) NextBack() (T, bool) {
	return it.at(it.cur.NextBack())
}

// AdvanceBy skips up to n values from the front, returning how many were
// skipped.
func (it *Iter[T]) AdvanceBy(n int) int {
	return it.cur.AdvanceBy(n)
}

// AdvanceBackBy skips up to n values from the back, returning how many were
// skipped.
func (it *Iter[T]) AdvanceBackBy(n int) int {
	return it.cur.AdvanceBackBy(n)
}

// Nth skips n values and returns the one after them.
func (it *Iter[T]) Nth(n int) (T, bool) {
	return it.at(it.cur.Nth(n))
}

// NthBack skips n values from the back and returns the one before them.
func (it *Iter[T]) NthBack(n int) (T, bool) {
	return it.at(it.cur.NthBack(n))
}

// All drains this iterator from the front.
func (it *Iter[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Backward drains this iterator from the back.
func (it *Iter[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.NextBack()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

func (it *Iter[T]) at(idx int, ok bool) (v T, _ bool) {
	if !ok {
		return v, false
	}
	CheckAt(it.base, idx, it.owner)
	return it.base.At(idx), true
}
