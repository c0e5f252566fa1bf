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

import (
	"fmt"
	"iter"
)

// View is a read-only window over a contiguous interval of a backend,
// re-indexed so that index 0 of the view is the start of the interval.
//
// A View is itself an [Indexer]. Taking a subrange of a view produces a view
// over the original backend, never a view of a view.
type View[T any] struct {
	base Indexer[T]
	iv   Interval // In base's coordinates.

	// Set when this view was derived from a mutable view; reads through it
	// are only valid while that view's loan is.
	owner *Loan
}

// windowed is implemented by views, so that subranges of them can be
// composed against their backend.
type windowed[T any] interface {
	// window returns the backend, the interval of it being viewed, and the
	// loan the view holds, if it is mutable.
	window() (Indexer[T], Interval, *Loan)
}

// window unwraps s into a backend and an interval of it.
func window[T any](s Indexer[T]) (Indexer[T], Interval, *Loan) {
	if w, ok := s.(windowed[T]); ok {
		return w.window()
	}
	return s, Interval{0, s.Len()}, nil
}

// Sub returns a view of the elements of s in r.
//
// Returns false if r does not resolve against s's length.
func Sub[T any](s Indexer[T], r Range) (View[T], bool) {
	base, iv, owner := window(s)
	sub, ok := r.Compose(iv)
	if !ok {
		return View[T]{}, false
	}
	return newView(base, sub, owner), true
}

// MustSub is like [Sub], but panics with a [*RangeError] if r does not
// resolve.
func MustSub[T any](s Indexer[T], r Range) View[T] {
	base, iv, owner := window(s)
	return newView(base, r.MustCompose(iv), owner)
}

// ViewOf returns a view of all of s.
func ViewOf[T any](s Indexer[T]) View[T] {
	return MustSub(s, Full())
}

func newView[T any](base Indexer[T], iv Interval, owner *Loan) View[T] {
	CheckShared(base, iv, owner)
	return View[T]{base, iv, owner}
}

func (v View[T]) window() (Indexer[T], Interval, *Loan) {
	return v.base, v.iv, v.owner
}

// Len implements [Indexer].
func (v View[T]) Len() int {
	return v.iv.Len()
}

// At implements [Indexer]. Panics with a [*BoundsError] if idx is out of
// bounds for this view, even if it would be in bounds for the backend.
func (v View[T]) At(idx int) T {
	CheckIndex(idx, v.iv.Len())
	CheckAt(v.base, v.iv.Start+idx, v.owner)
	return v.base.At(v.iv.Start + idx)
}

// Get is like [View.At], but returns false instead of panicking.
func (v View[T]) Get(idx int) (T, bool) {
	return Get[T](v, idx)
}

// Interval returns the interval of the backend this view covers.
func (v View[T]) Interval() Interval {
	return v.iv
}

// Sub is like [Sub] applied to this view.
func (v View[T]) Sub(r Range) (View[T], bool) {
	return Sub[T](v, r)
}

// MustSub is like [MustSub] applied to this view.
func (v View[T]) MustSub(r Range) View[T] {
	return MustSub[T](v, r)
}

// Iter returns an iterator over this view.
func (v View[T]) Iter() *Iter[T] {
	return NewIter[T](v)
}

// IterFrom returns an iterator over this view starting at from.
func (v View[T]) IterFrom(from int) (*Iter[T], bool) {
	return IterFrom[T](v, from)
}

// MustIterFrom is like [View.IterFrom], but panics with a [*BoundsError].
func (v View[T]) MustIterFrom(from int) *Iter[T] {
	return MustIterFrom[T](v, from)
}

// Values returns an iterator over the elements of this view.
func (v View[T]) Values() iter.Seq[T] {
	return Values[T](v)
}

// ToSlice copies this view into a new slice.
func (v View[T]) ToSlice() []T {
	return ToSlice[T](v)
}

// Format implements [fmt.Formatter].
func (v View[T]) Format(out fmt.State, verb rune) {
	CheckShared(v.base, v.iv, v.owner)
	fmt.Fprint(out, "[")
	for i := range v.iv.Len() {
		if i > 0 {
			fmt.Fprint(out, " ")
		}
		fmt.Fprintf(out, fmt.FormatString(out, verb), v.base.At(v.iv.Start+i))
	}
	fmt.Fprint(out, "]")
}
