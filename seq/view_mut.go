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

// ViewMut is a mutable window over a contiguous interval of a backend.
//
// A ViewMut holds a [Loan] of its interval. If the backend is [Guarded],
// creating a ViewMut over an interval that overlaps another live mutable view
// panics. Call [ViewMut.Release] to end the loan; a released view panics on
// use.
//
// Mutable subranges of a ViewMut are reborrows: the parent view cannot be
// used until they are released.
type ViewMut[T any] struct {
	base Setter[T]
	iv   Interval
	loan *Loan
}

// mutWindowed is implemented by mutable views, so that mutable subranges of
// them can be composed against their backend.
type mutWindowed[T any] interface {
	mutWindow() (Setter[T], Interval, *Loan)
}

func mutWindow[T any](s Setter[T]) (Setter[T], Interval, *Loan) {
	if w, ok := s.(mutWindowed[T]); ok {
		return w.mutWindow()
	}
	return s, Interval{0, s.Len()}, nil
}

// lend takes a loan of iv from parent if there is one, or from base
// otherwise.
func lend(base any, iv Interval, parent *Loan) *Loan {
	if parent != nil {
		return parent.Reborrow(iv)
	}
	return Lend(base, iv)
}

// SubMut returns a mutable view of the elements of s in r.
//
// Returns false if r does not resolve against s's length. Panics with a
// [*BorrowError] if the interval cannot be exclusively borrowed.
func SubMut[T any](s Setter[T], r Range) (ViewMut[T], bool) {
	base, iv, parent := mutWindow(s)
	sub, ok := r.Compose(iv)
	if !ok {
		return ViewMut[T]{}, false
	}
	return ViewMut[T]{base, sub, lend(base, sub, parent)}, true
}

// MustSubMut is like [SubMut], but panics with a [*RangeError] if r does not
// resolve.
func MustSubMut[T any](s Setter[T], r Range) ViewMut[T] {
	base, iv, parent := mutWindow(s)
	sub := r.MustCompose(iv)
	return ViewMut[T]{base, sub, lend(base, sub, parent)}
}

// ViewMutOf returns a mutable view of all of s.
func ViewMutOf[T any](s Setter[T]) ViewMut[T] {
	return MustSubMut(s, Full())
}

func (m ViewMut[T]) window() (Indexer[T], Interval, *Loan) {
	return m.base, m.iv, m.loan
}

func (m ViewMut[T]) mutWindow() (Setter[T], Interval, *Loan) {
	return m.base, m.iv, m.loan
}

// Len implements [Indexer].
func (m ViewMut[T]) Len() int {
	return m.iv.Len()
}

// At implements [Indexer]. Panics with a [*BoundsError] if idx is out of
// bounds for this view.
func (m ViewMut[T]) At(idx int) T {
	CheckIndex(idx, m.iv.Len())
	m.loan.CheckRead()
	return m.base.At(m.iv.Start + idx)
}

// Get is like [ViewMut.At], but returns false instead of panicking.
func (m ViewMut[T]) Get(idx int) (T, bool) {
	return Get[T](m, idx)
}

// SetAt implements [Setter]. Panics with a [*BoundsError] if idx is out of
// bounds for this view.
func (m ViewMut[T]) SetAt(idx int, value T) {
	CheckIndex(idx, m.iv.Len())
	m.loan.CheckWrite()
	m.base.SetAt(m.iv.Start+idx, value)
}

// ReplaceAt implements [Replacer]. Panics with a [*BoundsError] if idx is out
// of bounds for this view.
func (m ViewMut[T]) ReplaceAt(idx int, value T) T {
	CheckIndex(idx, m.iv.Len())
	m.loan.CheckWrite()
	return replaceAt(m.base, m.iv.Start+idx, value)
}

// Interval returns the interval of the backend this view covers.
func (m ViewMut[T]) Interval() Interval {
	return m.iv
}

// View returns a read-only view of the same elements.
//
// Writes through m remain visible through the returned view.
func (m ViewMut[T]) View() View[T] {
	return newView(m.base, m.iv, m.loan)
}

// Sub returns a read-only view of the elements of m in r.
func (m ViewMut[T]) Sub(r Range) (View[T], bool) {
	return Sub[T](m, r)
}

// MustSub is like [ViewMut.Sub], but panics with a [*RangeError].
func (m ViewMut[T]) MustSub(r Range) View[T] {
	return MustSub[T](m, r)
}

// SubMut reborrows the elements of m in r. m cannot be used until the
// returned view is released.
func (m ViewMut[T]) SubMut(r Range) (ViewMut[T], bool) {
	return SubMut[T](m, r)
}

// MustSubMut is like [ViewMut.SubMut], but panics with a [*RangeError].
func (m ViewMut[T]) MustSubMut(r Range) ViewMut[T] {
	return MustSubMut[T](m, r)
}

// Iter returns a read-only iterator over this view.
func (m ViewMut[T]) Iter() *Iter[T] {
	return NewIter[T](m)
}

// IterFrom returns a read-only iterator over this view starting at from.
func (m ViewMut[T]) IterFrom(from int) (*Iter[T], bool) {
	return IterFrom[T](m, from)
}

// MustIterFrom is like [ViewMut.IterFrom], but panics with a [*BoundsError].
func (m ViewMut[T]) MustIterFrom(from int) *Iter[T] {
	return MustIterFrom[T](m, from)
}

// IterMut returns an iterator over mutable handles to the elements of this
// view. It reborrows m until it is exhausted or released.
func (m ViewMut[T]) IterMut() *IterMut[T] {
	return NewIterMut[T](m)
}

// Values returns an iterator over the elements of this view.
func (m ViewMut[T]) Values() iter.Seq[T] {
	return Values[T](m)
}

// ToSlice copies this view into a new slice.
func (m ViewMut[T]) ToSlice() []T {
	return ToSlice[T](m)
}

// Live returns whether this view may still be used.
func (m ViewMut[T]) Live() bool {
	return m.loan.Live()
}

// Release ends this view's loan. Releasing twice is a no-op.
func (m ViewMut[T]) Release() {
	m.loan.Release()
}
