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

// Package seq provides value-indexed sequences: collections whose elements
// are copied out (and optionally in) by index rather than referenced.
//
// A backend only needs to implement [Indexer] (and optionally [Setter] or
// [Replacer]). This package derives everything else from those primitives:
// checked access, bounds-checked subrange views ([View], [ViewMut]) that
// compose flatly against the original backend, and double-ended value
// iterators ([Iter], [IterMut]).
//
// Backends that embed a [Guard] additionally get fail-fast detection of
// overlapping mutable views.
package seq

import (
	"iter"

	"github.com/bufbuild/byvalue/internal/ext/iterx"
)

// Indexer is a type that can be indexed like a slice, yielding values.
type Indexer[T any] interface {
	// Len returns the length of this sequence. It must not change while a
	// view or iterator over the sequence is live.
	Len() int

	// At returns the element at the given index.
	//
	// This package only calls At with 0 <= idx < Len(), so implementations
	// need not check bounds.
	At(idx int) T
}

// Setter is an [Indexer] that can be mutated by overwriting already present
// values.
type Setter[T any] interface {
	Indexer[T]

	// SetAt sets the value of the element at the given index.
	//
	// As with At, this package only calls SetAt with in-bounds indices.
	SetAt(idx int, value T)
}

// Replacer is a [Setter] that can swap a value in and return the old one in
// a single operation.
type Replacer[T any] interface {
	Setter[T]

	// ReplaceAt sets the element at the given index and returns its previous
	// value.
	ReplaceAt(idx int, value T) T
}

// CheckIndex panics with a [*BoundsError] unless 0 <= idx < n.
func CheckIndex(idx, n int) {
	if idx < 0 || idx >= n {
		panic(&BoundsError{Index: idx, Len: n})
	}
}

// IsEmpty returns whether seq has no elements.
func IsEmpty[T any](seq Indexer[T]) bool {
	return seq.Len() == 0
}

// Get performs a bounds check and returns the value at idx.
//
// If the bounds check fails, returns the zero value and false.
func Get[T any](seq Indexer[T], idx int) (element T, ok bool) {
	if idx < 0 || idx >= seq.Len() {
		return element, false
	}
	return seq.At(idx), true
}

// Index is like [Get], but panics with a [*BoundsError] if idx is out of
// bounds.
func Index[T any](seq Indexer[T], idx int) T {
	CheckIndex(idx, seq.Len())
	return seq.At(idx)
}

// Set sets the value at idx, panicking with a [*BoundsError] if idx is out of
// bounds. Nothing is written when the check fails.
func Set[T any](seq Setter[T], idx int, value T) {
	CheckIndex(idx, seq.Len())
	seq.SetAt(idx, value)
}

// TrySet is like [Set], but returns false instead of panicking.
func TrySet[T any](seq Setter[T], idx int, value T) bool {
	if idx < 0 || idx >= seq.Len() {
		return false
	}
	seq.SetAt(idx, value)
	return true
}

// Replace sets the value at idx and returns the value previously there,
// panicking with a [*BoundsError] if idx is out of bounds.
//
// If seq is a [Replacer], this uses its ReplaceAt method.
func Replace[T any](seq Setter[T], idx int, value T) T {
	CheckIndex(idx, seq.Len())
	return replaceAt(seq, idx, value)
}

// TryReplace is like [Replace], but returns false instead of panicking.
func TryReplace[T any](seq Setter[T], idx int, value T) (old T, ok bool) {
	if idx < 0 || idx >= seq.Len() {
		return old, false
	}
	return replaceAt(seq, idx, value), true
}

func replaceAt[T any](seq Setter[T], idx int, value T) T {
	if r, ok := seq.(Replacer[T]); ok {
		return r.ReplaceAt(idx, value)
	}
	old := seq.At(idx)
	seq.SetAt(idx, value)
	return old
}

// All returns an iterator over the elements in seq, like [slices.All].
func All[T any](seq Indexer[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		n := seq.Len()
		for i := range n {
			if !yield(i, seq.At(i)) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements in seq in reverse,
// like [slices.Backward].
func Backward[T any](seq Indexer[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := seq.Len() - 1; i >= 0; i-- {
			if !yield(i, seq.At(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in seq, like [slices.Values].
func Values[T any](seq Indexer[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		n := seq.Len()
		for i := range n {
			if !yield(seq.At(i)) {
				return
			}
		}
	}
}

// Map is like [iterx.Map], applied to the values of seq.
func Map[T, U any](seq Indexer[T], f func(T) U) iter.Seq[U] {
	return iterx.Map(Values(seq), f)
}

// ToSlice copies an [Indexer] into a slice.
func ToSlice[T any](seq Indexer[T]) []T {
	out := make([]T, seq.Len())
	for i := range out {
		out[i] = seq.At(i)
	}
	return out
}
