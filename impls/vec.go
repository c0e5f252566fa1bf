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

package impls

import "github.com/bufbuild/byvalue/seq"

// Vec is a sequence stored in a slice.
type Vec[T any] struct {
	guard seq.Guard
	elems []T
}

// NewVec returns a Vec of n zero values.
func NewVec[T any](n int) *Vec[T] {
	return &Vec[T]{elems: make([]T, n)}
}

// VecOf returns a Vec that stores its elements in elems, without copying.
func VecOf[T any](elems ...T) *Vec[T] {
	return &Vec[T]{elems: elems}
}

// BorrowGuard implements [seq.Guarded].
func (v *Vec[T]) BorrowGuard() *seq.Guard {
	return &v.guard
}

// Len implements [seq.Indexer].
func (v *Vec[T]) Len() int {
	return len(v.elems)
}

// At implements [seq.Indexer].
func (v *Vec[T]) At(idx int) T {
	return v.elems[idx]
}

// SetAt implements [seq.Setter].
func (v *Vec[T]) SetAt(idx int, value T) {
	v.elems[idx] = value
}

// ReplaceAt implements [seq.Replacer].
func (v *Vec[T]) ReplaceAt(idx int, value T) T {
	old := v.elems[idx]
	v.elems[idx] = value
	return old
}

// Append appends values to v.
//
// Panics with a [*seq.BorrowError] while any part of v is borrowed.
func (v *Vec[T]) Append(values ...T) {
	v.guard.AssertIdle("append to vec")
	v.elems = append(v.elems, values...)
}

// Slice returns the slice v stores its elements in.
func (v *Vec[T]) Slice() []T {
	return v.elems
}
