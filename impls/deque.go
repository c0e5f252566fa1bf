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

import (
	"iter"

	"github.com/bufbuild/byvalue/internal/ext/slicesx"
	"github.com/bufbuild/byvalue/seq"
)

// Deque is a double-ended queue. Its elements are indexed from the front.
//
// A zero Deque is empty and ready to use.
type Deque[T any] struct {
	guard seq.Guard
	queue slicesx.Queue[T]
}

// BorrowGuard implements [seq.Guarded].
func (d *Deque[T]) BorrowGuard() *seq.Guard {
	return &d.guard
}

// Len implements [seq.Indexer].
func (d *Deque[T]) Len() int {
	return d.queue.Len()
}

// At implements [seq.Indexer].
func (d *Deque[T]) At(idx int) T {
	return d.queue.At(idx)
}

// SetAt implements [seq.Setter].
func (d *Deque[T]) SetAt(idx int, value T) {
	d.queue.SetAt(idx, value)
}

// PushFront pushes values to the front of d. After this call, values[0] is
// at index 0.
//
// Panics with a [*seq.BorrowError] while any part of d is borrowed, since this
// shifts every index.
func (d *Deque[T]) PushFront(values ...T) {
	d.guard.AssertIdle("push to deque")
	d.queue.PushFront(values...)
}

// PushBack pushes values to the back of d.
//
// Panics with a [*seq.BorrowError] while any part of d is borrowed.
func (d *Deque[T]) PushBack(values ...T) {
	d.guard.AssertIdle("push to deque")
	d.queue.PushBack(values...)
}

// PopFront removes the element at the front of d.
//
// Panics with a [*seq.BorrowError] while any part of d is borrowed.
func (d *Deque[T]) PopFront() (T, bool) {
	d.guard.AssertIdle("pop from deque")
	return d.queue.PopFront()
}

// PopBack removes the element at the back of d.
//
// Panics with a [*seq.BorrowError] while any part of d is borrowed.
func (d *Deque[T]) PopBack() (T, bool) {
	d.guard.AssertIdle("pop from deque")
	return d.queue.PopBack()
}

// Values returns an iterator over the elements of d, front to back.
func (d *Deque[T]) Values() iter.Seq[T] {
	return d.queue.Values()
}
