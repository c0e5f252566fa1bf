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

package slicesx

import (
	"fmt"
	"iter"

	"github.com/bufbuild/byvalue/internal/ext/bitsx"
	"github.com/bufbuild/byvalue/internal/ext/iterx"
)

// Queue is a ring buffer.
//
// Values can be pushed and popped from either the front or the back of the
// buffer, making it usable as a double-ended queue. Elements are also
// addressable by their offset from the front.
//
// A zero [Queue] is empty and ready to use.
type Queue[E any] struct {
	buf        []E // Invariant: len(buf) is always a power of 2, or zero.
	start, end int
}

// NewQueue returns a [Queue] with the given capacity.
func NewQueue[E any](capacity int) *Queue[E] {
	if capacity == 0 {
		return &Queue[E]{}
	}
	return &Queue[E]{buf: make([]E, bufferLen(capacity))}
}

// Len returns the number of elements currently in the buffer.
func (r *Queue[E]) Len() int {
	if r.start > r.end {
		// The in-use part wraps around the end of the buffer.
		//
		// |xxx------xxxx|
		//     ^end  ^start
		return len(r.buf) - r.start + r.end
	}
	return r.end - r.start
}

// Cap returns the capacity of the buffer, i.e., the number of elements it can
// hold before being resized.
func (r *Queue[E]) Cap() int {
	if len(r.buf) == 0 {
		return 0
	}
	return len(r.buf) - 1
}

// Reserve ensures that the capacity is large enough to push an additional n
// elements.
func (r *Queue[E]) Reserve(n int) {
	if r.Len()+n <= r.Cap() {
		return
	}
	r.resize(bufferLen(r.Len() + n))
}

// At returns the element idx positions from the front of the queue.
//
// Panics if idx is out of bounds.
func (r *Queue[E]) At(idx int) E {
	return r.buf[r.slot(idx)]
}

// SetAt overwrites the element idx positions from the front of the queue.
//
// Panics if idx is out of bounds.
func (r *Queue[E]) SetAt(idx int, v E) {
	r.buf[r.slot(idx)] = v
}

// PushFront pushes elements to the front of the queue.
//
// After this call, v[0] is the front of the queue.
func (r *Queue[E]) PushFront(v ...E) {
	r.Reserve(len(v))

	end := r.start
	start := end - len(v)
	r.start = start & (len(r.buf) - 1)
	if start < 0 {
		// The new elements straddle the start of the buffer.
		n := copy(r.buf[r.start:], v)
		copy(r.buf, v[n:])
	} else {
		copy(r.buf[r.start:end], v)
	}
}

// PushBack pushes elements to the back of the queue.
func (r *Queue[E]) PushBack(v ...E) {
	r.Reserve(len(v))

	start := r.end
	end := start + len(v)
	r.end = end & (len(r.buf) - 1)
	if r.end < end {
		// The new elements straddle the end of the buffer.
		n := copy(r.buf[start:], v)
		copy(r.buf, v[n:])
	} else {
		copy(r.buf[start:r.end], v)
	}
}

// PopFront pops the element at the front of the queue.
func (r *Queue[E]) PopFront() (E, bool) {
	if r.start == r.end {
		var z E
		return z, false
	}
	v, _ := Take(r.buf, r.start)
	r.start = (r.start + 1) & (len(r.buf) - 1)
	return v, true
}

// PopBack pops the element at the back of the queue.
func (r *Queue[E]) PopBack() (E, bool) {
	if r.start == r.end {
		var z E
		return z, false
	}
	r.end = (r.end - 1) & (len(r.buf) - 1)
	return Take(r.buf, r.end)
}

// Values returns an iterator over the elements of the queue, front to back.
func (r *Queue[E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		if r.start <= r.end {
			for _, v := range r.buf[r.start:r.end] {
				if !yield(v) {
					return
				}
			}
			return
		}
		for _, v := range r.buf[r.start:] {
			if !yield(v) {
				return
			}
		}
		for _, v := range r.buf[:r.end] {
			if !yield(v) {
				return
			}
		}
	}
}

// Format implements [fmt.Formatter].
func (r *Queue[E]) Format(out fmt.State, verb rune) {
	fmt.Fprint(out, "[")
	for i, v := range iterx.Enumerate(r.Values()) {
		if i > 0 {
			fmt.Fprint(out, " ")
		}
		fmt.Fprintf(out, fmt.FormatString(out, verb), v)
	}
	fmt.Fprint(out, "]")
}

// Clear clears the queue, keeping its buffer.
func (r *Queue[_]) Clear() {
	clear(r.buf)
	r.start, r.end = 0, 0
}

// slot maps an offset from the front to a buffer index.
func (r *Queue[E]) slot(idx int) int {
	if idx < 0 || idx >= r.Len() {
		panic(fmt.Sprintf("slicesx: queue index out of range [%d] with length %d", idx, r.Len()))
	}
	return (r.start + idx) & (len(r.buf) - 1)
}

func (r *Queue[E]) resize(n int) {
	var count int
	old := r.buf
	r.buf = make([]E, n)
	if r.start > r.end {
		count = copy(r.buf, old[r.start:])
		count += copy(r.buf[count:], old[:r.end])
	} else {
		count = copy(r.buf, old[r.start:r.end])
	}
	r.start = 0
	r.end = count
}

// bufferLen returns the buffer length needed to hold capacity elements: one
// slot is kept empty, and the length must be a power of 2.
func bufferLen(capacity int) int {
	return int(bitsx.MakePowerOfTwo(uint(capacity + 1)))
}
