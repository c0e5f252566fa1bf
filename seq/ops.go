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

// Copy copies up to n values from src, starting at index from, into dst,
// starting at index to. It returns the number of values copied, which is the
// minimum of n, src.Len()-from and dst.Len()-to.
//
// Panics with a [*BoundsError] if from > src.Len() or to > dst.Len(). If src
// and dst share a backend, the copied ranges must not overlap.
func Copy[T any](src Indexer[T], from int, dst Setter[T], to int, n int) int {
	if from < 0 || from > src.Len() {
		panic(&BoundsError{Index: from, Len: src.Len()})
	}
	if to < 0 || to > dst.Len() {
		panic(&BoundsError{Index: to, Len: dst.Len()})
	}

	n = max(0, min(n, src.Len()-from, dst.Len()-to))
	for i := range n {
		dst.SetAt(to+i, src.At(from+i))
	}
	return n
}

// Apply replaces every value of s with f applied to it.
func Apply[T any](s Setter[T], f func(T) T) {
	n := s.Len()
	for i := range n {
		s.SetAt(i, f(s.At(i)))
	}
}

// Chunks returns an iterator over consecutive views of s with size elements
// each, like [slices.Chunk]. The last view may be shorter.
//
// Panics if size is less than 1.
func Chunks[T any](s Indexer[T], size int) iter.Seq[View[T]] {
	if size < 1 {
		panic(fmt.Sprintf("seq: cannot chunk into pieces of size %d", size))
	}

	return func(yield func(View[T]) bool) {
		n := s.Len()
		for i := 0; i < n; i += size {
			if !yield(MustSub(s, Span(i, min(i+size, n)))) {
				return
			}
		}
	}
}

// ChunksMut is like [Chunks], but yields mutable views. Each view is
// released once the loop body it was yielded to returns.
func ChunksMut[T any](s Setter[T], size int) iter.Seq[ViewMut[T]] {
	if size < 1 {
		panic(fmt.Sprintf("seq: cannot chunk into pieces of size %d", size))
	}

	return func(yield func(ViewMut[T]) bool) {
		n := s.Len()
		for i := 0; i < n; i += size {
			chunk := MustSubMut(s, Span(i, min(i+size, n)))
			more := func() bool {
				defer chunk.Release()
				return yield(chunk)
			}()
			if !more {
				return
			}
		}
	}
}
