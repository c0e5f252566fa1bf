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

// Wrapper implements [Setter][T] using another Setter as the backing storage,
// and using the given functions to perform the conversion to and from the
// underlying raw values.
//
// A Wrapper shares the guard of S, if S is [Guarded], so mutable views of the
// wrapper conflict with mutable views of S itself.
type Wrapper[T, E any, S Setter[E]] struct {
	Slice  S
	Wrap   func(E) T
	Unwrap func(T) E
}

// Wrap is a helper for constructing a wrapper without needing to spell out the
// whole type.
func Wrap[T, E any, S Setter[E]](seq S, wrap func(E) T, unwrap func(T) E) Wrapper[T, E, S] {
	return Wrapper[T, E, S]{seq, wrap, unwrap}
}

// Len implements [Indexer].
func (s Wrapper[T, _, _]) Len() int {
	return s.Slice.Len()
}

// At implements [Indexer].
func (s Wrapper[T, _, _]) At(idx int) T {
	return s.Wrap(s.Slice.At(idx))
}

// SetAt implements [Setter].
func (s Wrapper[T, _, _]) SetAt(idx int, value T) {
	s.Slice.SetAt(idx, s.Unwrap(value))
}

// BorrowGuard implements [Guarded] by forwarding to the wrapped sequence, if
// it is guarded. Otherwise it returns a guard private to this call, which
// tracks nothing.
func (s Wrapper[T, _, _]) BorrowGuard() *Guard {
	if g, ok := any(s.Slice).(Guarded); ok {
		return g.BorrowGuard()
	}
	return new(Guard)
}
