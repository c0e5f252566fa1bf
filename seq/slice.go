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

// Slice implements [Replacer][T] using an ordinary slice as the backing
// storage, and using the given functions to perform the conversion to and from
// the underlying raw values.
//
// The first argument of Wrap/Unwrap given is the index the value has/will have
// in the slice.
type Slice[T, E any] struct {
	Slice  []E
	Wrap   func(int, E) T
	Unwrap func(int, T) E
}

// NewSlice constructs a new [Slice].
//
// This method exists because Go currently will not infer type parameters of a
// type.
func NewSlice[T, E any](
	slice []E,
	wrap func(int, E) T,
	unwrap func(int, T) E,
) Slice[T, E] {
	return Slice[T, E]{slice, wrap, unwrap}
}

// NewFixedSlice constructs a new [Slice] whose SetAt method panics. This
// function is intended for cases where the [Slice] will immediately be turned
// into a [View].
func NewFixedSlice[T, E any](
	slice []E,
	wrap func(int, E) T,
) Slice[T, E] {
	return Slice[T, E]{slice, wrap, nil}
}

// Len implements [Indexer].
func (s Slice[T, _]) Len() int {
	return len(s.Slice)
}

// At implements [Indexer].
func (s Slice[T, _]) At(idx int) T {
	return s.Wrap(idx, s.Slice[idx])
}

// SetAt implements [Setter].
func (s Slice[T, _]) SetAt(idx int, value T) {
	if s.Unwrap == nil {
		panic("seq: called SetAt on a fixed Slice")
	}
	s.Slice[idx] = s.Unwrap(idx, value)
}

// ReplaceAt implements [Replacer].
func (s Slice[T, _]) ReplaceAt(idx int, value T) T {
	old := s.At(idx)
	s.SetAt(idx, value)
	return old
}
