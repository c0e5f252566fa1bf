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
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/bufbuild/byvalue/internal/ext/bitsx"
	"github.com/bufbuild/byvalue/seq"
)

//go:generate go run github.com/bufbuild/byvalue/cmd/byvaluegen packed_seq.yaml

// Packed is a sequence of unsigned integers of a fixed bit width, packed
// into 64-bit words. Elements may straddle word boundaries.
type Packed[T constraints.Unsigned] struct {
	guard seq.Guard
	words []uint64
	width uint
	n     int
}

// NewPacked returns n zeros, each width bits wide.
//
// Panics if width is zero, or wider than T.
func NewPacked[T constraints.Unsigned](width uint, n int) *Packed[T] {
	if width == 0 || width > 64 || uint64(^T(0)) < bitsx.LowMask(width) {
		panic(fmt.Sprintf("impls: invalid width %d for %T", width, T(0)))
	}
	return &Packed[T]{
		words: make([]uint64, (uint(n)*width+63)/64),
		width: width,
		n:     n,
	}
}

// PackedOf is like [NewPacked], but initializes the elements with values.
func PackedOf[T constraints.Unsigned](width uint, values ...T) *Packed[T] {
	p := NewPacked[T](width, len(values))
	for i, v := range values {
		p.SetAt(i, v)
	}
	return p
}

// BorrowGuard implements [seq.Guarded].
func (p *Packed[T]) BorrowGuard() *seq.Guard {
	return &p.guard
}

// Width returns the width of each element, in bits.
func (p *Packed[T]) Width() uint {
	return p.width
}

// Len implements [seq.Indexer].
func (p *Packed[T]) Len() int {
	return p.n
}

// At implements [seq.Indexer].
func (p *Packed[T]) At(idx int) T {
	word, off := p.locate(idx)
	v := p.words[word] >> off
	if off+p.width > 64 {
		v |= p.words[word+1] << (64 - off)
	}
	return T(v & bitsx.LowMask(p.width))
}

// SetAt implements [seq.Setter].
//
// Panics if value does not fit in p.Width() bits.
func (p *Packed[T]) SetAt(idx int, value T) {
	mask := bitsx.LowMask(p.width)
	v := uint64(value)
	if v&^mask != 0 {
		panic(fmt.Sprintf("impls: %d does not fit in %d bits", v, p.width))
	}

	word, off := p.locate(idx)
	p.words[word] = p.words[word]&^(mask<<off) | v<<off
	if off+p.width > 64 {
		// The high bits spill into the next word.
		shift := 64 - off
		p.words[word+1] = p.words[word+1]&^(mask>>shift) | v>>shift
	}
}

// ReplaceAt implements [seq.Replacer].
func (p *Packed[T]) ReplaceAt(idx int, value T) T {
	old := p.At(idx)
	p.SetAt(idx, value)
	return old
}

// Words returns the words p packs its elements into.
func (p *Packed[T]) Words() []uint64 {
	return p.words
}

// locate returns the word idx starts in, and its bit offset in that word.
func (p *Packed[T]) locate(idx int) (word, off uint) {
	bit := uint(idx) * p.width
	return bit / 64, bit % 64
}
