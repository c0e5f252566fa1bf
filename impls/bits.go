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
	"github.com/bits-and-blooms/bitset"

	"github.com/bufbuild/byvalue/seq"
)

// Bits is a sequence of bools stored one bit each.
type Bits struct {
	guard seq.Guard
	set   *bitset.BitSet
	n     int
}

// NewBits returns n false bits.
func NewBits(n int) *Bits {
	return &Bits{set: bitset.New(uint(n)), n: n}
}

// BitsOf returns a Bits with the given values.
func BitsOf(values ...bool) *Bits {
	b := NewBits(len(values))
	for i, v := range values {
		b.set.SetTo(uint(i), v)
	}
	return b
}

// BorrowGuard implements [seq.Guarded].
func (b *Bits) BorrowGuard() *seq.Guard {
	return &b.guard
}

// Len implements [seq.Indexer].
func (b *Bits) Len() int {
	return b.n
}

// At implements [seq.Indexer].
func (b *Bits) At(idx int) bool {
	return b.set.Test(uint(idx))
}

// SetAt implements [seq.Setter].
func (b *Bits) SetAt(idx int, value bool) {
	b.set.SetTo(uint(idx), value)
}

// Count returns the number of true bits.
func (b *Bits) Count() int {
	return int(b.set.Count())
}

// BitSet returns the underlying bit set. Bits at or beyond Len() are always
// clear.
func (b *Bits) BitSet() *bitset.BitSet {
	return b.set
}
