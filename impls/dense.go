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
	"gonum.org/v1/gonum/mat"

	"github.com/bufbuild/byvalue/seq"
)

// Dense is a sequence of float64 stored in a dense vector.
type Dense struct {
	guard seq.Guard
	vec   *mat.VecDense // Nil when empty; gonum has no empty vectors.
}

// NewDense returns a Dense that stores its elements in data, without copying.
func NewDense(data []float64) *Dense {
	if len(data) == 0 {
		return new(Dense)
	}
	return &Dense{vec: mat.NewVecDense(len(data), data)}
}

// BorrowGuard implements [seq.Guarded].
func (d *Dense) BorrowGuard() *seq.Guard {
	return &d.guard
}

// Len implements [seq.Indexer].
func (d *Dense) Len() int {
	if d.vec == nil {
		return 0
	}
	return d.vec.Len()
}

// At implements [seq.Indexer].
func (d *Dense) At(idx int) float64 {
	return d.vec.AtVec(idx)
}

// SetAt implements [seq.Setter].
func (d *Dense) SetAt(idx int, value float64) {
	d.vec.SetVec(idx, value)
}

// Vector returns the underlying vector, or nil if d is empty.
func (d *Dense) Vector() *mat.VecDense {
	return d.vec
}
