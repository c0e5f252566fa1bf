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

package seq_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bufbuild/byvalue/seq"
)

// ints is an unguarded backend.
type ints []int

func (s ints) Len() int         { return len(s) }
func (s ints) At(idx int) int   { return s[idx] }
func (s ints) SetAt(idx, v int) { s[idx] = v }

func count(n int) ints {
	s := make(ints, n)
	for i := range s {
		s[i] = i
	}
	return s
}

// guarded is a backend that tracks exclusive borrows.
type guarded struct {
	seq.Guard
	s ints
}

func newGuarded(n int) *guarded {
	return &guarded{s: count(n)}
}

func (g *guarded) Len() int         { return g.s.Len() }
func (g *guarded) At(idx int) int   { return g.s[idx] }
func (g *guarded) SetAt(idx, v int) { g.s[idx] = v }

func panicValue(f func()) (v any) {
	defer func() { v = recover() }()
	f()
	return nil
}

func borrowError(t *testing.T, f func()) *seq.BorrowError {
	t.Helper()
	err, ok := panicValue(f).(*seq.BorrowError)
	require.True(t, ok, "expected a *seq.BorrowError panic")
	return err
}

// collect is like [slices.Collect], but never returns nil.
func collect[T any](it iter.Seq[T]) []T {
	return append([]T{}, slices.Collect(it)...)
}
