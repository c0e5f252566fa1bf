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
	"fmt"
	"testing"

	"github.com/petermattis/goid"
	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/byvalue/seq"
)

func TestGuard(t *testing.T) {
	t.Parallel()

	var g seq.Guard
	a := g.Acquire(seq.Interval{Start: 0, End: 2})
	b := g.Acquire(seq.Interval{Start: 4, End: 6})
	assert.True(t, a.Live())
	assert.Equal(t, 2, g.Borrowed())

	id := goid.Get()
	assert.Equal(t, fmt.Sprintf("{[0, 2): %d, [4, 6): %d}", id, id), fmt.Sprint(&g))

	err := borrowError(t, func() { g.Acquire(seq.Interval{Start: 1, End: 5}) })
	assert.Equal(t, seq.Interval{Start: 0, End: 2}, err.Held)
	assert.Equal(t, id, err.Goroutine)
	assert.Equal(t,
		fmt.Sprintf("seq: cannot borrow [1, 5): [0, 2) is exclusively borrowed by goroutine %d", id),
		err.Error())

	g.CheckShared(seq.Interval{Start: 2, End: 4})
	borrowError(t, func() { g.CheckShared(seq.Interval{Start: 5, End: 7}) })

	a.Release()
	a.Release()
	assert.False(t, a.Live())
	assert.Equal(t, seq.Interval{Start: 0, End: 2}, a.Interval())
	g.Acquire(seq.Interval{Start: 1, End: 3}).Release()

	b.Release()
	assert.Equal(t, 0, g.Borrowed())
	assert.False(t, g.Acquire(seq.Interval{Start: 3, End: 3}).Live())
}

func TestLoan(t *testing.T) {
	t.Parallel()

	var nilLoan *seq.Loan
	assert.True(t, nilLoan.Live())
	assert.Nil(t, nilLoan.Reborrow(seq.Interval{}))
	nilLoan.CheckRead()
	nilLoan.CheckWrite()
	nilLoan.Release()

	l := seq.Lend(count(4), seq.Interval{Start: 0, End: 4})
	assert.Equal(t, seq.Interval{Start: 0, End: 4}, l.Interval())
	assert.Panics(t, func() { l.Reborrow(seq.Interval{Start: 2, End: 5}) })

	child := l.Reborrow(seq.Interval{Start: 1, End: 2})
	err := borrowError(t, l.CheckWrite)
	assert.EqualError(t, err, "seq: cannot write [0, 4): borrow is frozen by a live reborrow")
	err = borrowError(t, l.CheckRead)
	assert.Equal(t, seq.Frozen, err.Reason)
	child.CheckRead()

	child.Release()
	l.CheckWrite()
	l.Release()
	err = borrowError(t, l.CheckWrite)
	assert.Equal(t, seq.Released, err.Reason)
}
