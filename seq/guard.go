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

	"github.com/petermattis/goid"

	"github.com/bufbuild/byvalue/internal/interval"
)

// Guarded is implemented by backends that track exclusive borrows of their
// indices. Embedding a [Guard] implements it.
type Guarded interface {
	BorrowGuard() *Guard
}

// Guard records the live exclusive borrows of a backend, so that overlapping
// mutable views fail fast instead of silently aliasing.
//
// A zero Guard is ready to use. It must not be copied after first use, and it
// is not safe for concurrent use.
type Guard struct {
	// Endpoints are inclusive: a borrow of [a, b) is stored as [a, b-1].
	borrows interval.Map[int, *Borrow]
}

// Borrow is a live exclusive borrow of an interval, taken with
// [Guard.Acquire].
type Borrow struct {
	guard     *Guard
	iv        Interval
	goroutine int64
	live      bool
}

// BorrowGuard implements [Guarded].
func (g *Guard) BorrowGuard() *Guard {
	return g
}

// Acquire exclusively borrows iv.
//
// Panics with a [*BorrowError] if iv overlaps a live borrow. Empty intervals
// never conflict.
func (g *Guard) Acquire(iv Interval) *Borrow {
	b := &Borrow{guard: g, iv: iv, goroutine: goid.Get()}
	if iv.Empty() {
		return b
	}

	if overlap := g.borrows.Insert(iv.Start, iv.End-1, b); overlap.Value != nil {
		held := *overlap.Value
		panic(&BorrowError{
			Reason:    Overlapping,
			Op:        "borrow",
			Want:      iv,
			Held:      held.iv,
			Goroutine: held.goroutine,
		})
	}
	b.live = true
	return b
}

// CheckShared panics with a [*BorrowError] if iv overlaps a live exclusive
// borrow. It is called when read-only views and iterators are created, and
// again on each of their reads.
func (g *Guard) CheckShared(iv Interval) {
	if iv.Empty() {
		return
	}
	if overlap := g.borrows.Overlapping(iv.Start, iv.End-1); overlap.Value != nil {
		held := *overlap.Value
		panic(&BorrowError{
			Reason:    Overlapping,
			Op:        "read",
			Want:      iv,
			Held:      held.iv,
			Goroutine: held.goroutine,
		})
	}
}

// AssertIdle panics with a [*BorrowError] if any borrow is live. Backends
// call it before operations that change their length; op names the operation.
func (g *Guard) AssertIdle(op string) {
	for held := range g.borrows.Intervals() {
		b := *held.Value
		panic(&BorrowError{
			Reason:    Busy,
			Op:        op,
			Held:      b.iv,
			Goroutine: b.goroutine,
		})
	}
}

// Borrowed returns the number of live borrows.
func (g *Guard) Borrowed() int {
	return g.borrows.Len()
}

// Format implements [fmt.Formatter].
func (g *Guard) Format(s fmt.State, v rune) {
	fmt.Fprint(s, "{")
	first := true
	for held := range g.borrows.Intervals() {
		if !first {
			fmt.Fprint(s, ", ")
		}
		first = false
		fmt.Fprintf(s, "%v: %d", (*held.Value).iv, (*held.Value).goroutine)
	}
	fmt.Fprint(s, "}")
}

// Interval returns the borrowed interval.
func (b *Borrow) Interval() Interval {
	return b.iv
}

// Live returns whether this borrow has not been released.
//
// Borrows of empty intervals are never live, since they are not recorded.
func (b *Borrow) Live() bool {
	return b.live
}

// Release ends this borrow. Releasing twice is a no-op.
func (b *Borrow) Release() {
	if !b.live {
		return
	}
	b.live = false
	b.guard.borrows.Delete(b.iv.Start, b.iv.End-1)
}

// Loan is the access token held by a mutable view or iterator.
//
// A loan is either a root loan, taken with [Lend], which holds a [Borrow]
// when the backend is [Guarded], or a reborrow of another loan. While a
// reborrow is live its parent is frozen: it may be neither read nor written.
//
// The methods of a nil *Loan treat it as an untracked live loan.
type Loan struct {
	iv       Interval
	borrow   *Borrow
	parent   *Loan
	children int
	released bool
}

// Lend creates a root loan of iv, which must be an interval of base.
//
// If base is [Guarded], this acquires iv from its guard, panicking if iv is
// already exclusively borrowed.
func Lend(base any, iv Interval) *Loan {
	l := &Loan{iv: iv}
	if g, ok := base.(Guarded); ok {
		l.borrow = g.BorrowGuard().Acquire(iv)
	}
	return l
}

// CheckShared checks that iv of base may be read.
//
// If owner is not nil, the read happens through the holder of an exclusive
// loan, which is permitted while the loan is live and not frozen. Otherwise,
// this calls [Guard.CheckShared] if base is [Guarded].
func CheckShared(base any, iv Interval, owner *Loan) {
	if owner != nil {
		owner.CheckRead()
		return
	}
	if g, ok := base.(Guarded); ok {
		g.BorrowGuard().CheckShared(iv)
	}
}

// CheckAt is like [CheckShared] for the single element of base at idx.
//
// Read-only views call it on every read, so that a view created before an
// overlapping mutable view stops working until that view is released.
func CheckAt(base any, idx int, owner *Loan) {
	CheckShared(base, Interval{idx, idx + 1}, owner)
}

// Interval returns the interval this loan covers, in backend coordinates.
func (l *Loan) Interval() Interval {
	if l == nil {
		return Interval{}
	}
	return l.iv
}

// Live returns whether neither this loan nor any loan it was reborrowed from
// has been released.
func (l *Loan) Live() bool {
	for ; l != nil; l = l.parent {
		if l.released {
			return false
		}
	}
	return true
}

// Reborrow creates a child loan of iv, which must lie within this loan's
// interval. This loan is frozen until the child is released.
//
// Panics with a [*BorrowError] if this loan cannot currently be written.
func (l *Loan) Reborrow(iv Interval) *Loan {
	if l == nil {
		return nil
	}
	l.checkAccess("reborrow", iv)
	if iv.Start < l.iv.Start || iv.End > l.iv.End || iv.Start > iv.End {
		panic(fmt.Sprintf("seq: reborrow of %v outside of %v", iv, l.iv))
	}
	l.children++
	return &Loan{iv: iv, parent: l}
}

// CheckRead panics with a [*BorrowError] if this loan, or any loan it was
// reborrowed from, has been released, or if this loan is frozen by a live
// reborrow.
func (l *Loan) CheckRead() {
	if l != nil {
		l.checkAccess("read", l.iv)
	}
}

// CheckWrite panics with a [*BorrowError] if this loan has been released or is
// frozen by a live reborrow.
func (l *Loan) CheckWrite() {
	if l != nil {
		l.checkAccess("write", l.iv)
	}
}

func (l *Loan) checkAccess(op string, iv Interval) {
	switch {
	case !l.Live():
		panic(&BorrowError{Reason: Released, Op: op, Want: iv})
	case l.children > 0:
		panic(&BorrowError{Reason: Frozen, Op: op, Want: iv})
	}
}

// Release ends this loan, returning its interval to the guard or unfreezing
// its parent. Releasing twice is a no-op.
func (l *Loan) Release() {
	if l == nil || l.released {
		return
	}
	l.released = true
	if l.borrow != nil {
		l.borrow.Release()
	}
	if l.parent != nil {
		l.parent.children--
	}
}
