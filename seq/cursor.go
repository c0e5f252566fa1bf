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

// Cursor is the position state of a double-ended iterator: the indices of the
// next element to yield from the front and one past the next element to yield
// from the back.
//
// Invariant: Front <= Back. The cursor is exhausted when Front == Back.
type Cursor struct {
	Front, Back int
}

// CursorOver returns a cursor over every index in iv.
func CursorOver(iv Interval) Cursor {
	return Cursor{iv.Start, iv.End}
}

// Len returns the number of indices remaining.
func (c *Cursor) Len() int {
	return c.Back - c.Front
}

// Next advances the front of the cursor, returning the index it passed over.
func (c *Cursor) Next() (int, bool) {
	if c.Front >= c.Back {
		return 0, false
	}
	c.Front++
	return c.Front - 1, true
}

// NextBack retreats the back of the cursor, returning the index it passed
// over.
func (c *Cursor) NextBack() (int, bool) {
	if c.Front >= c.Back {
		return 0, false
	}
	c.Back--
	return c.Back, true
}

// AdvanceBy skips up to n indices from the front, never crossing the back.
// Returns the number of indices actually skipped.
func (c *Cursor) AdvanceBy(n int) int {
	n = max(0, min(n, c.Len()))
	c.Front += n
	return n
}

// AdvanceBackBy skips up to n indices from the back, never crossing the
// front. Returns the number of indices actually skipped.
func (c *Cursor) AdvanceBackBy(n int) int {
	n = max(0, min(n, c.Len()))
	c.Back -= n
	return n
}

// Nth skips n indices from the front and then yields the next one. If fewer
// than n+1 remain, the cursor is exhausted and this returns false.
func (c *Cursor) Nth(n int) (int, bool) {
	c.AdvanceBy(n)
	return c.Next()
}

// NthBack is like [Cursor.Nth], but from the back.
func (c *Cursor) NthBack(n int) (int, bool) {
	c.AdvanceBackBy(n)
	return c.NextBack()
}
