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

import "fmt"

// BoundsError is returned or panicked when an index is outside of a
// sequence.
type BoundsError struct {
	Index, Len int
}

// Error implements [error].
func (e *BoundsError) Error() string {
	return fmt.Sprintf("seq: index out of range [%d] with length %d", e.Index, e.Len)
}

// RangeErrorKind classifies a [RangeError].
type RangeErrorKind int

const (
	// OutOfRange means a bound of the range lies beyond the length it was
	// resolved against.
	OutOfRange RangeErrorKind = iota + 1
	// Invalid means the range is malformed regardless of length: its start
	// is after its end, a bound is negative, or it is an inclusive range
	// over an empty sequence.
	Invalid
)

// String implements [fmt.Stringer].
func (k RangeErrorKind) String() string {
	switch k {
	case OutOfRange:
		return "out of range"
	case Invalid:
		return "invalid"
	default:
		return fmt.Sprintf("RangeErrorKind(%d)", int(k))
	}
}

// RangeError is returned or panicked when a [Range] cannot be resolved
// against a length.
type RangeError struct {
	Range Range
	Len   int
	Kind  RangeErrorKind
}

// Error implements [error].
func (e *RangeError) Error() string {
	if e.Kind == Invalid {
		return fmt.Sprintf("seq: invalid range %v for length %d", e.Range, e.Len)
	}
	return fmt.Sprintf("seq: range %v out of range for length %d", e.Range, e.Len)
}

// BorrowReason classifies a [BorrowError].
type BorrowReason int

const (
	// Overlapping means the requested interval overlaps a live exclusive
	// borrow.
	Overlapping BorrowReason = iota + 1
	// Busy means a length-changing operation was attempted while a borrow
	// was live.
	Busy
	// Released means a view or iterator was used after it was released.
	Released
	// Frozen means a mutable view was used while a view reborrowed from it
	// was live.
	Frozen
	// Stale means an element handle was used after its iterator advanced.
	Stale
)

// BorrowError is panicked when an exclusive borrow would be violated.
type BorrowError struct {
	Reason BorrowReason
	Op     string   // The attempted operation, e.g. "borrow" or "read".
	Want   Interval // The interval the operation touches.

	// The conflicting live borrow and the goroutine that took it. Only set
	// for Overlapping and Busy.
	Held      Interval
	Goroutine int64
}

// Error implements [error].
func (e *BorrowError) Error() string {
	switch e.Reason {
	case Overlapping:
		return fmt.Sprintf("seq: cannot %s %v: %v is exclusively borrowed by goroutine %d",
			e.Op, e.Want, e.Held, e.Goroutine)
	case Busy:
		return fmt.Sprintf("seq: cannot %s: %v is exclusively borrowed by goroutine %d",
			e.Op, e.Held, e.Goroutine)
	case Released:
		return fmt.Sprintf("seq: cannot %s %v: borrow was released", e.Op, e.Want)
	case Frozen:
		return fmt.Sprintf("seq: cannot %s %v: borrow is frozen by a live reborrow", e.Op, e.Want)
	case Stale:
		return fmt.Sprintf("seq: cannot %s %v: handle outlived its iterator step", e.Op, e.Want)
	default:
		return fmt.Sprintf("seq: cannot %s %v", e.Op, e.Want)
	}
}
