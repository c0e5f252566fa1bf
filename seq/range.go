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

// Interval is a half-open interval of indices [Start, End).
//
// Intervals produced by this package satisfy 0 <= Start <= End <= n, where n
// is the length they were resolved against. Start == End is an empty interval
// at a valid position.
type Interval struct {
	Start, End int
}

// Len returns the number of indices in this interval.
func (iv Interval) Len() int {
	return iv.End - iv.Start
}

// Empty returns whether this interval contains no indices.
func (iv Interval) Empty() bool {
	return iv.Start == iv.End
}

// Contains returns whether idx lies in this interval.
func (iv Interval) Contains(idx int) bool {
	return iv.Start <= idx && idx < iv.End
}

// Compose translates local, an interval relative to the start of iv, into
// the coordinates iv itself is expressed in.
//
// local must lie within [0, iv.Len()].
func (iv Interval) Compose(local Interval) Interval {
	return Interval{iv.Start + local.Start, iv.Start + local.End}
}

// String implements [fmt.Stringer].
func (iv Interval) String() string {
	return fmt.Sprintf("[%d, %d)", iv.Start, iv.End)
}

type rangeKind uint8

const (
	rangeFull rangeKind = iota
	rangeFrom
	rangeTo
	rangeToInclusive
	rangeSpan
	rangeInclusive
)

// Range is a range expression: a description of a subrange that is resolved
// into an [Interval] once the length of the sequence it applies to is known.
//
// A zero Range is equivalent to [Full].
type Range struct {
	kind       rangeKind
	start, end int
}

// Full returns the range covering an entire sequence.
func Full() Range {
	return Range{kind: rangeFull}
}

// From returns the range [start, n).
func From(start int) Range {
	return Range{kind: rangeFrom, start: start}
}

// To returns the range [0, end).
func To(end int) Range {
	return Range{kind: rangeTo, end: end}
}

// ToInclusive returns the range [0, end].
func ToInclusive(end int) Range {
	return Range{kind: rangeToInclusive, end: end}
}

// Span returns the half-open range [start, end).
func Span(start, end int) Range {
	return Range{kind: rangeSpan, start: start, end: end}
}

// Inclusive returns the closed range [start, end].
func Inclusive(start, end int) Range {
	return Range{kind: rangeInclusive, start: start, end: end}
}

// Resolve converts this range into an interval over a sequence of length n.
//
// Returns false if the range is invalid or does not fit in n. Resolve never
// clamps.
func (r Range) Resolve(n int) (Interval, bool) {
	iv, kind := r.resolve(n)
	return iv, kind == 0
}

// MustResolve is like [Range.Resolve], but panics with a [*RangeError] on
// failure.
func (r Range) MustResolve(n int) Interval {
	iv, kind := r.resolve(n)
	if kind != 0 {
		panic(&RangeError{Range: r, Len: n, Kind: kind})
	}
	return iv
}

// Check returns a [*RangeError] describing why this range does not resolve
// against n, or nil if it does.
func (r Range) Check(n int) error {
	if _, kind := r.resolve(n); kind != 0 {
		return &RangeError{Range: r, Len: n, Kind: kind}
	}
	return nil
}

// Compose resolves this range against the length of base and translates the
// result into base's coordinates.
func (r Range) Compose(base Interval) (Interval, bool) {
	local, ok := r.Resolve(base.Len())
	if !ok {
		return Interval{}, false
	}
	return base.Compose(local), true
}

// MustCompose is like [Range.Compose], but panics with a [*RangeError] on
// failure.
func (r Range) MustCompose(base Interval) Interval {
	return base.Compose(r.MustResolve(base.Len()))
}

// String implements [fmt.Stringer].
func (r Range) String() string {
	switch r.kind {
	case rangeFrom:
		return fmt.Sprintf("[%d, len)", r.start)
	case rangeTo:
		return fmt.Sprintf("[0, %d)", r.end)
	case rangeToInclusive:
		return fmt.Sprintf("[0, %d]", r.end)
	case rangeSpan:
		return fmt.Sprintf("[%d, %d)", r.start, r.end)
	case rangeInclusive:
		return fmt.Sprintf("[%d, %d]", r.start, r.end)
	default:
		return "[0, len)"
	}
}

// resolve returns the resolved interval, or the reason resolution failed.
func (r Range) resolve(n int) (Interval, RangeErrorKind) {
	start, end := r.start, r.end
	switch r.kind {
	case rangeFull:
		return Interval{0, n}, 0
	case rangeFrom:
		end = n
	case rangeTo:
		start = 0
	case rangeToInclusive, rangeInclusive:
		if r.kind == rangeToInclusive {
			start = 0
		}
		if start < 0 || end < 0 || start > end || n == 0 {
			return Interval{}, Invalid
		}
		if end >= n {
			return Interval{}, OutOfRange
		}
		// end < n, so this cannot overflow.
		return Interval{start, end + 1}, 0
	}

	// Malformed spans are Invalid even when they are also out of range.
	if start < 0 || end < 0 || (r.kind == rangeSpan && start > end) {
		return Interval{}, Invalid
	}
	if start > n || end > n {
		return Interval{}, OutOfRange
	}
	return Interval{start, end}, 0
}
