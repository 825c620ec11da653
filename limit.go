// Copyright 2025 Contriboss
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package interval

import (
	"cmp"
	"fmt"
)

// Limit represents one endpoint of an interval. Limits can be finite (with a
// specific value), or infinite (unbounded).
//
// The `infinite` field uses sentinel values:
//   - limitNegInfinity (-1): represents -∞ (no lower limit)
//   - limitFinite (0): represents a specific value
//   - limitPosInfinity (1): represents +∞ (no upper limit)
//
// The `closed` field determines whether the limit includes its value itself.
// For example, the lower endpoint of [1, 2) has closed=true, while the upper
// endpoint has closed=false. Infinite limits are always open.
//
// Limit is a value type: two limits are equal iff they agree on side, value
// and closedness.
type Limit[E cmp.Ordered] struct {
	value    E
	lower    bool
	closed   bool
	infinite int
}

const (
	limitNegInfinity = -1
	limitFinite      = 0
	limitPosInfinity = 1
)

// LowerLimit creates a lower limit from a value.
func LowerLimit[E cmp.Ordered](value E, closed bool) Limit[E] {
	return Limit[E]{value: value, lower: true, closed: closed}
}

// UpperLimit creates an upper limit from a value.
func UpperLimit[E cmp.Ordered](value E, closed bool) Limit[E] {
	return Limit[E]{value: value, closed: closed}
}

// LowerClosedLimit creates a lower limit that includes its value.
func LowerClosedLimit[E cmp.Ordered](value E) Limit[E] {
	return LowerLimit(value, true)
}

// LowerOpenLimit creates a lower limit that excludes its value.
func LowerOpenLimit[E cmp.Ordered](value E) Limit[E] {
	return LowerLimit(value, false)
}

// UpperClosedLimit creates an upper limit that includes its value.
func UpperClosedLimit[E cmp.Ordered](value E) Limit[E] {
	return UpperLimit(value, true)
}

// UpperOpenLimit creates an upper limit that excludes its value.
func UpperOpenLimit[E cmp.Ordered](value E) Limit[E] {
	return UpperLimit(value, false)
}

// LowerInfiniteLimit creates a lower limit representing -∞.
// Infinite limits are always open.
func LowerInfiniteLimit[E cmp.Ordered]() Limit[E] {
	return Limit[E]{lower: true, infinite: limitNegInfinity}
}

// UpperInfiniteLimit creates an upper limit representing +∞.
// Infinite limits are always open.
func UpperInfiniteLimit[E cmp.Ordered]() Limit[E] {
	return Limit[E]{infinite: limitPosInfinity}
}

// IsLower returns true if this limit bounds an interval from below.
func (l Limit[E]) IsLower() bool {
	return l.lower
}

// IsUpper returns true if this limit bounds an interval from above.
func (l Limit[E]) IsUpper() bool {
	return !l.lower
}

// IsClosed returns true if the limit includes its value.
// Infinite limits are never closed.
func (l Limit[E]) IsClosed() bool {
	return l.closed
}

// IsOpen returns true if the limit excludes its value.
func (l Limit[E]) IsOpen() bool {
	return !l.closed
}

// IsFinite returns true if this limit carries a specific value.
func (l Limit[E]) IsFinite() bool {
	return l.infinite == limitFinite
}

// IsInfinite returns true if this limit represents -∞ or +∞.
func (l Limit[E]) IsInfinite() bool {
	return l.infinite != limitFinite
}

// Value returns the limiting value, or false if the limit is infinite.
func (l Limit[E]) Value() (E, bool) {
	if l.IsInfinite() {
		var zero E
		return zero, false
	}
	return l.value, true
}

// rank orders limits that share the same finite value:
// upper open < closed (either side) < lower open.
// A closed lower limit and a closed upper limit at the same value occupy the
// same position.
func (l Limit[E]) rank() int {
	if l.closed {
		return 0
	}
	if l.lower {
		return 1
	}
	return -1
}

// CompareLimits compares the positions of two limits.
// Returns negative if a < b, zero if equal, positive if a > b.
//
// The order is defined on abstract position, not on the lower/upper side
// label: at equal values a closed lower limit sorts before an open lower
// limit (it includes the point, so it starts earlier), while a closed upper
// limit sorts after an open upper limit (it ends later). A lower-infinite
// limit precedes every finite position, an upper-infinite limit follows.
func CompareLimits[E cmp.Ordered](a, b Limit[E]) int {
	switch {
	case a.infinite == limitNegInfinity && b.infinite == limitNegInfinity:
		return 0
	case a.infinite == limitNegInfinity:
		return -1
	case b.infinite == limitNegInfinity:
		return 1
	case a.infinite == limitPosInfinity && b.infinite == limitPosInfinity:
		return 0
	case a.infinite == limitPosInfinity:
		return 1
	case b.infinite == limitPosInfinity:
		return -1
	default:
		if c := cmp.Compare(a.value, b.value); c != 0 {
			return c
		}
		return cmp.Compare(a.rank(), b.rank())
	}
}

// AdjacentLimits returns true if a and b meet at a shared value with no gap
// and no overlap: one is an upper and the other a lower limit, their values
// are equal, and exactly one of them is closed. Infinite limits are never
// adjacent.
func AdjacentLimits[E cmp.Ordered](a, b Limit[E]) bool {
	if !a.IsFinite() || !b.IsFinite() {
		return false
	}
	if a.lower == b.lower {
		return false
	}
	if a.value != b.value {
		return false
	}
	return a.closed != b.closed
}

// Adjacent returns the limit facing this one across its value: the side and
// closedness are flipped so that the two limits partition the value between
// them. Returns false for infinite limits, which have no adjacent limit.
func (l Limit[E]) Adjacent() (Limit[E], bool) {
	if l.IsInfinite() {
		return Limit[E]{}, false
	}
	return Limit[E]{value: l.value, lower: !l.lower, closed: !l.closed}, true
}

// CompareValue compares the position of this limit to a bare value.
// The value acts as a closed point: a lower open limit at v sorts after v
// itself, an upper open limit at v sorts before it.
func (l Limit[E]) CompareValue(value E) int {
	switch l.infinite {
	case limitNegInfinity:
		return -1
	case limitPosInfinity:
		return 1
	}
	if c := cmp.Compare(l.value, value); c != 0 {
		return c
	}
	return l.rank()
}

// Admits returns true if the value does not exceed the limit: for a lower
// limit the value must not fall below it, for an upper limit not above it.
func (l Limit[E]) Admits(value E) bool {
	if l.lower {
		return l.CompareValue(value) <= 0
	}
	return l.CompareValue(value) >= 0
}

// String renders the limit with its interval bracket: "[v" or "(v" for lower
// limits, "v]" or "v)" for upper limits, "(-inf" and "+inf)" for infinite
// limits.
func (l Limit[E]) String() string {
	switch l.infinite {
	case limitNegInfinity:
		return "(-inf"
	case limitPosInfinity:
		return "+inf)"
	}
	if l.lower {
		if l.closed {
			return fmt.Sprintf("[%v", l.value)
		}
		return fmt.Sprintf("(%v", l.value)
	}
	if l.closed {
		return fmt.Sprintf("%v]", l.value)
	}
	return fmt.Sprintf("%v)", l.value)
}
