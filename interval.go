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

	"github.com/cockroachdb/errors"
)

// Interval represents a convex subset of an ordered domain between a lower
// and an upper limit. Either limit may be infinite.
//
// Examples:
//   - [0, 100] contains every value from 0 to 100 inclusive
//   - [0, 300) contains 0 but not 300
//   - (100, ∞) contains every value above 100
//
// Intervals are immutable values; all operations are pure. Use the
// constructors rather than the zero value, which denotes an empty range.
type Interval[E cmp.Ordered] struct {
	lower Limit[E]
	upper Limit[E]
}

// New creates an interval from a lower and an upper limit.
// It fails with ErrInvalidInterval when a limit is given for the wrong side
// or when the limits denote an empty or inverted range, such as equal values
// with both sides open.
func New[E cmp.Ordered](lower, upper Limit[E]) (Interval[E], error) {
	if lower.IsUpper() {
		return Interval[E]{}, errors.Wrap(ErrInvalidInterval, "given lower limit is an upper limit")
	}
	if upper.IsLower() {
		return Interval[E]{}, errors.Wrap(ErrInvalidInterval, "given upper limit is a lower limit")
	}
	if CompareLimits(lower, upper) > 0 {
		return Interval[E]{}, errors.Wrapf(ErrInvalidInterval,
			"lower limit %s exceeds upper limit %s", lower, upper)
	}
	return Interval[E]{lower: lower, upper: upper}, nil
}

// Closed creates the interval [lower, upper].
func Closed[E cmp.Ordered](lower, upper E) (Interval[E], error) {
	return New(LowerClosedLimit(lower), UpperClosedLimit(upper))
}

// OpenBounded creates the interval (lower, upper).
func OpenBounded[E cmp.Ordered](lower, upper E) (Interval[E], error) {
	return New(LowerOpenLimit(lower), UpperOpenLimit(upper))
}

// Chainable creates a half-open bounded interval: [lower, upper) when
// lowerClosed is true, (lower, upper] otherwise. Chains are sequences of
// such intervals.
func Chainable[E cmp.Ordered](lower, upper E, lowerClosed bool) (Interval[E], error) {
	if lowerClosed {
		return New(LowerClosedLimit(lower), UpperOpenLimit(upper))
	}
	return New(LowerOpenLimit(lower), UpperClosedLimit(upper))
}

// LowerClosed creates the upper-unbounded interval [lower, ∞).
func LowerClosed[E cmp.Ordered](lower E) Interval[E] {
	return Interval[E]{lower: LowerClosedLimit(lower), upper: UpperInfiniteLimit[E]()}
}

// LowerOpen creates the upper-unbounded interval (lower, ∞).
func LowerOpen[E cmp.Ordered](lower E) Interval[E] {
	return Interval[E]{lower: LowerOpenLimit(lower), upper: UpperInfiniteLimit[E]()}
}

// UpperClosed creates the lower-unbounded interval (-∞, upper].
func UpperClosed[E cmp.Ordered](upper E) Interval[E] {
	return Interval[E]{lower: LowerInfiniteLimit[E](), upper: UpperClosedLimit(upper)}
}

// UpperOpen creates the lower-unbounded interval (-∞, upper).
func UpperOpen[E cmp.Ordered](upper E) Interval[E] {
	return Interval[E]{lower: LowerInfiniteLimit[E](), upper: UpperOpenLimit(upper)}
}

// Unbounded creates the interval (-∞, ∞) covering the whole domain.
func Unbounded[E cmp.Ordered]() Interval[E] {
	return Interval[E]{lower: LowerInfiniteLimit[E](), upper: UpperInfiniteLimit[E]()}
}

// LowerLimit returns the lower endpoint of the interval.
func (iv Interval[E]) LowerLimit() Limit[E] {
	return iv.lower
}

// UpperLimit returns the upper endpoint of the interval.
func (iv Interval[E]) UpperLimit() Limit[E] {
	return iv.upper
}

// Contains returns true if the given value falls within this interval.
func (iv Interval[E]) Contains(value E) bool {
	return iv.lower.Admits(value) && iv.upper.Admits(value)
}

// IsLowerBounded returns true if the lower endpoint is finite.
func (iv Interval[E]) IsLowerBounded() bool {
	return iv.lower.IsFinite()
}

// IsUpperBounded returns true if the upper endpoint is finite.
func (iv Interval[E]) IsUpperBounded() bool {
	return iv.upper.IsFinite()
}

// IsBounded returns true if both endpoints are finite.
func (iv Interval[E]) IsBounded() bool {
	return iv.IsLowerBounded() && iv.IsUpperBounded()
}

// IsUnbounded returns true if at least one endpoint is infinite.
func (iv Interval[E]) IsUnbounded() bool {
	return !iv.IsBounded()
}

// IsLowerClosed returns true if the lower endpoint includes its value.
func (iv Interval[E]) IsLowerClosed() bool {
	return iv.lower.IsClosed()
}

// IsUpperClosed returns true if the upper endpoint includes its value.
func (iv Interval[E]) IsUpperClosed() bool {
	return iv.upper.IsClosed()
}

// IsClosed returns true if both endpoints include their values.
func (iv Interval[E]) IsClosed() bool {
	return iv.IsLowerClosed() && iv.IsUpperClosed()
}

// IsLowerOpen returns true if the lower endpoint excludes its value.
func (iv Interval[E]) IsLowerOpen() bool {
	return iv.lower.IsOpen()
}

// IsUpperOpen returns true if the upper endpoint excludes its value.
func (iv Interval[E]) IsUpperOpen() bool {
	return iv.upper.IsOpen()
}

// IsOpen returns true if at least one endpoint excludes its value.
func (iv Interval[E]) IsOpen() bool {
	return iv.IsLowerOpen() || iv.IsUpperOpen()
}

// Compare orders intervals by their lower limits, tie-broken by their upper
// limits. Chains rely on this order to keep their sequences sorted.
func (iv Interval[E]) Compare(other Interval[E]) int {
	if c := CompareLimits(iv.lower, other.lower); c != 0 {
		return c
	}
	return CompareLimits(iv.upper, other.upper)
}

// IsSubsetOf returns true if every value contained in this interval is also
// contained in other. An interval is a subset of itself.
func (iv Interval[E]) IsSubsetOf(other Interval[E]) bool {
	return CompareLimits(other.lower, iv.lower) <= 0 &&
		CompareLimits(iv.upper, other.upper) <= 0
}

// IsDisjoint returns true if this interval has no values in common with
// other.
func (iv Interval[E]) IsDisjoint(other Interval[E]) bool {
	return CompareLimits(iv.lower, other.upper) > 0 ||
		CompareLimits(iv.upper, other.lower) < 0
}

// Overlaps returns true if this interval has at least one value in common
// with other.
func (iv Interval[E]) Overlaps(other Interval[E]) bool {
	return !iv.IsDisjoint(other)
}

// IsLowerAdjacent returns true if this interval ends exactly where other
// begins, with the shared value belonging to exactly one of them.
func (iv Interval[E]) IsLowerAdjacent(other Interval[E]) bool {
	return AdjacentLimits(iv.upper, other.lower)
}

// IsUpperAdjacent returns true if this interval begins exactly where other
// ends, with the shared value belonging to exactly one of them.
func (iv Interval[E]) IsUpperAdjacent(other Interval[E]) bool {
	return AdjacentLimits(iv.lower, other.upper)
}

// IsAdjacent returns true if the two intervals meet at a shared endpoint
// with no gap and no overlap. Adjacency is symmetric.
func (iv Interval[E]) IsAdjacent(other Interval[E]) bool {
	return iv.IsLowerAdjacent(other) || iv.IsUpperAdjacent(other)
}

// Intersection returns the interval of values contained in both operands.
// It fails with ErrIncompatibleLimits when the operands are disjoint.
func (iv Interval[E]) Intersection(other Interval[E]) (Interval[E], error) {
	if iv.IsDisjoint(other) {
		return Interval[E]{}, errors.Wrapf(ErrIncompatibleLimits,
			"%s and %s are disjoint, intersection is not an interval", iv, other)
	}
	return New(
		max(iv.lower, other.lower, CompareLimits),
		min(iv.upper, other.upper, CompareLimits),
	)
}

// Union returns the interval of values contained in either operand.
// It is only defined when the operands overlap or are adjacent; otherwise it
// fails with ErrIncompatibleLimits, since the result would not be convex.
func (iv Interval[E]) Union(other Interval[E]) (Interval[E], error) {
	if !iv.Overlaps(other) && !iv.IsAdjacent(other) {
		return Interval[E]{}, errors.Wrapf(ErrIncompatibleLimits,
			"%s and %s are disjoint and not adjacent, union is not an interval", iv, other)
	}
	return New(
		min(iv.lower, other.lower, CompareLimits),
		max(iv.upper, other.upper, CompareLimits),
	)
}

// Difference returns the interval of values contained in this interval but
// not in other. It is only defined when the result remains a single convex
// interval, i.e. when other is subtracted from one end; otherwise it fails
// with ErrIncompatibleLimits. Subtracting a disjoint interval returns this
// interval unchanged.
func (iv Interval[E]) Difference(other Interval[E]) (Interval[E], error) {
	if CompareLimits(iv.lower, other.lower) >= 0 {
		if CompareLimits(iv.upper, other.upper) <= 0 {
			return Interval[E]{}, errors.Wrapf(ErrIncompatibleLimits,
				"%s is a subset of %s, difference is empty", iv, other)
		}
		// other covers the lower end of iv; cut below its upper limit.
		adjacent, _ := other.upper.Adjacent()
		return New(max(iv.lower, adjacent, CompareLimits), iv.upper)
	}
	if CompareLimits(iv.upper, other.upper) <= 0 {
		// other covers the upper end of iv; cut above its lower limit.
		adjacent, _ := other.lower.Adjacent()
		return New(iv.lower, min(iv.upper, adjacent, CompareLimits))
	}
	return Interval[E]{}, errors.Wrapf(ErrIncompatibleLimits,
		"%s is a subset of %s, difference is not an interval", other, iv)
}

// min returns the minimum of two values using a comparison function
func min[T any](a, b T, compare func(T, T) int) T {
	if compare(a, b) <= 0 {
		return a
	}
	return b
}

// max returns the maximum of two values using a comparison function
func max[T any](a, b T, compare func(T, T) int) T {
	if compare(a, b) >= 0 {
		return a
	}
	return b
}

// String renders the interval as "<lower> .. <upper>", using "[" / "]" for
// closed and "(" / ")" for open endpoints, with "-inf" and "+inf" for
// infinite ones. For example "[0 .. 300)" or "(-inf .. +inf)".
func (iv Interval[E]) String() string {
	return fmt.Sprintf("%s .. %s", iv.lower, iv.upper)
}
