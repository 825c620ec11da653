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
	"iter"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
)

// Chain is an ordered sequence of adjacent intervals partitioning a domain:
// no gaps, no overlaps, sorted. It is built once from strictly increasing
// breakpoints and is immutable afterwards.
//
// By default each breakpoint is the closed lower endpoint of the interval to
// its right and an unbounded last interval is appended, so breakpoints
// b1 < b2 < b3 produce [b1,b2) [b2,b3) [b3,+inf). Options flip the closed
// side, prepend an unbounded first interval, or drop the unbounded last one.
//
// Example:
//
//	chain, _ := NewChain([]int{0, 300, 500, 1000})
//	// [0,300) [300,500) [500,1000) [1000,+inf)
//	idx, _ := chain.Search(583) // 2
type Chain[E cmp.Ordered] struct {
	breakpoints []E
	intervals   []Interval[E]
	lowerClosed bool
	lowerInf    bool
	upperInf    bool
}

// ChainConfig configures how a chain is built from its breakpoints.
type ChainConfig struct {
	// LowerClosed determines which endpoint of each interval is closed:
	// true makes breakpoints the closed lower endpoint of the interval to
	// their right, false the closed upper endpoint of the interval to their
	// left.
	LowerClosed bool

	// AddLowerInfinite prepends an unbounded interval below the first
	// breakpoint.
	AddLowerInfinite bool

	// AddUpperInfinite appends an unbounded interval above the last
	// breakpoint.
	AddUpperInfinite bool
}

// ChainOption is a functional option for configuring chain construction.
type ChainOption func(*ChainConfig)

// defaultChainConfig returns the default chain configuration:
// lower-closed intervals, no unbounded first interval, an unbounded last
// interval.
func defaultChainConfig() ChainConfig {
	return ChainConfig{
		LowerClosed:      true,
		AddUpperInfinite: true,
	}
}

// WithLowerOpen builds lower-open/upper-closed intervals, so breakpoints
// close the interval to their left: (b1,b2] instead of [b1,b2).
func WithLowerOpen() ChainOption {
	return func(cfg *ChainConfig) {
		cfg.LowerClosed = false
	}
}

// WithLowerInfinite prepends an unbounded first interval, extending the
// chain below its first breakpoint.
func WithLowerInfinite() ChainOption {
	return func(cfg *ChainConfig) {
		cfg.AddLowerInfinite = true
	}
}

// WithoutUpperInfinite drops the unbounded last interval, ending the chain
// at its last breakpoint.
func WithoutUpperInfinite() ChainOption {
	return func(cfg *ChainConfig) {
		cfg.AddUpperInfinite = false
	}
}

// NewChain builds a chain from strictly increasing breakpoints.
// It fails with ErrEmptyChain when the configuration yields zero intervals
// and with ErrInvalidInterval when the breakpoints are not strictly
// increasing.
func NewChain[E cmp.Ordered](breakpoints []E, opts ...ChainOption) (*Chain[E], error) {
	cfg := defaultChainConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(breakpoints)
	if n == 0 || (n == 1 && !cfg.AddLowerInfinite && !cfg.AddUpperInfinite) {
		return nil, errors.Wrap(ErrEmptyChain, "breakpoints do not define any interval")
	}
	for i := 1; i < n; i++ {
		if cmp.Compare(breakpoints[i-1], breakpoints[i]) >= 0 {
			return nil, errors.Wrapf(ErrInvalidInterval,
				"breakpoints must be strictly increasing, got %v before %v",
				breakpoints[i-1], breakpoints[i])
		}
	}

	intervals := make([]Interval[E], 0, n+1)
	if cfg.AddLowerInfinite {
		if cfg.LowerClosed {
			intervals = append(intervals, UpperOpen(breakpoints[0]))
		} else {
			intervals = append(intervals, UpperClosed(breakpoints[0]))
		}
	}
	for i := 1; i < n; i++ {
		iv, err := Chainable(breakpoints[i-1], breakpoints[i], cfg.LowerClosed)
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, iv)
	}
	if cfg.AddUpperInfinite {
		if cfg.LowerClosed {
			intervals = append(intervals, LowerClosed(breakpoints[n-1]))
		} else {
			intervals = append(intervals, LowerOpen(breakpoints[n-1]))
		}
	}

	return &Chain[E]{
		breakpoints: slices.Clone(breakpoints),
		intervals:   intervals,
		lowerClosed: cfg.LowerClosed,
		lowerInf:    cfg.AddLowerInfinite,
		upperInf:    cfg.AddUpperInfinite,
	}, nil
}

// Len returns the number of intervals in the chain.
func (c *Chain[E]) Len() int {
	return len(c.intervals)
}

// At returns the interval at index i. It panics if i is out of bounds, like
// a slice index.
func (c *Chain[E]) At(i int) Interval[E] {
	return c.intervals[i]
}

// All returns an iterator over the chain's intervals in ascending order,
// paired with their indices.
func (c *Chain[E]) All() iter.Seq2[int, Interval[E]] {
	return func(yield func(int, Interval[E]) bool) {
		for i, iv := range c.intervals {
			if !yield(i, iv) {
				return
			}
		}
	}
}

// Breakpoints returns a copy of the breakpoints the chain was built from.
func (c *Chain[E]) Breakpoints() []E {
	return slices.Clone(c.breakpoints)
}

// IsLowerClosed returns true if the chain's breakpoints act as the closed
// lower endpoint of the interval to their right.
func (c *Chain[E]) IsLowerClosed() bool {
	return c.lowerClosed
}

// IsLowerInfinite returns true if the first interval is unbounded below.
func (c *Chain[E]) IsLowerInfinite() bool {
	return c.lowerInf
}

// IsUpperInfinite returns true if the last interval is unbounded above.
func (c *Chain[E]) IsUpperInfinite() bool {
	return c.upperInf
}

// TotalInterval returns the single interval spanning the whole chain, from
// the lower endpoint of the first interval to the upper endpoint of the
// last.
func (c *Chain[E]) TotalInterval() Interval[E] {
	return Interval[E]{
		lower: c.intervals[0].lower,
		upper: c.intervals[len(c.intervals)-1].upper,
	}
}

// Search returns the index of the interval containing the given value, using
// binary search over the chain. It fails with ErrOutOfRange when the value
// lies outside the chain's span.
func (c *Chain[E]) Search(value E) (int, error) {
	left, right := 0, len(c.intervals)-1
	for left <= right {
		idx := int(uint(left+right) >> 1)
		iv := c.intervals[idx]
		if iv.Contains(value) {
			return idx, nil
		}
		if iv.lower.CompareValue(value) > 0 {
			right = idx - 1
		} else {
			left = idx + 1
		}
	}
	return 0, errors.Wrapf(ErrOutOfRange, "%v is not covered by %s", value, c)
}

// IndexOf returns the index of the given interval in the chain, or false if
// the chain does not contain it.
func (c *Chain[E]) IndexOf(iv Interval[E]) (int, bool) {
	return slices.BinarySearchFunc(c.intervals, iv, Interval[E].Compare)
}

// Equal returns true if both chains consist of the same intervals in the
// same order.
func (c *Chain[E]) Equal(other *Chain[E]) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil {
		return false
	}
	return slices.Equal(c.intervals, other.intervals)
}

// String renders the chain as a bracketed, comma-separated list of its
// intervals, e.g. "[[0 .. 300), [300 .. +inf)]".
func (c *Chain[E]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, iv := range c.intervals {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(iv.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
