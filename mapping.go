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

	"github.com/cockroachdb/errors"
)

// Mapping associates one value with each interval of a chain, turning the
// chain into a total function from its span to the value type: classify a
// value into its interval, return the value assigned to it.
//
// Typical uses are pricing tiers, rating bands and accounting periods:
//
//	rates, _ := NewMappingFromBreakpoints(
//		[]int{0, 300, 500, 1000},
//		[]float64{0, .10, .15, .20},
//	)
//	rate, _ := rates.Map(583) // 0.15
//
// A mapping is built once and immutable afterwards.
type Mapping[E cmp.Ordered, V any] struct {
	chain  *Chain[E]
	values []V
}

// Entry pairs a breakpoint with the value assigned to the interval starting
// at it.
type Entry[E cmp.Ordered, V any] struct {
	Breakpoint E
	Value      V
}

// NewMapping creates a mapping from a chain and one value per interval.
// It fails with ErrLengthMismatch when the sequences differ in length.
func NewMapping[E cmp.Ordered, V any](chain *Chain[E], values []V) (*Mapping[E, V], error) {
	if chain == nil {
		return nil, errors.Wrap(ErrLengthMismatch, "no chain given")
	}
	if chain.Len() != len(values) {
		return nil, errors.Wrapf(ErrLengthMismatch,
			"chain has %d intervals but %d values were given", chain.Len(), len(values))
	}
	return &Mapping[E, V]{chain: chain, values: slices.Clone(values)}, nil
}

// NewMappingFromBreakpoints creates a mapping from breakpoints and one value
// per resulting interval. The chain is built with the default configuration,
// so n breakpoints produce n intervals.
func NewMappingFromBreakpoints[E cmp.Ordered, V any](breakpoints []E, values []V) (*Mapping[E, V], error) {
	chain, err := NewChain(breakpoints)
	if err != nil {
		return nil, err
	}
	return NewMapping(chain, values)
}

// NewMappingFromEntries creates a mapping from breakpoint/value pairs.
func NewMappingFromEntries[E cmp.Ordered, V any](entries []Entry[E, V]) (*Mapping[E, V], error) {
	breakpoints := make([]E, len(entries))
	values := make([]V, len(entries))
	for i, entry := range entries {
		breakpoints[i] = entry.Breakpoint
		values[i] = entry.Value
	}
	chain, err := NewChain(breakpoints)
	if err != nil {
		return nil, err
	}
	return NewMapping(chain, values)
}

// Map returns the value assigned to the interval containing the given
// value. It fails with ErrOutOfRange when the value lies outside the span of
// the mapping's chain.
func (m *Mapping[E, V]) Map(value E) (V, error) {
	idx, err := m.chain.Search(value)
	if err != nil {
		var zero V
		return zero, err
	}
	return m.values[idx], nil
}

// Get returns the value assigned to the given interval, or false if the
// interval is not part of the mapping's chain.
func (m *Mapping[E, V]) Get(key Interval[E]) (V, bool) {
	idx, ok := m.chain.IndexOf(key)
	if !ok {
		var zero V
		return zero, false
	}
	return m.values[idx], true
}

// Len returns the number of interval/value pairs in the mapping.
func (m *Mapping[E, V]) Len() int {
	return m.chain.Len()
}

// Chain returns the underlying interval chain.
func (m *Mapping[E, V]) Chain() *Chain[E] {
	return m.chain
}

// Keys returns an iterator over the mapping's intervals in ascending order.
func (m *Mapping[E, V]) Keys() iter.Seq[Interval[E]] {
	return func(yield func(Interval[E]) bool) {
		for _, iv := range m.chain.intervals {
			if !yield(iv) {
				return
			}
		}
	}
}

// Values returns an iterator over the mapping's values, ordered by their
// intervals.
func (m *Mapping[E, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.values {
			if !yield(v) {
				return
			}
		}
	}
}

// All returns an iterator over the mapping's interval/value pairs in
// ascending interval order.
func (m *Mapping[E, V]) All() iter.Seq2[Interval[E], V] {
	return func(yield func(Interval[E], V) bool) {
		for i, iv := range m.chain.intervals {
			if !yield(iv, m.values[i]) {
				return
			}
		}
	}
}

// MappingsEqual returns true if both mappings consist of the same intervals
// with the same values in the same order.
func MappingsEqual[E cmp.Ordered, V comparable](a, b *Mapping[E, V]) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.chain.Equal(b.chain) && slices.Equal(a.values, b.values)
}
