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

// Package interval models contiguous subsets of totally ordered domains and
// classifies values into buckets without hand-written boundary comparisons.
//
// The package builds up in three layers:
//
//   - Interval: a convex subset of an ordered domain between two limits,
//     each open or closed, finite or infinite. Intervals support containment,
//     subset, overlap and adjacency tests as well as intersection, union and
//     difference where the result stays a single interval.
//
//   - Chain: an ordered, gapless, non-overlapping partition of a domain
//     built from a sorted breakpoint sequence, with binary-search lookup of
//     the interval containing a value.
//
//   - Mapping: a chain with one value per interval, i.e. a total function
//     from the chain's span to the value type.
//
// Element types are constrained to cmp.Ordered, so the total order the
// comparisons rely on is checked at compile time. All types are immutable
// values after construction; operations never mutate, so sharing across
// goroutines needs no locking.
//
// Classifying an order value into a discount tier:
//
//	discounts, err := interval.NewMappingFromBreakpoints(
//		[]int{0, 300, 500, 1000},
//		[]float64{0, .10, .15, .20},
//	)
//	if err != nil {
//		return err
//	}
//	rate, err := discounts.Map(583) // 0.15, from [500 .. 1000)
//
// Working with intervals directly:
//
//	tier, err := interval.Closed(0, 100) // [0 .. 100]
//	tier.Contains(74)                    // true
//	tier.Contains(-4)                    // false
//
// Errors are reported synchronously at construction or at the failing
// operation and are matched with errors.Is against the package's sentinel
// errors; no partially constructed value is ever exposed.
package interval
