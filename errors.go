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

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidInterval is returned when two limits denote an empty or
	// inverted range, or when a limit is used on the wrong side.
	ErrInvalidInterval = errors.New("invalid interval")
	// ErrIncompatibleLimits is returned when a set operation cannot express
	// its result as a single interval.
	ErrIncompatibleLimits = errors.New("incompatible limits")
	// ErrEmptyChain is returned when a chain construction would yield zero
	// intervals.
	ErrEmptyChain = errors.New("empty interval chain")
	// ErrOutOfRange is returned when a lookup value lies outside the span of
	// a bounded chain.
	ErrOutOfRange = errors.New("value out of range")
	// ErrLengthMismatch is returned when a mapping is built from a chain and
	// a value sequence of different lengths.
	ErrLengthMismatch = errors.New("length mismatch")
)
