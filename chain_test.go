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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustChain(t *testing.T, breakpoints []int, opts ...ChainOption) *Chain[int] {
	t.Helper()
	chain, err := NewChain(breakpoints, opts...)
	require.NoError(t, err)
	return chain
}

func TestNewChainDefaults(t *testing.T) {
	t.Parallel()

	chain := mustChain(t, []int{0, 300, 500, 1000})
	require.Equal(t, 4, chain.Len())
	assert.Equal(t, mustChainable(t, 0, 300, true), chain.At(0))
	assert.Equal(t, mustChainable(t, 300, 500, true), chain.At(1))
	assert.Equal(t, mustChainable(t, 500, 1000, true), chain.At(2))
	assert.Equal(t, LowerClosed(1000), chain.At(3))
	assert.True(t, chain.IsLowerClosed())
	assert.False(t, chain.IsLowerInfinite())
	assert.True(t, chain.IsUpperInfinite())
	assert.Equal(t, []int{0, 300, 500, 1000}, chain.Breakpoints())

	idx, err := chain.Search(412)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	idx, err = chain.Search(583)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
}

func TestNewChainEmpty(t *testing.T) {
	t.Parallel()

	_, err := NewChain[int](nil)
	assert.ErrorIs(t, err, ErrEmptyChain)

	_, err = NewChain([]int{}, WithLowerInfinite())
	assert.ErrorIs(t, err, ErrEmptyChain)

	_, err = NewChain([]int{5}, WithoutUpperInfinite())
	assert.ErrorIs(t, err, ErrEmptyChain)

	// One breakpoint still defines one interval per unbounded side.
	chain := mustChain(t, []int{5})
	require.Equal(t, 1, chain.Len())
	assert.Equal(t, LowerClosed(5), chain.At(0))

	chain = mustChain(t, []int{5}, WithLowerInfinite(), WithoutUpperInfinite())
	require.Equal(t, 1, chain.Len())
	assert.Equal(t, UpperOpen(5), chain.At(0))
}

func TestNewChainUnsortedBreakpoints(t *testing.T) {
	t.Parallel()

	_, err := NewChain([]int{0, 500, 300})
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = NewChain([]int{0, 300, 300})
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestNewChainOptions(t *testing.T) {
	t.Parallel()

	chain := mustChain(t, []int{0, 300}, WithLowerOpen(), WithLowerInfinite())
	require.Equal(t, 3, chain.Len())
	assert.Equal(t, UpperClosed(0), chain.At(0))
	assert.Equal(t, mustChainable(t, 0, 300, false), chain.At(1))
	assert.Equal(t, LowerOpen(300), chain.At(2))
	assert.True(t, chain.IsLowerInfinite())
	assert.Equal(t, Unbounded[int](), chain.TotalInterval())

	chain = mustChain(t, []int{0, 300}, WithoutUpperInfinite())
	require.Equal(t, 1, chain.Len())
	assert.Equal(t, mustChainable(t, 0, 300, true), chain.At(0))
	assert.Equal(t, mustChainable(t, 0, 300, true), chain.TotalInterval())
}

func TestChainPartitionInvariant(t *testing.T) {
	t.Parallel()

	configs := []struct {
		name string
		opts []ChainOption
	}{
		{"defaults", nil},
		{"lower open", []ChainOption{WithLowerOpen()}},
		{"lower infinite", []ChainOption{WithLowerInfinite()}},
		{"bounded", []ChainOption{WithoutUpperInfinite()}},
		{"all flags", []ChainOption{WithLowerOpen(), WithLowerInfinite(), WithoutUpperInfinite()}},
	}

	for _, tc := range configs {
		t.Run(tc.name, func(t *testing.T) {
			chain := mustChain(t, []int{0, 10, 20, 30, 40}, tc.opts...)

			for i := 0; i < chain.Len()-1; i++ {
				assert.True(t, chain.At(i).IsLowerAdjacent(chain.At(i+1)),
					"%s and %s are not adjacent", chain.At(i), chain.At(i+1))
				assert.True(t, chain.At(i).IsDisjoint(chain.At(i+1)))
			}

			total := chain.At(0)
			for i := 1; i < chain.Len(); i++ {
				merged, err := total.Union(chain.At(i))
				require.NoError(t, err)
				total = merged
			}
			assert.Equal(t, chain.TotalInterval(), total)
		})
	}
}

func TestChainSearchRoundTrip(t *testing.T) {
	t.Parallel()

	breakpoints := []int{0, 10, 20, 30, 40}
	for _, opts := range [][]ChainOption{
		nil,
		{WithLowerOpen()},
		{WithLowerInfinite()},
		{WithLowerOpen(), WithLowerInfinite(), WithoutUpperInfinite()},
	} {
		chain := mustChain(t, breakpoints, opts...)
		for i, iv := range chain.All() {
			for value := -50; value <= 90; value++ {
				if !iv.Contains(value) {
					continue
				}
				idx, err := chain.Search(value)
				require.NoError(t, err)
				assert.Equal(t, i, idx, "%d is in %s at index %d", value, iv, i)
			}
		}
	}
}

func TestChainSearchOutOfRange(t *testing.T) {
	t.Parallel()

	chain := mustChain(t, []int{0, 300, 500, 1000})
	_, err := chain.Search(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	idx, err := chain.Search(1500)
	require.NoError(t, err)
	assert.Equal(t, 3, idx)

	bounded := mustChain(t, []int{0, 300}, WithoutUpperInfinite())
	_, err = bounded.Search(300)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = bounded.Search(1500)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestChainIndexOf(t *testing.T) {
	t.Parallel()

	chain := mustChain(t, []int{0, 300, 500, 1000})
	for i, iv := range chain.All() {
		idx, ok := chain.IndexOf(iv)
		require.True(t, ok)
		assert.Equal(t, i, idx)
	}

	_, ok := chain.IndexOf(mustClosed(t, 0, 300))
	assert.False(t, ok)
	_, ok = chain.IndexOf(mustChainable(t, 300, 1000, true))
	assert.False(t, ok)
}

func TestChainEqual(t *testing.T) {
	t.Parallel()

	a := mustChain(t, []int{0, 300, 500})
	b := mustChain(t, []int{0, 300, 500})
	c := mustChain(t, []int{0, 300, 500}, WithLowerOpen())

	assert.True(t, a.Equal(b))
	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

func TestChainString(t *testing.T) {
	t.Parallel()

	chain := mustChain(t, []int{0, 300, 500, 1000})
	assert.Equal(t,
		"[[0 .. 300), [300 .. 500), [500 .. 1000), [1000 .. +inf)]",
		chain.String())
}
