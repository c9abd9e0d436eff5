/*
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package divrem

import (
	"math"
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSigned8Exhaustive(t *testing.T) {
	t.Parallel()
	for duo := -128; duo <= 127; duo++ {
		for div := -128; div <= 127; div++ {
			if div == 0 {
				continue
			}
			wantQ, wantR := int8(duo)/int8(div), int8(duo)%int8(div)
			gotQ, gotR := SDivRem8(int8(duo), int8(div))
			require.Equal(t, wantQ, gotQ, "duo=%d div=%d", duo, div)
			require.Equal(t, wantR, gotR, "duo=%d div=%d", duo, div)
		}
	}
}

func TestSigned16Sampled(t *testing.T) {
	t.Parallel()
	for i := 0; i < 50000; i++ {
		duo := int16(rand.Uint32())
		div := int16(rand.Uint32())
		if div == 0 {
			continue
		}
		gotQ, gotR := SDivRem16(duo, div)
		require.Equal(t, duo/div, gotQ)
		require.Equal(t, duo%div, gotR)
	}
}

func TestSigned32Sampled(t *testing.T) {
	t.Parallel()
	for i := 0; i < 50000; i++ {
		duo := int32(rand.Uint32())
		div := int32(rand.Uint32())
		if div == 0 {
			continue
		}
		gotQ, gotR := SDivRem32(duo, div)
		require.Equal(t, duo/div, gotQ)
		require.Equal(t, duo%div, gotR)
	}
}

func TestSigned64Sampled(t *testing.T) {
	t.Parallel()
	for i := 0; i < 50000; i++ {
		duo := int64(rand.Uint64())
		div := int64(rand.Uint64())
		if div == 0 {
			continue
		}
		gotQ, gotR := SDivRem64(duo, div)
		require.Equal(t, duo/div, gotQ)
		require.Equal(t, duo%div, gotR)
	}
}

func TestSigned128Sampled(t *testing.T) {
	t.Parallel()
	for i := 0; i < 20000; i++ {
		duo := i128{Hi: rand.Uint64(), Lo: rand.Uint64()}
		div := i128{Hi: rand.Uint64(), Lo: rand.Uint64()}
		if div.asU128().isZero() {
			continue
		}
		wantQ, wantR := bigQuoRemI128(duo, div)
		gotQ, gotR := SDivRem128(duo.toPublic(), div.toPublic())
		require.Equal(t, wantQ, gotQ.toInternal(), "duo=%+v div=%+v", duo, div)
		require.Equal(t, wantR, gotR.toInternal(), "duo=%+v div=%+v", duo, div)
	}
}

func bigQuoRemI128(duo, div i128) (quo, rem i128) {
	q, r := new(big.Int).QuoRem(i128ToBig(duo), i128ToBig(div), new(big.Int))
	return bigToI128(q), bigToI128(r)
}

// TestSignedMinDividedByMinusOne covers the headline signed edge case
// across every width: duo at the width's minimum value, div == -1, which
// wraps around to quo == duo, rem == 0 rather than overflowing, with zero
// special-casing anywhere in the production code.
func TestSignedMinDividedByMinusOne(t *testing.T) {
	t.Parallel()

	t.Run("width 8", func(t *testing.T) {
		quo, rem := SDivRem8(math.MinInt8, -1)
		require.Equal(t, int8(math.MinInt8), quo)
		require.Equal(t, int8(0), rem)
	})
	t.Run("width 16", func(t *testing.T) {
		quo, rem := SDivRem16(math.MinInt16, -1)
		require.Equal(t, int16(math.MinInt16), quo)
		require.Equal(t, int16(0), rem)
	})
	t.Run("width 32", func(t *testing.T) {
		quo, rem := SDivRem32(math.MinInt32, -1)
		require.Equal(t, int32(math.MinInt32), quo)
		require.Equal(t, int32(0), rem)
	})
	t.Run("width 64", func(t *testing.T) {
		quo, rem := SDivRem64(math.MinInt64, -1)
		require.Equal(t, int64(math.MinInt64), quo)
		require.Equal(t, int64(0), rem)
	})
	t.Run("width 128", func(t *testing.T) {
		minI128 := i128{Hi: 1 << 63, Lo: 0}
		minusOne := i128{Hi: ^uint64(0), Lo: ^uint64(0)}
		quo, rem := sdivrem128(minI128, minusOne, asymmetric128)
		require.Equal(t, minI128, quo)
		require.Equal(t, u128Zero, rem.asU128())
	})
}

func TestSignedDivisionByZeroPanics(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() { SDivRem8(1, 0) })
	require.Panics(t, func() { SDivRem16(1, 0) })
	require.Panics(t, func() { SDivRem32(1, 0) })
	require.Panics(t, func() { SDivRem64(1, 0) })
	require.Panics(t, func() { SDivRem128(NewInt128(0, 1), NewInt128(0, 0)) })
}

// TestSignedRemainderTakesDividendSign checks the truncated-toward-zero
// convention: the remainder's sign always matches duo's, never div's.
func TestSignedRemainderTakesDividendSign(t *testing.T) {
	t.Parallel()

	cases := []struct {
		duo, div, wantQ, wantR int32
	}{
		{7, 2, 3, 1},
		{-7, 2, -3, -1},
		{7, -2, -3, 1},
		{-7, -2, 3, -1},
	}
	for _, c := range cases {
		quo, rem := SDivRem32(c.duo, c.div)
		require.Equal(t, c.wantQ, quo, "duo=%d div=%d", c.duo, c.div)
		require.Equal(t, c.wantR, rem, "duo=%d div=%d", c.duo, c.div)
	}
}
