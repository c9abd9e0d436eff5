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
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestAsymmetric16Strided checks every 7th 16-bit dividend against every
// divisor below 256.
func TestAsymmetric16Strided(t *testing.T) {
	t.Parallel()
	for duo := 0; duo <= 0xffff; duo += 7 {
		for div := 1; div <= 0xff; div++ {
			wantQ, wantR := uint16(duo)/uint16(div), uint16(duo)%uint16(div)
			gotQ, gotR := asymmetric(uint16(duo), uint16(div))
			require.Equal(t, wantQ, gotQ)
			require.Equal(t, wantR, gotR)
		}
	}
}

func TestAsymmetric64Sampled(t *testing.T) {
	t.Parallel()
	for i := 0; i < 200000; i++ {
		duo := rand.Uint64()
		div := rand.Uint64()
		if div == 0 {
			continue
		}
		gotQ, gotR := asymmetric64(duo, div)
		require.Equal(t, duo/div, gotQ)
		require.Equal(t, duo%div, gotR)
	}
}

func TestAsymmetric128Sampled(t *testing.T) {
	t.Parallel()
	for i := 0; i < 50000; i++ {
		duo := u128{Hi: rand.Uint64(), Lo: rand.Uint64()}
		div := u128{Hi: rand.Uint64(), Lo: rand.Uint64()}
		if div.isZero() {
			continue
		}
		wantQ, wantR := bigDivModU128(duo, div)
		gotQ, gotR := asymmetric128(duo, div)
		require.Equal(t, wantQ, gotQ, "duo=%+v div=%+v", duo, div)
		require.Equal(t, wantR, gotR, "duo=%+v div=%+v", duo, div)
	}
}

// TestAsymmetric128EqualsTrifecta128 documents the wide-regime unification
// recorded in DESIGN.md: since math/bits offers no distinct symmetric
// H-by-H-only divider, the two algorithms agree on every input at W=128,
// not just most of them.
func TestAsymmetric128EqualsTrifecta128(t *testing.T) {
	t.Parallel()
	for i := 0; i < 20000; i++ {
		duo := u128{Hi: rand.Uint64(), Lo: rand.Uint64()}
		div := u128{Hi: rand.Uint64(), Lo: rand.Uint64()}
		if div.isZero() {
			continue
		}
		tq, tr := trifecta128(duo, div)
		aq, ar := asymmetric128(duo, div)
		require.Equal(t, tq, aq)
		require.Equal(t, tr, ar)
	}
}
