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

import "math/bits"

const mask16 = uint32(0xffff)

// wideCase64Fn is the W=64 counterpart of wideCase128Fn: trifecta64 and
// asymmetric64's wide regime (div doesn't fit in H=32 bits) reduces to a
// 96-bit-by-64-bit division with a quotient known to fit in 32 bits,
// exactly one size class below divFamily128/knuthDivWide128.
type wideCase64Fn func(carry, mid, lo uint32, divNormHi, divNormLo uint32) (quo uint32, remHi, remLo uint32)

func divFamily64(duo, div uint64, wideCase wideCase64Fn) (quo, rem uint64) {
	if div == 0 {
		divideByZero(64)
	}
	if duo < div {
		return 0, duo
	}

	divLZ := uint(bits.LeadingZeros64(div))

	switch {
	case divLZ >= 48:
		// Small-divisor regime: div fits in Q=16 bits.
		return divSmallDivisor64(duo, div)

	case divLZ >= 32:
		// Medium regime: div fits in H=32 bits but not Q=16. Same
		// two-step short division delegate64's medium case performs.
		return delegate64(duo, div)

	default:
		// Wide regime: div exceeds 32 bits. Normalize so div's top bit
		// is set, producing the (carry, duoHi32, duoLo32) triple of
		// 32-bit limbs the 96-by-64 division below expects.
		shift := divLZ
		divNorm := div << shift

		var carry uint32
		if shift != 0 {
			carry = uint32(duo >> (64 - shift))
		}
		duoNorm := duo << shift

		divNormHi, divNormLo := uint32(divNorm>>32), uint32(divNorm)
		duoHi, duoLo := uint32(duoNorm>>32), uint32(duoNorm)

		q, remHi, remLo := wideCase(carry, duoHi, duoLo, divNormHi, divNormLo)
		remNorm := uint64(remHi)<<32 | uint64(remLo)
		return uint64(q), remNorm >> shift
	}
}

// divSmallDivisor64 divides duo by a divisor known to fit in Q=16 bits,
// one 16-bit limb of duo at a time from the most significant down.
func divSmallDivisor64(duo, divVal uint64) (quo, rem uint64) {
	limbs := [4]uint64{
		duo >> 48,
		(duo >> 32) & uint64(mask16),
		(duo >> 16) & uint64(mask16),
		duo & uint64(mask16),
	}

	var qLimbs [4]uint64
	r := uint64(0)
	for i, limb := range limbs {
		combined := (r << 16) | limb
		qLimbs[i] = combined / divVal
		r = combined % divVal
	}

	quo = qLimbs[0]<<48 | qLimbs[1]<<32 | qLimbs[2]<<16 | qLimbs[3]
	return quo, r
}

// mul64By32 computes the 96-bit product of a 64-bit value (as 32-bit
// limbs) and a 32-bit value, returned as three 32-bit limbs, most
// significant first - the H=32 analogue of mul128By64.
func mul64By32(aHi, aLo, b uint32) (hi, mid, lo uint32) {
	var w, z, carry uint32
	w, lo = bits.Mul32(aLo, b)
	hi, z = bits.Mul32(aHi, b)

	mid, carry = bits.Add32(w, z, 0)
	hi, _ = bits.Add32(hi, 0, carry)

	return hi, mid, lo
}

// knuthDivWide64 is knuthDivWide128 one size class down: a 3-limb-by-
// 2-limb division (32-bit limbs) with a quotient guaranteed to fit in 32
// bits, using math/bits.Div32/Mul32 as the hardware collaborator in place
// of Div64/Mul64. See knuthDivWide128 for the full derivation; the two
// are structurally identical modulo limb width.
func knuthDivWide64(carry, mid, lo uint32, divNormHi, divNormLo uint32) (quo uint32, remHi, remLo uint32) {
	qHat, rHat := bits.Div32(carry, mid, divNormHi)

	for {
		mHi, mLo := bits.Mul32(qHat, divNormLo)
		if mHi < rHat || (mHi == rHat && mLo <= lo) {
			break
		}
		qHat--
		prevRHat := rHat
		rHat += divNormHi
		if rHat < prevRHat {
			break
		}
	}

	pHi, pMid, pLo := mul64By32(divNormHi, divNormLo, qHat)

	remLo, b1 := bits.Sub32(lo, pLo, 0)
	remMid, b2 := bits.Sub32(mid, pMid, b1)
	_, b3 := bits.Sub32(carry, pHi, b2)

	if b3 != 0 {
		qHat--
		var addCarry uint32
		remLo, addCarry = bits.Add32(remLo, divNormLo, 0)
		remMid, _ = bits.Add32(remMid, divNormHi, addCarry)
	}

	return qHat, remMid, remLo
}
