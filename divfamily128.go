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

const mask32 = uint64(0xffffffff)

// wideCase128Fn is the shape trifecta128 and asymmetric128's wide regime
// (div.leadingZeros() < 64, i.e. neither operand fits in 64 bits) reduces
// to once the dividend is normalized: a 192-bit-by-128-bit ("3 by 2")
// division. carry is the
// limb normalization shifts out of duo's top; duoHi/duoLo are what remains
// of duo after the same shift. divNorm has its top bit set.
type wideCase128Fn func(carry, duoHi, duoLo uint64, divNorm u128) (quo, rem u128)

func divFamily128(duo, div u128, wideCase wideCase128Fn) (quo, rem u128) {
	if div.isZero() {
		divideByZero(128)
	}
	if duo.ult(div) {
		return u128Zero, duo
	}

	divLZ := div.leadingZeros()

	switch {
	case divLZ >= 96:
		// Small-divisor regime: div fits in Q=32 bits. Schoolbook
		// division, one 32-bit limb of duo at a time, high to low.
		return divSmallDivisor128(duo, div.Lo)

	case divLZ >= 64:
		// Medium regime: div fits in H=64 bits but not Q=32. Same
		// two-step short division delegate128's case 4 already does.
		return delegate128(duo, div)

	default:
		// Wide regime: both operands exceed 64 bits. Normalize so
		// div's top bit is set, producing the (carry, duoHi, duoLo)
		// triple the 3-by-2 division below expects.
		shift := divLZ
		divNorm := div.shl(shift)

		var carry uint64
		if shift != 0 {
			carry = duo.Hi >> (64 - shift)
		}
		duoNorm := duo.shl(shift)

		quoNorm, remNorm := wideCase(carry, duoNorm.Hi, duoNorm.Lo, divNorm)
		return quoNorm, remNorm.shr(shift)
	}
}

// divSmallDivisor128 divides a 128-bit dividend by a divisor known to fit
// in 32 bits, one 32-bit limb at a time from the most significant down.
// The invariant r < divVal before each step guarantees every limb of the
// quotient fits in 32 bits, the same invariant ordinary long division by
// a single digit relies on.
func divSmallDivisor128(duo u128, divVal uint64) (quo u128, rem u128) {
	limbs := [4]uint64{
		duo.Hi >> 32,
		duo.Hi & mask32,
		duo.Lo >> 32,
		duo.Lo & mask32,
	}

	var qLimbs [4]uint64
	r := uint64(0)
	for i, limb := range limbs {
		combined := (r << 32) | limb
		qLimbs[i] = combined / divVal
		r = combined % divVal
	}

	quo = u128{
		Hi: (qLimbs[0] << 32) | qLimbs[1],
		Lo: (qLimbs[2] << 32) | qLimbs[3],
	}
	return quo, u128{0, r}
}

// mul128By64 computes the 192-bit product of a 128-bit value and a 64-bit
// value as three 64-bit limbs, most significant first.
func mul128By64(a u128, b uint64) (hi, mid, lo uint64) {
	var w, z, carry uint64
	w, lo = bits.Mul64(a.Lo, b)
	hi, z = bits.Mul64(a.Hi, b)

	mid, carry = bits.Add64(w, z, 0)
	// Can't overflow: that would mean a 128x64 multiply overflowed 192
	// bits, which is impossible.
	hi, _ = bits.Add64(hi, 0, carry)

	return hi, mid, lo
}

// knuthDivWide128 is Knuth's Algorithm D (TAOCP vol.2, 4.3.1) specialized
// to a 3-limb-by-2-limb division whose quotient is known in advance to
// fit a single 64-bit digit: divFamily128's carry < divNorm.Hi precondition
// is exactly what keeps the true quotient duo/div under 2^64 once div
// itself is at least 2^64 (the wide regime's own definition). Both
// trifecta128 and asymmetric128 reduce their wide regime to this.
//
// The quotient digit is first estimated from the leading 128 bits
// (carry:mid) over divNorm.Hi alone - math/bits.Div64 being the only
// primitive Go exposes for that - then refined by the classic two-term
// check of qHat*divNorm.Lo against rHat:lo (at most two decrements, per
// Knuth's proof), the
// same correction loop shape Go's own math/big uses for its multi-word
// division (nat.divLarge's qhat/rhat loop). A final multiply-and-subtract
// against the full divNorm confirms the digit and recovers the
// remainder, with a single add-back should the estimate still have been
// one too high.
//
// It is the one place this package genuinely cannot distinguish a
// "symmetric H-by-H only" hardware target from an "asymmetric W-by-H"
// one: math/bits exposes only the latter (bits.Div64), so both algorithms
// are grounded on the same proven digit-estimate-and-correct procedure
// here; trifecta128 and asymmetric128 are the same divFamily128 call
// with this function as the wide case, so they share every regime. See
// DESIGN.md.
func knuthDivWide128(carry, mid, lo uint64, divNorm u128) (quo, rem u128) {
	// divFamily128 already normalized divNorm so its top bit is set and
	// carry < divNorm.Hi, which is the precondition bits.Div64 needs.
	qHat, rHat := bits.Div64(carry, mid, divNorm.Hi)

	for {
		mHi, mLo := bits.Mul64(qHat, divNorm.Lo)
		if mHi < rHat || (mHi == rHat && mLo <= lo) {
			break
		}
		qHat--
		prevRHat := rHat
		rHat += divNorm.Hi
		if rHat < prevRHat {
			// rHat overflowed past 2^64: it is now too large for any
			// further decrement of qHat to be necessary.
			break
		}
	}

	pHi, pMid, pLo := mul128By64(divNorm, qHat)

	remLo, b1 := bits.Sub64(lo, pLo, 0)
	remMid, b2 := bits.Sub64(mid, pMid, b1)
	_, b3 := bits.Sub64(carry, pHi, b2)

	if b3 != 0 {
		// The correction loop above still left the estimate one too
		// high; add a copy of the divisor back in once, per Knuth.
		qHat--
		var addCarry uint64
		remLo, addCarry = bits.Add64(remLo, divNorm.Lo, 0)
		remMid, _ = bits.Add64(remMid, divNorm.Hi, addCarry)
	}

	return u128{0, qHat}, u128{remMid, remLo}
}
