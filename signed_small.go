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

// signedAbsSmall returns x's magnitude and sign. Converting -x to U works
// even when x is the width's minimum value: Go's signed negation wraps
// (-MinInt8 == MinInt8), and reinterpreting that bit pattern as unsigned
// yields exactly 2^(w-1), the correct magnitude. No special case needed.
func signedAbsSmall[S Signed, U Unsigned](x S) (mag U, neg bool) {
	if x < 0 {
		return U(-x), true
	}
	return U(x), false
}

// sdivrem wraps an unsigned width-w routine (one of delegate, trifecta,
// asymmetric, binaryLong) with absolute value, dispatch, and sign fixup:
// truncated-toward-zero division computed from the unsigned algorithms,
// with the quotient negated when the operands'
// signs differ and the remainder taking duo's sign. Converting the
// unsigned quotient back to S reproduces the wraparound
// duo=-2^(w-1), div=-1 => quo=-2^(w-1), rem=0 case exactly, again with no
// special case: 2^(w-1) converted to S is already -2^(w-1).
func sdivrem[S Signed, U Unsigned](duo, div S, udivrem func(a, b U) (U, U)) (quo, rem S) {
	if div == 0 {
		divideByZero(int(widthOfSignedSmall[S]()))
	}

	duoMag, duoNeg := signedAbsSmall[S, U](duo)
	divMag, divNeg := signedAbsSmall[S, U](div)

	uq, ur := udivrem(duoMag, divMag)

	quo = S(uq)
	if duoNeg != divNeg {
		quo = -quo
	}
	rem = S(ur)
	if duoNeg {
		rem = -rem
	}
	return quo, rem
}

func widthOfSignedSmall[S Signed]() uint {
	var z S
	switch any(z).(type) {
	case int8:
		return 8
	case int16:
		return 16
	case int32:
		return 32
	default:
		panic("divrem: unsupported signed width")
	}
}
