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

// delegate128 is the W=128, H=64 instantiation of the "delegate"
// algorithm: case 4's two steps are duo.Hi/div (a real 64-by-64 hardware
// division, reducing duo.Hi mod div in the same step) followed by a
// single math/bits.Div64 call, the asymmetric 128-by-64 hardware divider,
// on the reduced high limb and duo.Lo.
func delegate128(duo, div u128) (quo, rem u128) {
	if div.isZero() {
		divideByZero(128)
	}
	if duo.ult(div) {
		return u128Zero, duo
	}

	duoLZ := duo.leadingZeros()
	divLZ := div.leadingZeros()

	switch {
	case divLZ >= 64 && duoLZ >= 64:
		return u128{0, duo.Lo / div.Lo}, u128{0, duo.Lo % div.Lo}

	case divLZ >= 64:
		divH := div.Lo

		qHigh := duo.Hi / divH
		rHigh := duo.Hi % divH

		qLow, rLow := bits.Div64(rHigh, duo.Lo, divH)

		return u128{qHigh, qLow}, u128{0, rLow}

	default:
		return binaryLong128(duo, div)
	}
}
