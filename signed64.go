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

// signedAbs64 mirrors signedAbsSmall at W=64: converting -x to uint64
// reproduces the correct magnitude even at x == math.MinInt64, via the
// same wraparound bit-pattern argument.
func signedAbs64(x int64) (mag uint64, neg bool) {
	if x < 0 {
		return uint64(-x), true
	}
	return uint64(x), false
}

// sdivrem64 wraps a W=64 unsigned routine with absolute value, dispatch,
// and sign fixup.
func sdivrem64(duo, div int64, udivrem func(a, b uint64) (uint64, uint64)) (quo, rem int64) {
	if div == 0 {
		divideByZero(64)
	}

	duoMag, duoNeg := signedAbs64(duo)
	divMag, divNeg := signedAbs64(div)

	uq, ur := udivrem(duoMag, divMag)

	quo = int64(uq)
	if duoNeg != divNeg {
		quo = -quo
	}
	rem = int64(ur)
	if duoNeg {
		rem = -rem
	}
	return quo, rem
}
