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

// signedAbs128 mirrors signedAbs64 one width up: i128's neg() already
// implements two's-complement negation via borrow-propagating subtract
// from zero, so it wraps at math.MinInt128 the same way uint64(-x) does
// at math.MinInt64.
func signedAbs128(x i128) (mag u128, neg bool) {
	if x.isNeg() {
		return x.asU128().neg(), true
	}
	return x.asU128(), false
}

// sdivrem128 wraps a W=128 unsigned routine with absolute value, dispatch,
// and sign fixup.
func sdivrem128(duo, div i128, udivrem func(a, b u128) (u128, u128)) (quo, rem i128) {
	if div.asU128().isZero() {
		divideByZero(128)
	}

	duoMag, duoNeg := signedAbs128(duo)
	divMag, divNeg := signedAbs128(div)

	uq, ur := udivrem(duoMag, divMag)

	quo = uq.asI128()
	if duoNeg != divNeg {
		quo = quo.asU128().neg().asI128()
	}
	rem = ur.asI128()
	if duoNeg {
		rem = rem.asU128().neg().asI128()
	}
	return quo, rem
}
