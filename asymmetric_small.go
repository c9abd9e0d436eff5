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

// asymmetric is the generic instantiation of the "asymmetric"
// algorithm for the small widths. Regime selection is identical to
// trifecta's at these widths (see trifecta_small.go) - Go offers no
// narrower-than-T hardware divider to distinguish a symmetric from an
// asymmetric target below 64 bits. At 64 and 128 bits the two share one
// implementation as well (divFamily64/divFamily128 with the same Knuth
// wide case), for the reason given in DESIGN.md.
func asymmetric[T Unsigned](duo, div T) (quo, rem T) {
	w := widthOfSmall[T]()
	q := w / 4

	if div == 0 {
		divideByZero(int(w))
	}
	if duo < div {
		return 0, duo
	}

	divLZ := lz(div)

	switch {
	case divLZ >= w-q:
		return divSmallDivisorGeneric(duo, div, w, q)

	case divLZ >= w/2:
		return delegate(duo, div)

	default:
		return binaryLong(duo, div)
	}
}
