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

// trifecta128 is the W=128, H=64 instantiation of the "trifecta"
// algorithm: three regimes (small-divisor, medium, wide) selected by how
// many of div's leading bits are zero. Its wide regime is knuthDivWide128 - see that
// function and DESIGN.md for why it is shared verbatim with
// asymmetric128 rather than reimplemented as a genuinely distinct
// "symmetric-only" estimate.
func trifecta128(duo, div u128) (quo, rem u128) {
	return divFamily128(duo, div, knuthDivWide128)
}
