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

// asymmetric128 is the W=128, H=64 instantiation of the "asymmetric"
// algorithm: same regime dispatch as trifecta128, targeting the hardware
// Go actually ships on every supported platform - math/bits.Div64 is a
// genuine asymmetric 128-by-64 divider, used directly by delegate128's
// medium regime and as the digit-estimate collaborator in knuthDivWide128
// for the wide regime. Of the two wide-regime callers, this one's premise
// is the faithful one; see knuthDivWide128's doc comment for why
// trifecta128 shares the same code instead of a distinct symmetric-only
// estimate.
func asymmetric128(duo, div u128) (quo, rem u128) {
	return divFamily128(duo, div, knuthDivWide128)
}
