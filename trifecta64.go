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

// trifecta64 is the W=64, H=32 instantiation of the "trifecta"
// algorithm: three regimes (small-divisor, medium, wide) selected by how
// many of div's leading bits are zero, targeting a CPU whose only
// hardware division is a symmetric 32-by-32 one. Its wide regime reduces
// to knuthDivWide64's estimate-and-correct digit division - the nearest
// thing Go's math/bits gives us to that symmetric collaborator, since
// bits.Div32 is what's actually available.
func trifecta64(duo, div uint64) (quo, rem uint64) {
	return divFamily64(duo, div, knuthDivWide64)
}
