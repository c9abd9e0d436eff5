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

// asymmetric64 is the W=64, H=32 instantiation of the "asymmetric"
// algorithm: same three-regime dispatch as trifecta64, targeting a CPU
// with a genuine asymmetric 64-by-32 hardware divider - math/bits.Div32
// itself, used directly in the medium regime via delegate64 and as the
// digit-estimate collaborator in the wide regime via knuthDivWide64. This
// is the regime where asymmetric's premise is least fictional: Go really
// does offer bits.Div32 as a 64-by-32 divider on every platform.
func asymmetric64(duo, div uint64) (quo, rem uint64) {
	return divFamily64(duo, div, knuthDivWide64)
}
