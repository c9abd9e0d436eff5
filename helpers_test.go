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

import "math/big"

// u128ToBig and bigToU128 are this package's independent oracle for
// 128-bit cross-checks.
var big64Shift = new(big.Int).Lsh(big.NewInt(1), 64)

func u128ToBig(v u128) *big.Int {
	b := new(big.Int).SetUint64(v.Hi)
	b.Mul(b, big64Shift)
	b.Add(b, new(big.Int).SetUint64(v.Lo))
	return b
}

func bigToU128(b *big.Int) u128 {
	mask := new(big.Int).Sub(big64Shift, big.NewInt(1))
	lo := new(big.Int).And(b, mask)
	hi := new(big.Int).Rsh(b, 64)
	return u128{Hi: hi.Uint64(), Lo: lo.Uint64()}
}

func bigDivModU128(duo, div u128) (quo, rem u128) {
	q, r := new(big.Int).QuoRem(u128ToBig(duo), u128ToBig(div), new(big.Int))
	return bigToU128(q), bigToU128(r)
}

func i128ToBig(v i128) *big.Int {
	if v.isNeg() {
		mag := v.asU128().neg()
		return new(big.Int).Neg(u128ToBig(mag))
	}
	return u128ToBig(v.asU128())
}

func bigToI128(b *big.Int) i128 {
	if b.Sign() < 0 {
		mag := bigToU128(new(big.Int).Neg(b))
		return mag.neg().asI128()
	}
	return bigToU128(b).asI128()
}
