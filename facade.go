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

// This file picks one of the four algorithms (binaryLong, delegate,
// trifecta, asymmetric) as the recommended default per width: delegate
// for W <= 64, since Go guarantees a native hardware divider exists for H
// in that range; asymmetric for W = 128, since math/bits.Div64 is exactly
// the asymmetric 128-by-64 divider that algorithm is built for. Callers
// who want a specific algorithm instead of the recommended one call it
// directly (UDivRemTrifecta32, SDivRemBinaryLong64, and so on - see
// algorithms.go).

// UDivRem8 divides duo by div, unsigned, 8-bit width, panicking with
// DivisionByZeroError on div == 0.
func UDivRem8(duo, div uint8) (quo, rem uint8) {
	logSelection(8, "delegate", "recommended")
	return delegate(duo, div)
}

// UDiv8 returns only the quotient of UDivRem8.
func UDiv8(duo, div uint8) uint8 { q, _ := UDivRem8(duo, div); return q }

// URem8 returns only the remainder of UDivRem8.
func URem8(duo, div uint8) uint8 { _, r := UDivRem8(duo, div); return r }

// SDivRem8 divides duo by div, signed, truncated toward zero, 8-bit width.
func SDivRem8(duo, div int8) (quo, rem int8) {
	logSelection(8, "delegate", "recommended")
	return sdivrem[int8, uint8](duo, div, delegate[uint8])
}

// SDiv8 returns only the quotient of SDivRem8.
func SDiv8(duo, div int8) int8 { q, _ := SDivRem8(duo, div); return q }

// SRem8 returns only the remainder of SDivRem8.
func SRem8(duo, div int8) int8 { _, r := SDivRem8(duo, div); return r }

// UDivRem16 is UDivRem8 at 16-bit width.
func UDivRem16(duo, div uint16) (quo, rem uint16) {
	logSelection(16, "delegate", "recommended")
	return delegate(duo, div)
}

func UDiv16(duo, div uint16) uint16 { q, _ := UDivRem16(duo, div); return q }
func URem16(duo, div uint16) uint16 { _, r := UDivRem16(duo, div); return r }

// SDivRem16 is SDivRem8 at 16-bit width.
func SDivRem16(duo, div int16) (quo, rem int16) {
	logSelection(16, "delegate", "recommended")
	return sdivrem[int16, uint16](duo, div, delegate[uint16])
}

func SDiv16(duo, div int16) int16 { q, _ := SDivRem16(duo, div); return q }
func SRem16(duo, div int16) int16 { _, r := SDivRem16(duo, div); return r }

// UDivRem32 is UDivRem8 at 32-bit width.
func UDivRem32(duo, div uint32) (quo, rem uint32) {
	logSelection(32, "delegate", "recommended")
	return delegate(duo, div)
}

func UDiv32(duo, div uint32) uint32 { q, _ := UDivRem32(duo, div); return q }
func URem32(duo, div uint32) uint32 { _, r := UDivRem32(duo, div); return r }

// SDivRem32 is SDivRem8 at 32-bit width.
func SDivRem32(duo, div int32) (quo, rem int32) {
	logSelection(32, "delegate", "recommended")
	return sdivrem[int32, uint32](duo, div, delegate[uint32])
}

func SDiv32(duo, div int32) int32 { q, _ := SDivRem32(duo, div); return q }
func SRem32(duo, div int32) int32 { _, r := SDivRem32(duo, div); return r }

// UDivRem64 divides duo by div, unsigned, 64-bit width, using delegate64
// (math/bits.Div32 is the recommended path's hardware collaborator).
func UDivRem64(duo, div uint64) (quo, rem uint64) {
	logSelection(64, "delegate", "recommended")
	return delegate64(duo, div)
}

func UDiv64(duo, div uint64) uint64 { q, _ := UDivRem64(duo, div); return q }
func URem64(duo, div uint64) uint64 { _, r := UDivRem64(duo, div); return r }

// SDivRem64 is SDivRem8 at 64-bit width.
func SDivRem64(duo, div int64) (quo, rem int64) {
	logSelection(64, "delegate", "recommended")
	return sdivrem64(duo, div, delegate64)
}

func SDiv64(duo, div int64) int64 { q, _ := SDivRem64(duo, div); return q }
func SRem64(duo, div int64) int64 { _, r := SDivRem64(duo, div); return r }

// UDivRem128 divides duo by div, unsigned, 128-bit width, using
// asymmetric128 (math/bits.Div64 is the recommended path's hardware
// collaborator - a genuine asymmetric 128-by-64 divider).
func UDivRem128(duo, div Uint128) (quo, rem Uint128) {
	logSelection(128, "asymmetric", "recommended")
	q, r := asymmetric128(duo.toInternal(), div.toInternal())
	return q.toPublic(), r.toPublic()
}

func UDiv128(duo, div Uint128) Uint128 { q, _ := UDivRem128(duo, div); return q }
func URem128(duo, div Uint128) Uint128 { _, r := UDivRem128(duo, div); return r }

// SDivRem128 divides duo by div, signed, truncated toward zero, 128-bit
// width.
func SDivRem128(duo, div Int128) (quo, rem Int128) {
	logSelection(128, "asymmetric", "recommended")
	q, r := sdivrem128(duo.toInternal(), div.toInternal(), asymmetric128)
	return q.toPublic(), r.toPublic()
}

func SDiv128(duo, div Int128) Int128 { q, _ := SDivRem128(duo, div); return q }
func SRem128(duo, div Int128) Int128 { _, r := SDivRem128(duo, div); return r }
