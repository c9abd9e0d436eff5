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

// This file exposes each of the four algorithms directly, by width,
// rather than only through the facade's recommended-default dispatch.
// cmd/divbench and the cross-algorithm agreement tests are the reason
// this file exists: they need to call binaryLong, delegate, trifecta,
// and asymmetric side by side on the same operands to confirm they
// agree, which the facade alone can't do.

// UDivRemBinaryLong8 computes duo/div via restoring binary long division.
func UDivRemBinaryLong8(duo, div uint8) (quo, rem uint8) { return binaryLong(duo, div) }
func UDivRemBinaryLong16(duo, div uint16) (quo, rem uint16) { return binaryLong(duo, div) }
func UDivRemBinaryLong32(duo, div uint32) (quo, rem uint32) { return binaryLong(duo, div) }
func UDivRemBinaryLong64(duo, div uint64) (quo, rem uint64) { return binaryLong(duo, div) }
func UDivRemBinaryLong128(duo, div Uint128) (quo, rem Uint128) {
	q, r := binaryLong128(duo.toInternal(), div.toInternal())
	return q.toPublic(), r.toPublic()
}

// UDivRemDelegate8 computes duo/div via delegate's two-step short division.
func UDivRemDelegate8(duo, div uint8) (quo, rem uint8) { return delegate(duo, div) }
func UDivRemDelegate16(duo, div uint16) (quo, rem uint16) { return delegate(duo, div) }
func UDivRemDelegate32(duo, div uint32) (quo, rem uint32) { return delegate(duo, div) }
func UDivRemDelegate64(duo, div uint64) (quo, rem uint64) { return delegate64(duo, div) }
func UDivRemDelegate128(duo, div Uint128) (quo, rem Uint128) {
	q, r := delegate128(duo.toInternal(), div.toInternal())
	return q.toPublic(), r.toPublic()
}

// UDivRemTrifecta8 computes duo/div via trifecta's three-regime dispatch.
func UDivRemTrifecta8(duo, div uint8) (quo, rem uint8) { return trifecta(duo, div) }
func UDivRemTrifecta16(duo, div uint16) (quo, rem uint16) { return trifecta(duo, div) }
func UDivRemTrifecta32(duo, div uint32) (quo, rem uint32) { return trifecta(duo, div) }
func UDivRemTrifecta64(duo, div uint64) (quo, rem uint64) { return trifecta64(duo, div) }
func UDivRemTrifecta128(duo, div Uint128) (quo, rem Uint128) {
	q, r := trifecta128(duo.toInternal(), div.toInternal())
	return q.toPublic(), r.toPublic()
}

// UDivRemAsymmetric8 computes duo/div via asymmetric's three-regime dispatch.
func UDivRemAsymmetric8(duo, div uint8) (quo, rem uint8) { return asymmetric(duo, div) }
func UDivRemAsymmetric16(duo, div uint16) (quo, rem uint16) { return asymmetric(duo, div) }
func UDivRemAsymmetric32(duo, div uint32) (quo, rem uint32) { return asymmetric(duo, div) }
func UDivRemAsymmetric64(duo, div uint64) (quo, rem uint64) { return asymmetric64(duo, div) }
func UDivRemAsymmetric128(duo, div Uint128) (quo, rem Uint128) {
	q, r := asymmetric128(duo.toInternal(), div.toInternal())
	return q.toPublic(), r.toPublic()
}

// SDivRemBinaryLong8 is SDivRem8, forced through binaryLong rather than
// the facade's recommended algorithm.
func SDivRemBinaryLong8(duo, div int8) (quo, rem int8) {
	return sdivrem[int8, uint8](duo, div, binaryLong[uint8])
}
func SDivRemBinaryLong16(duo, div int16) (quo, rem int16) {
	return sdivrem[int16, uint16](duo, div, binaryLong[uint16])
}
func SDivRemBinaryLong32(duo, div int32) (quo, rem int32) {
	return sdivrem[int32, uint32](duo, div, binaryLong[uint32])
}
func SDivRemBinaryLong64(duo, div int64) (quo, rem int64) {
	return sdivrem64(duo, div, binaryLong[uint64])
}
func SDivRemBinaryLong128(duo, div Int128) (quo, rem Int128) {
	q, r := sdivrem128(duo.toInternal(), div.toInternal(), binaryLong128)
	return q.toPublic(), r.toPublic()
}

// SDivRemDelegate8 is SDivRem8, forced through delegate.
func SDivRemDelegate8(duo, div int8) (quo, rem int8) {
	return sdivrem[int8, uint8](duo, div, delegate[uint8])
}
func SDivRemDelegate16(duo, div int16) (quo, rem int16) {
	return sdivrem[int16, uint16](duo, div, delegate[uint16])
}
func SDivRemDelegate32(duo, div int32) (quo, rem int32) {
	return sdivrem[int32, uint32](duo, div, delegate[uint32])
}
func SDivRemDelegate64(duo, div int64) (quo, rem int64) {
	return sdivrem64(duo, div, delegate64)
}
func SDivRemDelegate128(duo, div Int128) (quo, rem Int128) {
	q, r := sdivrem128(duo.toInternal(), div.toInternal(), delegate128)
	return q.toPublic(), r.toPublic()
}

// SDivRemTrifecta8 is SDivRem8, forced through trifecta.
func SDivRemTrifecta8(duo, div int8) (quo, rem int8) {
	return sdivrem[int8, uint8](duo, div, trifecta[uint8])
}
func SDivRemTrifecta16(duo, div int16) (quo, rem int16) {
	return sdivrem[int16, uint16](duo, div, trifecta[uint16])
}
func SDivRemTrifecta32(duo, div int32) (quo, rem int32) {
	return sdivrem[int32, uint32](duo, div, trifecta[uint32])
}
func SDivRemTrifecta64(duo, div int64) (quo, rem int64) {
	return sdivrem64(duo, div, trifecta64)
}
func SDivRemTrifecta128(duo, div Int128) (quo, rem Int128) {
	q, r := sdivrem128(duo.toInternal(), div.toInternal(), trifecta128)
	return q.toPublic(), r.toPublic()
}

// SDivRemAsymmetric8 is SDivRem8, forced through asymmetric.
func SDivRemAsymmetric8(duo, div int8) (quo, rem int8) {
	return sdivrem[int8, uint8](duo, div, asymmetric[uint8])
}
func SDivRemAsymmetric16(duo, div int16) (quo, rem int16) {
	return sdivrem[int16, uint16](duo, div, asymmetric[uint16])
}
func SDivRemAsymmetric32(duo, div int32) (quo, rem int32) {
	return sdivrem[int32, uint32](duo, div, asymmetric[uint32])
}
func SDivRemAsymmetric64(duo, div int64) (quo, rem int64) {
	return sdivrem64(duo, div, asymmetric64)
}
func SDivRemAsymmetric128(duo, div Int128) (quo, rem Int128) {
	q, r := sdivrem128(duo.toInternal(), div.toInternal(), asymmetric128)
	return q.toPublic(), r.toPublic()
}
