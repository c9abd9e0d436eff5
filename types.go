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

// Package divrem implements specialized unsigned and signed integer
// division and remainder routines for fixed bit widths, including a
// 128-bit width that has no native hardware divider on any Go-supported
// platform.
//
// Every routine computes q, r of duo/div such that duo = q*div + r, with
// 0 <= r < |div| for the unsigned routines and truncated-toward-zero
// semantics for the signed ones. Four algorithms are provided per width -
// binaryLong, delegate, trifecta, and asymmetric - so callers (and this
// package's own tests) can cross-check one against another instead of
// trusting a single code path. trifecta and asymmetric follow the same
// steps at every width, and both reuse delegate and binaryLong for some
// of their regimes.
package divrem

import "math/bits"

// Unsigned is the set of native unsigned integer kinds the generic
// "small width" family (8, 16, and 32 bits) instantiates over. The 64-bit
// and 128-bit widths are handled by dedicated, non-generic code
// (delegate64.go, divfamily64.go, delegate128.go, divfamily128.go and
// their trifecta/asymmetric/signed companions), built on math/bits'
// 64-by-32 and 128-by-64 dividers.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32
}

// Signed is the signed counterpart of Unsigned, used by the generic
// signed wrappers in signed_small.go.
type Signed interface {
	~int8 | ~int16 | ~int32
}

// u128 is the 128-bit unsigned value representation used throughout this
// package: two 64-bit limbs, most significant first.
type u128 struct {
	Hi uint64
	Lo uint64
}

// i128 is the signed view of the same 128-bit bit pattern.
type i128 struct {
	Hi uint64
	Lo uint64
}

var u128Zero = u128{0, 0}

func (a u128) isZero() bool { return a.Hi == 0 && a.Lo == 0 }

func (a u128) eq(b u128) bool { return a.Hi == b.Hi && a.Lo == b.Lo }

func (a u128) ult(b u128) bool {
	if a.Hi != b.Hi {
		return a.Hi < b.Hi
	}
	return a.Lo < b.Lo
}

func (a u128) shl(shift uint) u128 {
	switch {
	case shift == 0:
		return a
	case shift >= 128:
		return u128Zero
	case shift >= 64:
		return u128{Hi: a.Lo << (shift - 64), Lo: 0}
	default:
		return u128{Hi: (a.Hi << shift) | (a.Lo >> (64 - shift)), Lo: a.Lo << shift}
	}
}

func (a u128) shr(shift uint) u128 {
	switch {
	case shift == 0:
		return a
	case shift >= 128:
		return u128Zero
	case shift >= 64:
		return u128{Hi: 0, Lo: a.Hi >> (shift - 64)}
	default:
		return u128{Hi: a.Hi >> shift, Lo: (a.Lo >> shift) | (a.Hi << (64 - shift))}
	}
}

func (a u128) add(b u128) (sum u128, carry uint64) {
	sum.Lo, carry = bits.Add64(a.Lo, b.Lo, 0)
	sum.Hi, carry = bits.Add64(a.Hi, b.Hi, carry)
	return
}

func (a u128) sub(b u128) (diff u128, borrow uint64) {
	diff.Lo, borrow = bits.Sub64(a.Lo, b.Lo, 0)
	diff.Hi, borrow = bits.Sub64(a.Hi, b.Hi, borrow)
	return
}

func (a u128) neg() u128 {
	n, _ := u128Zero.sub(a)
	return n
}

func (a u128) leadingZeros() uint {
	if a.Hi == 0 {
		return 64 + uint(bits.LeadingZeros64(a.Lo))
	}
	return uint(bits.LeadingZeros64(a.Hi))
}

func (a i128) isNeg() bool  { return int64(a.Hi) < 0 }
func (a i128) asU128() u128 { return u128(a) }
func (a u128) asI128() i128 { return i128(a) }

// Uint128 is the exported 128-bit unsigned value this package's width-128
// entry points (UDivRem128, UDiv128, URem128) operate on - the one width
// with no native Go type, represented the same way this package's own
// internal u128 is: two 64-bit limbs, most significant first.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Int128 is the signed counterpart, using the same two's-complement bit
// pattern convention as every other signed/unsigned pair in this package.
type Int128 struct {
	Hi uint64
	Lo uint64
}

// NewUint128 builds a Uint128 from its high and low 64-bit limbs.
func NewUint128(hi, lo uint64) Uint128 { return Uint128{Hi: hi, Lo: lo} }

// NewInt128 builds an Int128 from its high and low 64-bit limbs (two's
// complement, so a negative value has Hi's top bit set).
func NewInt128(hi, lo uint64) Int128 { return Int128{Hi: hi, Lo: lo} }

func (a Uint128) toInternal() u128 { return u128(a) }
func (a Int128) toInternal() i128  { return i128(a) }
func (a u128) toPublic() Uint128   { return Uint128(a) }
func (a i128) toPublic() Int128    { return Int128(a) }
