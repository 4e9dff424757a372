// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024 The Crux developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bignum

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/cruxnet/cruxd/util/chainhash"
)

// BigNum is a signed arbitrary-precision integer used to represent
// proof-of-work targets and related quantities. The zero value is ready to
// use and represents the number 0.
//
// The underlying representation is a sign and a minimal big-endian magnitude,
// so zero never carries a negative sign and comparisons order negative values
// strictly below non-negative ones. All arithmetic methods store their result
// in the receiver and return it to allow chaining, following the conventions
// of math/big.
//
// A BigNum is not safe for concurrent mutation. Distinct values are fully
// independent.
type BigNum struct {
	i big.Int
}

// FromInt64 returns a new BigNum set to v.
func FromInt64(v int64) *BigNum {
	return new(BigNum).SetInt64(v)
}

// FromUint64 returns a new BigNum set to v.
func FromUint64(v uint64) *BigNum {
	return new(BigNum).SetUint64(v)
}

// FromBytes returns a new BigNum with the given big-endian unsigned magnitude.
func FromBytes(buf []byte) *BigNum {
	return new(BigNum).SetBytes(buf)
}

// FromCompact returns a new BigNum decoded from a compact representation.
// See SetCompact for the format details.
func FromCompact(compact uint32) *BigNum {
	return new(BigNum).SetCompact(compact)
}

// FromHash returns a new BigNum holding the numeric value of the given hash.
// See SetHash for the byte-order details.
func FromHash(hash *chainhash.Hash) *BigNum {
	return new(BigNum).SetHash(hash)
}

// SetInt64 sets n to v and returns n.
func (n *BigNum) SetInt64(v int64) *BigNum {
	n.i.SetInt64(v)
	return n
}

// SetUint64 sets n to v and returns n.
func (n *BigNum) SetUint64(v uint64) *BigNum {
	n.i.SetUint64(v)
	return n
}

// SetBytes interprets buf as an unsigned big-endian magnitude, sets n to that
// value and returns n. Leading zero bytes in buf are permitted and carry no
// meaning.
func (n *BigNum) SetBytes(buf []byte) *BigNum {
	n.i.SetBytes(buf)
	return n
}

// Set sets n to x and returns n.
func (n *BigNum) Set(x *BigNum) *BigNum {
	n.i.Set(&x.i)
	return n
}

// SetCompact converts the compact representation used in block headers to
// express difficulty targets into a whole number, sets n to it and returns n.
//
// The representation is similar to IEEE754 floating point. Like base 10
// scientific notation 1234000 may be written 1.234*10^6, base 256 scientific
// notation writes it as mantissa*256^exponent. The compact form packs that
// into an unsigned 32-bit integer: the highest byte is the exponent (the
// total number of magnitude bytes) and the lower 23 bits are the mantissa.
// Bit 0x00800000 of the mantissa is the sign bit.
//
//	-------------------------------------------------
//	|   Exponent     |    Sign    |    Mantissa     |
//	-------------------------------------------------
//	| 8 bits [31-24] | 1 bit [23] | 23 bits [22-00] |
//	-------------------------------------------------
//
// The formula to calculate N is:
//
//	N = (-1^sign) * mantissa * 256^(exponent-3)
//
// A decoded magnitude of zero is always normalized to a non-negative zero
// regardless of the sign bit.
func (n *BigNum) SetCompact(compact uint32) *BigNum {
	// Extract the mantissa, sign bit, and exponent.
	mantissa := compact & 0x007fffff
	isNegative := compact&0x00800000 != 0
	exponent := uint(compact >> 24)

	// Since the base for the exponent is 256, the exponent can be treated
	// as the number of bytes to represent the full 256-bit number. So,
	// treat the exponent as the number of bytes and shift the mantissa
	// right or left accordingly. This is equivalent to:
	// N = mantissa * 256^(exponent-3)
	if exponent <= 3 {
		mantissa >>= 8 * (3 - exponent)
		n.i.SetInt64(int64(mantissa))
	} else {
		n.i.SetInt64(int64(mantissa))
		n.i.Lsh(&n.i, 8*(exponent-3))
	}

	// Make it negative if the sign bit is set. A zero magnitude stays a
	// non-negative zero since math/big has no negative zero.
	if isNegative {
		n.i.Neg(&n.i)
	}

	return n
}

// Compact converts n into the compact representation described by SetCompact
// and returns it. The compact form is lossy for magnitudes wider than the
// 3-byte mantissa, so decode-encode round trips are only exact when the
// minimal magnitude fits in 3 bytes.
func (n *BigNum) Compact() uint32 {
	// No need to do any work if it's zero.
	sign := n.i.Sign()
	if sign == 0 {
		return 0
	}

	// Since the base for the exponent is 256, the exponent can be treated
	// as the number of bytes. So, shift the number right or left
	// accordingly. This is equivalent to:
	// mantissa = abs(n) / 256^(exponent-3)
	var mantissa uint32
	exponent := uint(len(n.i.Bytes()))
	if exponent <= 3 {
		mantissa = uint32(n.i.Bits()[0])
		mantissa <<= 8 * (3 - exponent)
	} else {
		// Use a copy to avoid modifying the caller's original number.
		tn := new(big.Int).Abs(&n.i)
		mantissa = uint32(tn.Rsh(tn, 8*(exponent-3)).Bits()[0])
	}

	// When the mantissa already has the sign bit set, the number is too
	// large to fit into the available 23-bits, so divide the number by 256
	// and increment the exponent accordingly.
	if mantissa&0x00800000 != 0 {
		mantissa >>= 8
		exponent++
	}

	// Pack the exponent, sign bit, and mantissa into an unsigned 32-bit
	// int and return it.
	compact := uint32(exponent<<24) | mantissa
	if sign < 0 {
		compact |= 0x00800000
	}
	return compact
}

// SetHash treats the given hash as a little-endian unsigned integer, sets n
// to its value and returns n.
//
// Hashes are stored in the reverse of their displayed hexadecimal form, so
// the bytes are reversed before being interpreted as a big-endian magnitude.
func (n *BigNum) SetHash(hash *chainhash.Hash) *BigNum {
	// A Hash is in little-endian, but the big package wants the bytes in
	// big-endian, so reverse them.
	buf := hash.CloneBytes()
	blen := len(buf)
	for i := 0; i < blen/2; i++ {
		buf[i], buf[blen-1-i] = buf[blen-1-i], buf[i]
	}
	n.i.SetBytes(buf)
	return n
}

// Hash returns n rendered as a 32-byte hash, zero padded on the numeric high
// side and stored in the usual reversed byte order. It is the inverse of
// SetHash. An error is returned when n is negative or its magnitude does not
// fit into 32 bytes.
func (n *BigNum) Hash() (*chainhash.Hash, error) {
	if n.i.Sign() < 0 {
		return nil, errors.New("cannot represent a negative number as a hash")
	}
	buf := n.i.Bytes()
	if len(buf) > chainhash.HashSize {
		return nil, errors.Errorf("magnitude of %d bytes exceeds the %d-byte "+
			"hash size", len(buf), chainhash.HashSize)
	}

	var hash chainhash.Hash
	for i, b := range buf {
		hash[len(buf)-1-i] = b
	}
	return &hash, nil
}

// Bytes returns the minimal big-endian form of the magnitude of n. The
// result is empty when n is zero.
func (n *BigNum) Bytes() []byte {
	return n.i.Bytes()
}

// Int64 returns the int64 representation of n. The result is undefined when
// n cannot be represented in an int64.
func (n *BigNum) Int64() int64 {
	return n.i.Int64()
}

// Sign returns -1, 0 or 1 depending on whether n is negative, zero or
// positive.
func (n *BigNum) Sign() int {
	return n.i.Sign()
}

// Add sets n to the sum x+y and returns n.
func (n *BigNum) Add(x, y *BigNum) *BigNum {
	n.i.Add(&x.i, &y.i)
	return n
}

// Sub sets n to the difference x-y and returns n.
func (n *BigNum) Sub(x, y *BigNum) *BigNum {
	n.i.Sub(&x.i, &y.i)
	return n
}

// Mul sets n to the product x*y and returns n.
func (n *BigNum) Mul(x, y *BigNum) *BigNum {
	n.i.Mul(&x.i, &y.i)
	return n
}

// Div sets n to the quotient x/y (truncated towards zero) and returns n.
// A zero divisor is a programmer error and causes a run-time panic.
func (n *BigNum) Div(x, y *BigNum) *BigNum {
	n.i.Quo(&x.i, &y.i)
	return n
}

// Lsh sets n to x shifted left by the given number of bits and returns n.
func (n *BigNum) Lsh(x *BigNum, bits uint) *BigNum {
	n.i.Lsh(&x.i, bits)
	return n
}

// Cmp compares n and y and returns:
//
//	-1 if n <  y
//	 0 if n == y
//	+1 if n >  y
//
// Any negative value compares below every non-negative value; within a sign
// the comparison follows the magnitudes.
func (n *BigNum) Cmp(y *BigNum) int {
	return n.i.Cmp(&y.i)
}

// IsEqual returns whether n and y represent the same number.
func (n *BigNum) IsEqual(y *BigNum) bool {
	return n.Cmp(y) == 0
}

// String returns the decimal representation of n.
func (n *BigNum) String() string {
	return n.i.String()
}
