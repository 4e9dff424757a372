// Copyright (c) 2014-2017 The btcsuite developers
// Copyright (c) 2024 The Crux developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bignum

import (
	"bytes"
	"testing"

	"github.com/cruxnet/cruxd/util/chainhash"
)

// mustHashFromStr converts a big-endian hex string into a chainhash.Hash and
// panics on failure. Only used with hard-coded test strings.
func mustHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		panic("invalid hash in test source: " + hexStr)
	}
	return hash
}

// TestCompactRepr ensures Compact converts numbers to the expected compact
// representation.
func TestCompactRepr(t *testing.T) {
	tests := []struct {
		in  int64
		out uint32
	}{
		{0, 0},
		{-1, 25231360},
		{1, 0x01010000},
		{0x80, 0x02008000},
		{0xffff, 0x0300ffff},
		{0x123456, 0x03123456},
		{0x12345678, 0x04123456},
	}

	for x, test := range tests {
		n := FromInt64(test.in)
		r := n.Compact()
		if r != test.out {
			t.Errorf("TestCompactRepr test #%d failed: got 0x%08x want 0x%08x\n",
				x, r, test.out)
			return
		}
	}
}

// TestSetCompact ensures SetCompact converts numbers using the compact
// representation to the expected big integers.
func TestSetCompact(t *testing.T) {
	tests := []struct {
		in  uint32
		out int64
	}{
		{10000000, 0},
		{0, 0},
		{0x01010000, 1},
		{0x01123456, 0x12},
		{0x02123456, 0x1234},
		{0x03123456, 0x123456},
		{0x04123456, 0x12345600},
		{0x04923456, -0x12345600},
		// A zero magnitude is normalized to non-negative zero no matter
		// what the sign bit says.
		{0x00800000, 0},
		{0x03800000, 0},
	}

	for x, test := range tests {
		n := FromCompact(test.in)
		want := FromInt64(test.out)
		if n.Cmp(want) != 0 {
			t.Errorf("TestSetCompact test #%d failed: got %v want %v\n",
				x, n, want)
			return
		}
		if n.Sign() == 0 && len(n.Bytes()) != 0 {
			t.Errorf("TestSetCompact test #%d failed: zero has a non-empty "+
				"magnitude %x\n", x, n.Bytes())
			return
		}
	}
}

// TestCompactRoundTrip ensures the decode-encode round trip is exact for
// every magnitude that already fits the 3-byte mantissa with no padding.
func TestCompactRoundTrip(t *testing.T) {
	tests := []uint32{
		0x01120000,
		0x02123400,
		0x03123456,
		0x04123456,
		0x1b0404cb,
		0x1d00ffff,
		0x1b8404cb, // negative
		0x207fffff,
	}

	for _, compact := range tests {
		if got := FromCompact(compact).Compact(); got != compact {
			t.Errorf("compact round trip failed: got 0x%08x want 0x%08x",
				got, compact)
		}
	}
}

// TestCompactTargetVectors checks the documented difficulty target vectors
// against their full 256-bit values.
func TestCompactTargetVectors(t *testing.T) {
	tests := []struct {
		compact uint32
		hashStr string
	}{
		{0x1b0404cb, "00000000000404cb000000000000000000000000000000000000000000000000"},
		{0x1d00ffff, "00000000ffff0000000000000000000000000000000000000000000000000000"},
	}

	for _, test := range tests {
		n := FromCompact(test.compact)
		hash, err := n.Hash()
		if err != nil {
			t.Errorf("Hash for 0x%08x: unexpected error %v", test.compact, err)
			continue
		}
		want := mustHashFromStr(test.hashStr)
		if !hash.IsEqual(want) {
			t.Errorf("Hash for 0x%08x: got %v want %v", test.compact, hash, want)
		}
		if got := n.Compact(); got != test.compact {
			t.Errorf("re-encode of 0x%08x: got 0x%08x", test.compact, got)
		}

		// The hash must convert back to the same number.
		if !FromHash(hash).IsEqual(n) {
			t.Errorf("SetHash(Hash(0x%08x)) is not an identity", test.compact)
		}
	}

	// A lower target means a harder proof of work.
	if FromCompact(0x1b0404cb).Cmp(FromCompact(0x1d00ffff)) >= 0 {
		t.Error("target 0x1b0404cb should compare below 0x1d00ffff")
	}
}

// TestHashBounds ensures Hash rejects values a 32-byte digest cannot hold.
func TestHashBounds(t *testing.T) {
	tooBig := FromBytes(bytes.Repeat([]byte{0xff}, chainhash.HashSize+1))
	if _, err := tooBig.Hash(); err == nil {
		t.Error("Hash: no error for a 33-byte magnitude")
	}

	negative := FromInt64(-5)
	if _, err := negative.Hash(); err == nil {
		t.Error("Hash: no error for a negative number")
	}

	zero := new(BigNum)
	hash, err := zero.Hash()
	if err != nil {
		t.Fatalf("Hash: unexpected error for zero: %v", err)
	}
	if !hash.IsEqual(&chainhash.Hash{}) {
		t.Errorf("Hash: zero did not produce the all-zero hash: %v", hash)
	}
}

// TestArithmetic exercises the arithmetic subset used by target math.
func TestArithmetic(t *testing.T) {
	a := FromBytes([]byte{0x70})
	b := FromBytes([]byte{0x0c})

	diff := new(BigNum).Sub(a, b)
	if !diff.IsEqual(FromInt64(100)) {
		t.Errorf("Sub: got %v want 100", diff)
	}
	if !bytes.Equal(diff.Bytes(), []byte{100}) {
		t.Errorf("Sub: minimal form got %x want {0x64}", diff.Bytes())
	}

	sum := new(BigNum).Add(diff, FromInt64(28))
	if sum.Int64() != 128 {
		t.Errorf("Add: got %v want 128", sum)
	}

	product := new(BigNum).Mul(FromUint64(0x1f1f1f1f1f1f), FromUint64(0x1f1f1f1f1f1f))
	wantProduct := []byte{
		0x03, 0xc8, 0x8d, 0x52, 0x16, 0xdb, 0x98, 0xd4,
		0x0f, 0x4a, 0x85, 0xc1,
	}
	if !bytes.Equal(product.Bytes(), wantProduct) {
		t.Errorf("Mul: got %x want %x", product.Bytes(), wantProduct)
	}

	quot := new(BigNum).Div(product, FromUint64(0x1f1f1f1f1f1f))
	if !quot.IsEqual(FromUint64(0x1f1f1f1f1f1f)) {
		t.Errorf("Div: got %v", quot)
	}

	// Negatives compare below all non-negative values.
	if FromInt64(-1).Cmp(new(BigNum)) >= 0 {
		t.Error("Cmp: -1 should compare below 0")
	}
	if FromInt64(-100).Cmp(FromInt64(1)) >= 0 {
		t.Error("Cmp: -100 should compare below 1")
	}
}

// TestDivByZeroPanics ensures dividing by a zero magnitude is treated as a
// programmer error rather than silently producing a wrong value.
func TestDivByZeroPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Div by zero did not panic")
		}
	}()
	new(BigNum).Div(FromInt64(1), new(BigNum))
}
