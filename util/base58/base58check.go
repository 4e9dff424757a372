// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2024 The Crux developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58

import (
	"github.com/pkg/errors"

	"github.com/cruxnet/cruxd/util/chainhash"
)

// ChecksumSize is the number of bytes of the double sha256 checksum appended
// to a Base58Check payload.
const ChecksumSize = 4

// ErrChecksum indicates that the checksum of a check-encoded string does not
// verify against the checksum.
var ErrChecksum = errors.New("checksum error")

// ErrInvalidFormat indicates that the check-encoded string has an invalid
// format.
var ErrInvalidFormat = errors.New("invalid format: checksum bytes missing")

// checksum returns the first ChecksumSize bytes of sha256(sha256(input)).
func checksum(input []byte) (cksum [ChecksumSize]byte) {
	h2 := chainhash.DoubleHashB(input)
	copy(cksum[:], h2[:ChecksumSize])
	return
}

// AppendChecksum returns the payload with its ChecksumSize-byte double sha256
// checksum appended.
func AppendChecksum(payload []byte) []byte {
	b := make([]byte, 0, len(payload)+ChecksumSize)
	b = append(b, payload...)
	cksum := checksum(payload)
	b = append(b, cksum[:]...)
	return b
}

// VerifyChecksum splits the final ChecksumSize bytes of the buffer off as the
// claimed checksum, recomputes the checksum over the prefix and reports
// whether the two match. Buffers shorter than ChecksumSize never verify.
func VerifyChecksum(buf []byte) bool {
	if len(buf) < ChecksumSize {
		return false
	}
	payload := buf[:len(buf)-ChecksumSize]
	var claimed [ChecksumSize]byte
	copy(claimed[:], buf[len(buf)-ChecksumSize:])
	return checksum(payload) == claimed
}

// CheckEncode appends a four byte checksum to the payload and then encodes
// the result with base58.
func CheckEncode(payload []byte) string {
	return Encode(AppendChecksum(payload))
}

// CheckDecode decodes a string that was encoded with CheckEncode and verifies
// the checksum.
func CheckDecode(input string) ([]byte, error) {
	decoded, err := Decode(input)
	if err != nil {
		return nil, err
	}
	if len(decoded) < ChecksumSize+1 {
		return nil, ErrInvalidFormat
	}
	if !VerifyChecksum(decoded) {
		return nil, ErrChecksum
	}
	payload := decoded[:len(decoded)-ChecksumSize]
	return payload, nil
}
