// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2024 The Crux developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58

import (
	"math/big"

	"github.com/pkg/errors"
)

// alphabet is the modified base58 alphabet used by crux. It omits the
// characters 0, O, I and l which are easily mistaken for one another.
const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// ErrInvalidCharacter describes an error in which a string contains a
// character that is not part of the base58 alphabet.
var ErrInvalidCharacter = errors.New("invalid base58 character")

var bigRadix = big.NewInt(58)
var bigZero = big.NewInt(0)

// b58 maps each possible byte to its value in the base58 alphabet. Bytes
// that are not part of the alphabet map to 255.
var b58 = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = 255
	}
	for i, c := range alphabet {
		t[c] = byte(i)
	}
	return t
}()

// Encode encodes a byte slice to a modified base58 string. Each leading zero
// byte of the input is represented by a single leading '1' in the result so
// the exact byte length survives the base conversion.
func Encode(b []byte) string {
	x := new(big.Int)
	x.SetBytes(b)

	answer := make([]byte, 0, len(b)*136/100)
	for x.Cmp(bigZero) > 0 {
		mod := new(big.Int)
		x.DivMod(x, bigRadix, mod)
		answer = append(answer, alphabet[mod.Int64()])
	}

	// leading zero bytes
	for _, i := range b {
		if i != 0 {
			break
		}
		answer = append(answer, alphabet[0])
	}

	// reverse
	alen := len(answer)
	for i := 0; i < alen/2; i++ {
		answer[i], answer[alen-1-i] = answer[alen-1-i], answer[i]
	}

	return string(answer)
}

// Decode decodes a modified base58 string to a byte slice. An error is
// returned if the string contains a character outside the base58 alphabet.
func Decode(s string) ([]byte, error) {
	answer := big.NewInt(0)
	j := big.NewInt(1)

	scratch := new(big.Int)
	for i := len(s) - 1; i >= 0; i-- {
		tmp := b58[s[i]]
		if tmp == 255 {
			return nil, errors.Wrapf(ErrInvalidCharacter, "character %q", s[i])
		}
		scratch.SetInt64(int64(tmp))
		scratch.Mul(j, scratch)
		answer.Add(answer, scratch)
		j.Mul(j, bigRadix)
	}

	tmpval := answer.Bytes()

	var numZeros int
	for numZeros = 0; numZeros < len(s); numZeros++ {
		if s[numZeros] != alphabet[0] {
			break
		}
	}
	flen := numZeros + len(tmpval)
	val := make([]byte, flen)
	copy(val[numZeros:], tmpval)

	return val, nil
}
