// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2024 The Crux developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58_test

import (
	"bytes"
	"testing"

	"github.com/cruxnet/cruxd/util/base58"
)

var checkEncodingStringTests = []struct {
	in  string
	out string
}{
	{"", "3QJmnh"},
	{" ", "4dLEw1c"},
	{"-", "6Bv6P73"},
	{"0", "6TjFGRG"},
	{"1", "6bdbJ1U"},
	{"-1", "PWEu9GGN"},
	{"11", "RVnPfpC2"},
	{"abc", "4h3c6RH52R"},
	{"1234598760", "K5zqBMZZTzUbAZQgrt4"},
}

func TestBase58Check(t *testing.T) {
	for x, test := range checkEncodingStringTests {
		// test encoding
		if res := base58.CheckEncode([]byte(test.in)); res != test.out {
			t.Errorf("CheckEncode test #%d failed: got %s, want: %s", x, res, test.out)
		}

		// test decoding
		res, err := base58.CheckDecode(test.out)
		if err != nil {
			t.Errorf("CheckDecode test #%d failed with err: %v", x, err)
		} else if string(res) != test.in {
			t.Errorf("CheckDecode test #%d failed: got: %s want: %s", x, res, test.in)
		}
	}

	// test the two decoding failure cases
	// case 1: checksum error
	_, err := base58.CheckDecode("3MNQE1Y")
	if err != base58.ErrChecksum {
		t.Error("Checkdecode test failed, expected ErrChecksum")
	}
	// case 2: invalid formats (string lengths below 5 mean the version byte
	// and/or the checksum bytes are missing).
	testString := ""
	for len := 0; len < 4; len++ {
		testString += "x"
		_, err = base58.CheckDecode(testString)
		if err != base58.ErrInvalidFormat {
			t.Error("Checkdecode test failed, expected ErrInvalidFormat")
		}
	}
}

func TestAppendVerifyChecksum(t *testing.T) {
	payload := []byte{0x00, 0x01, 0x02, 0x03, 0xfd}
	buf := base58.AppendChecksum(payload)
	if len(buf) != len(payload)+base58.ChecksumSize {
		t.Fatalf("AppendChecksum: bad length %d", len(buf))
	}
	if !bytes.Equal(buf[:len(payload)], payload) {
		t.Fatal("AppendChecksum: payload prefix modified")
	}
	if !base58.VerifyChecksum(buf) {
		t.Fatal("VerifyChecksum: valid buffer did not verify")
	}

	// Corrupting any byte must break verification.
	for i := range buf {
		corrupt := append([]byte(nil), buf...)
		corrupt[i] ^= 0x01
		if base58.VerifyChecksum(corrupt) {
			t.Errorf("VerifyChecksum: corrupt byte %d still verifies", i)
		}
	}

	// Too-short buffers never verify.
	if base58.VerifyChecksum([]byte{0x01, 0x02, 0x03}) {
		t.Error("VerifyChecksum: short buffer verified")
	}
}
