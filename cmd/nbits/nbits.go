// nbits is a small utility for inspecting the compact difficulty
// representation used in block headers. It expands compact bits into the full
// target along with the work it represents, and can encode a full target back
// into compact form.
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/cruxnet/cruxd/pow"
	"github.com/cruxnet/cruxd/util/bignum"
)

func main() {
	cfg, err := parseConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse config: %s\n", err)
		os.Exit(1)
	}

	if cfg.Encode {
		err = encodeTarget(cfg.Args.Value)
	} else {
		err = decodeBits(cfg.Args.Value)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

// decodeBits expands a compact difficulty value and prints the resulting
// target together with the work it represents.
func decodeBits(value string) error {
	value = strings.TrimPrefix(value, "0x")
	bits64, err := strconv.ParseUint(value, 16, 32)
	if err != nil {
		return errors.Wrapf(err, "invalid compact bits %q", value)
	}
	bits := uint32(bits64)

	target := bignum.FromCompact(bits)
	fmt.Printf("bits:\t0x%08x\n", bits)
	if target.Sign() < 0 {
		fmt.Printf("target:\t-%x\n", target.Bytes())
	} else {
		fmt.Printf("target:\t%064x\n", target.Bytes())
	}
	fmt.Printf("work:\t%s\n", pow.CalcWork(bits))
	return nil
}

// encodeTarget parses a big-endian hex target and prints its compact
// representation. The encoding is lossy: re-decoding may yield a slightly
// different target, so the round-tripped target is printed as well.
func encodeTarget(value string) error {
	value = strings.TrimPrefix(value, "0x")
	if len(value)%2 == 1 {
		value = "0" + value
	}
	targetBytes, err := hex.DecodeString(value)
	if err != nil {
		return errors.Wrapf(err, "invalid target %q", value)
	}

	target := bignum.FromBytes(targetBytes)
	bits := target.Compact()
	fmt.Printf("target:\t%064x\n", target.Bytes())
	fmt.Printf("bits:\t0x%08x\n", bits)
	fmt.Printf("rounded:\t%064x\n", bignum.FromCompact(bits).Bytes())
	return nil
}
