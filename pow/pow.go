// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024 The Crux developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pow implements the proof-of-work target check performed on block
// headers: the header's compact difficulty field is expanded into a target
// and the block hash, read as an unsigned integer, must not exceed it.
package pow

import (
	"fmt"

	"github.com/cruxnet/cruxd/util/bignum"
	"github.com/cruxnet/cruxd/util/chainhash"
)

// ErrorCode identifies a kind of rule error.
type ErrorCode int

// These constants are used to identify a specific RuleError.
const (
	// ErrUnexpectedDifficulty indicates specified bits do not align with
	// the expected value either because it doesn't match the calculated
	// value based on difficulty rules or it is out of the valid range.
	ErrUnexpectedDifficulty ErrorCode = iota

	// ErrHighHash indicates the block does not hash to a value which is
	// lower than the required target difficultly.
	ErrHighHash
)

// RuleError identifies a rule violation. It is used to indicate that
// processing of a block failed due to one of the many validation rules. The
// caller can use type assertions to access the ErrorCode field to ascertain
// the specific reason for the rule violation.
type RuleError struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e RuleError) Error() string {
	return e.Description
}

// ruleError creates a RuleError given a set of arguments.
func ruleError(c ErrorCode, desc string) RuleError {
	return RuleError{ErrorCode: c, Description: desc}
}

// bigOne is 1 represented as a bignum. It is defined here to avoid the
// overhead of creating it multiple times.
var bigOne = bignum.FromInt64(1)

// oneLsh256 is 1 shifted left 256 bits. It is defined here to avoid the
// overhead of creating it multiple times.
var oneLsh256 = new(bignum.BigNum).Lsh(bigOne, 256)

// CheckProofOfWork ensures the given block hash is in the valid range for
// the claimed difficulty bits: the expanded target must be positive and no
// higher than powMax, and the block hash interpreted as a number must not
// exceed the target.
func CheckProofOfWork(blockHash *chainhash.Hash, bits uint32, powMax *bignum.BigNum) error {
	// The target difficulty must be larger than zero.
	target := bignum.FromCompact(bits)
	if target.Sign() <= 0 {
		str := fmt.Sprintf("block target difficulty of %064x is too low",
			target.Bytes())
		return ruleError(ErrUnexpectedDifficulty, str)
	}

	// The target difficulty must be less than the maximum allowed.
	if target.Cmp(powMax) > 0 {
		str := fmt.Sprintf("block target difficulty of %064x is higher "+
			"than max of %064x", target.Bytes(), powMax.Bytes())
		return ruleError(ErrUnexpectedDifficulty, str)
	}

	// The block hash must be less than the claimed target.
	hashNum := bignum.FromHash(blockHash)
	if hashNum.Cmp(target) > 0 {
		str := fmt.Sprintf("block hash of %064x is higher than expected "+
			"max of %064x", hashNum.Bytes(), target.Bytes())
		return ruleError(ErrHighHash, str)
	}

	return nil
}

// CalcWork calculates a work value from difficulty bits. Crux increases the
// difficulty for generating a block by decreasing the value which the
// generated hash must be less than. This difficulty target is stored in each
// block header using a compact representation as described in the
// documentation for bignum.SetCompact.
//
// The main chain is selected by choosing the chain that has the most proof
// of work (highest difficulty). Since a lower target difficulty value
// equates to higher actual difficulty, the work value which will be
// accumulated must be the inverse of the difficulty. Also, in order to avoid
// potential division by zero and really small floating point numbers, the
// result adds 1 to the denominator and multiplies the numerator by 2^256.
func CalcWork(bits uint32) *bignum.BigNum {
	// Return a work value of zero if the passed difficulty bits represent
	// a negative number. Note this should not happen in practice with
	// valid blocks, but an invalid block could trigger it.
	difficultyNum := bignum.FromCompact(bits)
	if difficultyNum.Sign() <= 0 {
		return new(bignum.BigNum)
	}

	// (1 << 256) / (difficultyNum + 1)
	denominator := new(bignum.BigNum).Add(difficultyNum, bigOne)
	return new(bignum.BigNum).Div(oneLsh256, denominator)
}
