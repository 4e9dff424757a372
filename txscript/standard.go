// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024 The Crux developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"github.com/pkg/errors"

	"github.com/cruxnet/cruxd/util"
)

// ErrNonStandardScript describes an error where a script does not match any
// of the recognized standard payment templates.
var ErrNonStandardScript = errors.New("script matches no standard template")

// ScriptClass is an enumeration for the list of standard types of script.
type ScriptClass byte

// Classes of script payment known about in the blockchain.
const (
	NonStandardTy ScriptClass = iota // None of the recognized forms.
	PubKeyTy                         // Pay to pubkey.
	PubKeyHashTy                     // Pay to pubkey hash.
	ScriptHashTy                     // Pay to script hash.
)

// scriptClassToName houses the human-readable strings which describe each
// script class.
var scriptClassToName = []string{
	NonStandardTy: "nonstandard",
	PubKeyTy:      "pubkey",
	PubKeyHashTy:  "pubkeyhash",
	ScriptHashTy:  "scripthash",
}

// String implements the Stringer interface by returning the name of
// the enum script class. If the enum is invalid then "Invalid" will be
// returned.
func (t ScriptClass) String() string {
	if int(t) > len(scriptClassToName)-1 || int(t) < 0 {
		return "Invalid"
	}
	return scriptClassToName[t]
}

// isPubKeyHash returns true if the script passed is a pay-to-pubkey-hash
// script, false otherwise.
func isPubKeyHash(ops []ParsedOpcode) bool {
	return len(ops) == 5 &&
		ops[0].Code == OpDup &&
		ops[1].Code == OpHash160 &&
		ops[2].Code == OpData20 &&
		ops[3].Code == OpEqualVerify &&
		ops[4].Code == OpCheckSig
}

// isScriptHash returns true if the script passed is a pay-to-script-hash
// script, false otherwise.
func isScriptHash(ops []ParsedOpcode) bool {
	return len(ops) == 3 &&
		ops[0].Code == OpHash160 &&
		ops[1].Code == OpData20 &&
		ops[2].Code == OpEqual
}

// isPubKey returns true if the script passed is a pay-to-pubkey script,
// false otherwise.
func isPubKey(ops []ParsedOpcode) bool {
	// Valid pubkeys are either 33 or 65 bytes.
	return len(ops) == 2 &&
		isDataPush(ops[0]) &&
		(len(ops[0].Data) == 33 || len(ops[0].Data) == 65) &&
		ops[1].Code == OpCheckSig
}

// TypeOfScript returns the type of the script passed. NonStandardTy will be
// returned when the script does not match any of the standard templates.
// Templates are tried in the order pay-to-pubkey-hash, pay-to-script-hash,
// pay-to-pubkey, so a sequence that could conceivably satisfy more than one
// always classifies as the first.
func TypeOfScript(ops []ParsedOpcode) ScriptClass {
	switch {
	case isPubKeyHash(ops):
		return PubKeyHashTy
	case isScriptHash(ops):
		return ScriptHashTy
	case isPubKey(ops):
		return PubKeyTy
	}
	return NonStandardTy
}

// ExtractAddress returns the payment address a standard output script pays
// to. For pay-to-pubkey scripts the address digest is the Hash160 of the
// pushed public key. Scripts that match no standard template error with
// ErrNonStandardScript.
func ExtractAddress(ops []ParsedOpcode) (*util.Address, error) {
	switch TypeOfScript(ops) {
	case PubKeyHashTy:
		// A pay-to-pubkey-hash script is of the form:
		//  OP_DUP OP_HASH160 <hash> OP_EQUALVERIFY OP_CHECKSIG
		return util.NewAddressPubKeyHash(ops[2].Data)

	case ScriptHashTy:
		// A pay-to-script-hash script is of the form:
		//  OP_HASH160 <scripthash> OP_EQUAL
		return util.NewAddressScriptHashFromHash(ops[1].Data)

	case PubKeyTy:
		// A pay-to-pubkey script is of the form:
		//  <pubkey> OP_CHECKSIG
		return util.NewAddressPubKeyHashFromPublicKey(ops[0].Data)
	}

	return nil, errors.Wrapf(ErrNonStandardScript, "script of %d ops", len(ops))
}

// ExtractInputAddress returns the payment address of the public key a
// standard pay-to-pubkey-hash signature script spends with. The expected
// form is:
//
//	<signature> <pubkey>
//
// Scripts of any other shape error with ErrNonStandardScript.
func ExtractInputAddress(ops []ParsedOpcode) (*util.Address, error) {
	if len(ops) != 2 || !isDataPush(ops[0]) || !isDataPush(ops[1]) {
		return nil, errors.Wrap(ErrNonStandardScript, "not a signature script")
	}
	return util.NewAddressPubKeyHashFromPublicKey(ops[1].Data)
}
