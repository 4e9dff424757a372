// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024 The Crux developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"

	"github.com/cruxnet/cruxd/util"
)

// hexToBytes converts the passed hex string into bytes and will panic if
// there is an error. This is only provided for the hard-coded constants so
// errors in the source code can be detected.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

// newAddressPubKeyHash returns a new util.Address for the provided hash. It
// panics if an error occurs. This is only used in the tests as a helper
// since the only way it can fail is if there is an error in the test source
// code.
func newAddressPubKeyHash(pkHash []byte) *util.Address {
	addr, err := util.NewAddressPubKeyHash(pkHash)
	if err != nil {
		panic("invalid public key hash in test source")
	}
	return addr
}

// newAddressScriptHash returns a new util.Address for the provided hash. It
// panics if an error occurs. This is only used in the tests as a helper
// since the only way it can fail is if there is an error in the test source
// code.
func newAddressScriptHash(scriptHash []byte) *util.Address {
	addr, err := util.NewAddressScriptHashFromHash(scriptHash)
	if err != nil {
		panic("invalid script hash in test source")
	}
	return addr
}

// TestExtractAddress ensures that extracting the type and address from
// standard scripts works as intended.
func TestExtractAddress(t *testing.T) {
	t.Parallel()

	pkHash := hexToBytes("ad06dd6ddee55cbca9a9e3713bd7587509a30564")
	scriptHash := hexToBytes("63bcc565f9e68ee0189dd5cc67f1b0e5f02f45cb")
	pubKey := hexToBytes("02192d74d0cb94344c9569c2e77901573d8d7903c3ebec3a" +
		"957724895dca52c6b4")

	tests := []struct {
		name  string
		ops   []ParsedOpcode
		addr  *util.Address
		class ScriptClass
	}{
		{
			name: "standard p2pkh",
			ops: []ParsedOpcode{
				{Code: OpDup},
				{Code: OpHash160},
				PushData(pkHash),
				{Code: OpEqualVerify},
				{Code: OpCheckSig},
			},
			addr:  newAddressPubKeyHash(pkHash),
			class: PubKeyHashTy,
		},
		{
			name: "standard p2sh",
			ops: []ParsedOpcode{
				{Code: OpHash160},
				PushData(scriptHash),
				{Code: OpEqual},
			},
			addr:  newAddressScriptHash(scriptHash),
			class: ScriptHashTy,
		},
		{
			name: "standard p2pk with compressed pubkey",
			ops: []ParsedOpcode{
				PushData(pubKey),
				{Code: OpCheckSig},
			},
			addr:  mustPubKeyAddr(pubKey),
			class: PubKeyTy,
		},

		// The below are nonstandard scripts due to things such as
		// invalid push lengths and not being of a standard form.

		{
			name: "p2pk with pubkey of invalid length",
			ops: []ParsedOpcode{
				PushData(make([]byte, 32)),
				{Code: OpCheckSig},
			},
			addr:  nil,
			class: NonStandardTy,
		},
		{
			name: "p2pkh with missing OP_CHECKSIG",
			ops: []ParsedOpcode{
				{Code: OpDup},
				{Code: OpHash160},
				PushData(pkHash),
				{Code: OpEqualVerify},
			},
			addr:  nil,
			class: NonStandardTy,
		},
		{
			name: "p2sh with OP_EQUALVERIFY instead of OP_EQUAL",
			ops: []ParsedOpcode{
				{Code: OpHash160},
				PushData(scriptHash),
				{Code: OpEqualVerify},
			},
			addr:  nil,
			class: NonStandardTy,
		},
		{
			name:  "empty script",
			ops:   nil,
			addr:  nil,
			class: NonStandardTy,
		},
	}

	for _, test := range tests {
		if class := TypeOfScript(test.ops); class != test.class {
			t.Errorf("%s: script type mismatch - got %v, want %v\n"+
				"script: %v", test.name, class, test.class,
				spew.Sdump(test.ops))
			continue
		}

		addr, err := ExtractAddress(test.ops)
		if test.addr == nil {
			if !errors.Is(err, ErrNonStandardScript) {
				t.Errorf("%s: got error %v, want ErrNonStandardScript",
					test.name, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: ExtractAddress: %v", test.name, err)
			continue
		}
		if !addr.IsEqual(test.addr) {
			t.Errorf("%s: address mismatch - got %v/%x, want %v/%x",
				test.name, addr.Type(), addr.ScriptAddress(),
				test.addr.Type(), test.addr.ScriptAddress())
		}
	}
}

// mustPubKeyAddr builds the expected address for a p2pk script: the Hash160
// of the pushed public key.
func mustPubKeyAddr(pubKey []byte) *util.Address {
	addr, err := util.NewAddressPubKeyHashFromPublicKey(pubKey)
	if err != nil {
		panic("invalid public key in test source")
	}
	return addr
}

// TestExtractInputAddress ensures signature scripts of the canonical
// <signature> <pubkey> form yield the spender's address and everything else
// is rejected.
func TestExtractInputAddress(t *testing.T) {
	t.Parallel()

	pubKey := hexToBytes("02192d74d0cb94344c9569c2e77901573d8d7903c3ebec3a" +
		"957724895dca52c6b4")
	signature := hexToBytes("304402204e45e16932b8af514961a1d3a1a25fdf3f4f77" +
		"32e9d624c6c61548ab5fb8cd410220181522ec8eca07de4860a4acdd12909d831c" +
		"c56cbbac4622082221a8768d1d0901")

	addr, err := ExtractInputAddress([]ParsedOpcode{
		PushData(signature),
		PushData(pubKey),
	})
	if err != nil {
		t.Fatalf("ExtractInputAddress: %v", err)
	}
	want := util.Hash160(pubKey)
	if !bytes.Equal(addr.ScriptAddress(), want) {
		t.Errorf("input address digest - got %x, want %x",
			addr.ScriptAddress(), want)
	}

	// Non-push opcodes and wrong op counts are not signature scripts.
	invalid := [][]ParsedOpcode{
		{PushData(signature)},
		{PushData(signature), PushData(pubKey), PushData(pubKey)},
		{{Code: OpDup}, PushData(pubKey)},
	}
	for i, ops := range invalid {
		if _, err := ExtractInputAddress(ops); !errors.Is(err, ErrNonStandardScript) {
			t.Errorf("invalid script #%d: got error %v, want "+
				"ErrNonStandardScript", i, err)
		}
	}
}
