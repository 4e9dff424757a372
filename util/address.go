// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024 The Crux developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/pkg/errors"

	"github.com/cruxnet/cruxd/chaincfg"
	"github.com/cruxnet/cruxd/util/base58"
)

// Hash160Size is the size, in bytes, of the short hash that identifies a
// payment destination.
const Hash160Size = 20

// ZeroHash160 is the all-zero short hash. A default-constructed Address
// holds it, so callers detect an unset address by comparing against this
// sentinel rather than through a separate validity flag.
var ZeroHash160 = [Hash160Size]byte{}

var (
	// ErrChecksumMismatch describes an error where decoding failed due
	// to a bad checksum.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrUnknownAddressType describes an error where an address cannot be
	// decoded as a specific address type due to the string encoding
	// beginning with an identifier byte unknown to any standard or
	// registered (via chaincfg.Register) network.
	ErrUnknownAddressType = errors.New("unknown address type")

	// ErrAddressWrongLength describes an error where an address digest
	// is not the required Hash160Size bytes.
	ErrAddressWrongLength = errors.New("address digest is of wrong length")
)

// AddressType identifies the kind of payment destination an Address refers
// to. It maps bijectively to a one-byte version tag under a given network's
// version-byte table.
type AddressType int

// Constants for the kinds of addresses.
const (
	// AddressPubKeyHash is an address for a pay-to-pubkey-hash output.
	AddressPubKeyHash AddressType = iota

	// AddressScriptHash is an address for a pay-to-script-hash output.
	AddressScriptHash
)

// String returns the AddressType in human-readable form.
func (t AddressType) String() string {
	switch t {
	case AddressPubKeyHash:
		return "pubkeyhash"
	case AddressScriptHash:
		return "scripthash"
	}
	return "unknown"
}

// Address is a payment destination: a 20-byte digest of either a public key
// or a script, together with the kind of digest it is. The zero value is an
// unset pay-to-pubkey-hash address holding ZeroHash160.
//
// An Address carries no network information. The per-network version-byte
// table is supplied through chaincfg.Params at encode and decode time, so a
// single Address value can be rendered for any configured network.
type Address struct {
	addrType AddressType
	hash     [Hash160Size]byte
}

// NewAddressPubKeyHash returns a new pay-to-pubkey-hash Address. pkHash must
// be exactly Hash160Size bytes.
func NewAddressPubKeyHash(pkHash []byte) (*Address, error) {
	return newAddress(AddressPubKeyHash, pkHash)
}

// NewAddressPubKeyHashFromPublicKey returns a new pay-to-pubkey-hash Address
// for the given serialized public key, hashing it first.
func NewAddressPubKeyHashFromPublicKey(serializedPubKey []byte) (*Address, error) {
	return newAddress(AddressPubKeyHash, Hash160(serializedPubKey))
}

// NewAddressScriptHash returns a new pay-to-script-hash Address for the given
// serialized script, hashing it first.
func NewAddressScriptHash(serializedScript []byte) (*Address, error) {
	return newAddress(AddressScriptHash, Hash160(serializedScript))
}

// NewAddressScriptHashFromHash returns a new pay-to-script-hash Address.
// scriptHash must be exactly Hash160Size bytes.
func NewAddressScriptHashFromHash(scriptHash []byte) (*Address, error) {
	return newAddress(AddressScriptHash, scriptHash)
}

// newAddress is the internal constructor shared by the exported variants. It
// enforces the fixed digest length so every constructed Address upholds the
// length invariant.
func newAddress(addrType AddressType, hash []byte) (*Address, error) {
	if len(hash) != Hash160Size {
		return nil, errors.Wrapf(ErrAddressWrongLength, "digest is %d bytes, "+
			"must be %d", len(hash), Hash160Size)
	}
	addr := &Address{addrType: addrType}
	copy(addr.hash[:], hash)
	return addr, nil
}

// NewAddressFromVersion returns a new Address whose kind is looked up from
// the given version byte in the network's version-byte table. It errors with
// chaincfg.ErrUnknownAddrID when the byte is absent from the table.
func NewAddressFromVersion(version byte, hash []byte, net *chaincfg.Params) (*Address, error) {
	addrType, err := AddressTypeForVersion(version, net)
	if err != nil {
		return nil, err
	}
	return newAddress(addrType, hash)
}

// DecodeAddress decodes the base58-check string encoding of an address and
// returns the Address it represents. The leading version byte is mapped
// through the network's version-byte table.
//
// Any failure (bad base58 character, wrong decoded length, checksum
// mismatch, unrecognized version byte) returns an error and no Address, so
// a caller never observes a partially-decoded result.
func DecodeAddress(addr string, net *chaincfg.Params) (*Address, error) {
	decoded, err := base58.CheckDecode(addr)
	if err != nil {
		if errors.Is(err, base58.ErrChecksum) {
			return nil, ErrChecksumMismatch
		}
		return nil, errors.Wrap(err, "decoded address is of unknown format")
	}
	if len(decoded) != Hash160Size+1 {
		return nil, errors.Wrapf(ErrAddressWrongLength, "decoded address is "+
			"%d bytes", len(decoded))
	}
	return NewAddressFromVersion(decoded[0], decoded[1:], net)
}

// EncodeAddress returns the base58-check string encoding of the address for
// the given network: version byte, the 20-byte digest and a 4-byte checksum.
// Encoding is deterministic and cannot fail.
func (a *Address) EncodeAddress(net *chaincfg.Params) string {
	payload := make([]byte, 0, Hash160Size+1)
	payload = append(payload, a.version(net))
	payload = append(payload, a.hash[:]...)
	return base58.CheckEncode(payload)
}

// Type returns the kind of payment destination the address refers to.
func (a *Address) Type() AddressType {
	return a.addrType
}

// Hash160 returns the underlying array of the address digest.
func (a *Address) Hash160() *[Hash160Size]byte {
	return &a.hash
}

// ScriptAddress returns the raw bytes of the digest to push onto a script.
func (a *Address) ScriptAddress() []byte {
	return a.hash[:]
}

// IsEqual returns whether other refers to the same destination: the same
// kind and the same digest. Under any single network's version-byte table
// this holds exactly when the full encoded payloads would be identical.
func (a *Address) IsEqual(other *Address) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.addrType == other.addrType && a.hash == other.hash
}

// AddressKey is a string suitable for indexing addresses in a map. Unlike
// Address itself it bakes in the network's version byte, so keys built for
// different networks never collide.
type AddressKey string

// Key returns the AddressKey of the address under the given network: the
// version byte followed by the digest, which is exactly the payload that
// EncodeAddress checksums.
func (a *Address) Key(net *chaincfg.Params) AddressKey {
	var buf [Hash160Size + 1]byte
	buf[0] = a.version(net)
	copy(buf[1:], a.hash[:])
	return AddressKey(buf[:])
}

// version maps the address kind through the network's version-byte table.
func (a *Address) version(net *chaincfg.Params) byte {
	version, err := VersionForAddressType(a.addrType, net)
	if err != nil {
		// The exported constructors only produce known kinds.
		panic("unknown address type " + a.addrType.String())
	}
	return version
}

// VersionForAddressType maps an address kind to its version byte under the
// given network's version-byte table.
func VersionForAddressType(addrType AddressType, net *chaincfg.Params) (byte, error) {
	switch addrType {
	case AddressPubKeyHash:
		return net.PubKeyHashAddrID, nil
	case AddressScriptHash:
		return net.ScriptHashAddrID, nil
	}
	return 0, errors.Wrapf(ErrUnknownAddressType, "address type %d", int(addrType))
}

// AddressTypeForVersion is the inverse of VersionForAddressType. It errors
// with chaincfg.ErrUnknownAddrID when the byte is not present in the
// network's version-byte table.
func AddressTypeForVersion(version byte, net *chaincfg.Params) (AddressType, error) {
	switch version {
	case net.PubKeyHashAddrID:
		return AddressPubKeyHash, nil
	case net.ScriptHashAddrID:
		return AddressScriptHash, nil
	}
	return 0, errors.Wrapf(chaincfg.ErrUnknownAddrID, "version byte %d", version)
}
