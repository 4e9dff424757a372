// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2024 The Crux developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"github.com/pkg/errors"

	"github.com/cruxnet/cruxd/util/bignum"
)

// CoinNet represents which crux network a message belongs to.
type CoinNet uint32

// Constants used to indicate the message crux network. They can also be
// used to seek to the next message when a stream's state is unknown, but
// this package does not provide that functionality since it's generally a
// better idea to simply disconnect clients that are misbehaving over TCP.
const (
	// MainNet represents the main crux network.
	MainNet CoinNet = 0xd9c4cbe7

	// TestNet3 represents the test network (version 3).
	TestNet3 CoinNet = 0x0709110b

	// RegressionNet represents the regression test network.
	RegressionNet CoinNet = 0xdab5bffa

	// SimNet represents the simulation test network.
	SimNet CoinNet = 0x12141c16
)

// bnNames maps crux networks to human-readable names.
var bnNames = map[CoinNet]string{
	MainNet:       "MainNet",
	TestNet3:      "TestNet3",
	RegressionNet: "RegressionNet",
	SimNet:        "SimNet",
}

// String returns the CoinNet in human-readable form.
func (n CoinNet) String() string {
	if s, ok := bnNames[n]; ok {
		return s
	}
	return "Unknown CoinNet"
}

// These variables are the proof-of-work limit parameters for each default
// network.
var (
	// bigOne is 1 represented as a bignum. It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = bignum.FromInt64(1)

	// mainPowMax is the highest proof of work value a crux block can
	// have for the main network. It is the value 2^224 - 1.
	mainPowMax = new(bignum.BigNum).Sub(new(bignum.BigNum).Lsh(bigOne, 224), bigOne)

	// regressionPowMax is the highest proof of work value a crux block
	// can have for the regression test network. It is the value 2^255 - 1.
	regressionPowMax = new(bignum.BigNum).Sub(new(bignum.BigNum).Lsh(bigOne, 255), bigOne)

	// testNet3PowMax is the highest proof of work value a crux block
	// can have for the test network (version 3). It is the value
	// 2^224 - 1.
	testNet3PowMax = new(bignum.BigNum).Sub(new(bignum.BigNum).Lsh(bigOne, 224), bigOne)

	// simNetPowMax is the highest proof of work value a crux block
	// can have for the simulation test network. It is the value 2^255 - 1.
	simNetPowMax = new(bignum.BigNum).Sub(new(bignum.BigNum).Lsh(bigOne, 255), bigOne)
)

// Params defines a crux network by its parameters. These parameters may be
// used by crux applications to differentiate networks as well as addresses
// for one network from those intended for use on another network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net CoinNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// PowMax defines the highest allowed proof of work value for a block
	// as a uint256.
	PowMax *bignum.BigNum

	// PowMaxBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowMaxBits uint32

	// Address encoding magics. These are the version bytes that prefix
	// the digest in an encoded payment address.
	PubKeyHashAddrID byte // First byte of a P2PKH address
	ScriptHashAddrID byte // First byte of a P2SH address
}

// MainNetParams defines the network parameters for the main crux network.
var MainNetParams = Params{
	Name:        "mainnet",
	Net:         MainNet,
	DefaultPort: "8433",

	// Chain parameters
	PowMax:     mainPowMax,
	PowMaxBits: 0x1d00ffff,

	// Address encoding magics
	PubKeyHashAddrID: 0x00, // starts with 1
	ScriptHashAddrID: 0x05, // starts with 3
}

// RegressionNetParams defines the network parameters for the regression test
// crux network. Not to be confused with the test network (version 3), this
// network is sometimes simply called "testnet".
var RegressionNetParams = Params{
	Name:        "regtest",
	Net:         RegressionNet,
	DefaultPort: "18533",

	// Chain parameters
	PowMax:     regressionPowMax,
	PowMaxBits: 0x207fffff,

	// Address encoding magics
	PubKeyHashAddrID: 0x6f, // starts with m or n
	ScriptHashAddrID: 0xc4, // starts with 2
}

// TestNet3Params defines the network parameters for the test crux network
// (version 3). Not to be confused with the regression test network, this
// network is sometimes simply called "testnet".
var TestNet3Params = Params{
	Name:        "testnet3",
	Net:         TestNet3,
	DefaultPort: "18433",

	// Chain parameters
	PowMax:     testNet3PowMax,
	PowMaxBits: 0x1d00ffff,

	// Address encoding magics
	PubKeyHashAddrID: 0x6f, // starts with m or n
	ScriptHashAddrID: 0xc4, // starts with 2
}

// SimNetParams defines the network parameters for the simulation test crux
// network. This network is similar to the normal test network except it is
// intended for private use within a group of individuals doing simulation
// testing.
var SimNetParams = Params{
	Name:        "simnet",
	Net:         SimNet,
	DefaultPort: "18555",

	// Chain parameters
	PowMax:     simNetPowMax,
	PowMaxBits: 0x207fffff,

	// Address encoding magics
	PubKeyHashAddrID: 0x3f, // starts with S
	ScriptHashAddrID: 0x7b, // starts with s
}

var (
	// ErrDuplicateNet describes an error where the parameters for a crux
	// network could not be set due to the network already being a standard
	// network or previously-registered into this package.
	ErrDuplicateNet = errors.New("duplicate crux network")

	// ErrUnknownAddrID describes an error where an address version byte
	// is not present in a network's version table.
	ErrUnknownAddrID = errors.New("unknown address version byte")
)

var (
	registeredNets = make(map[CoinNet]struct{})
)

// Register registers the network parameters for a crux network. This may
// error with ErrDuplicateNet if the network is already registered (either
// due to a previous Register call, or the network being one of the default
// networks).
//
// Network parameters should be registered into this package by a main package
// as early as possible. Then, library packages may lookup networks or network
// parameters based on inputs and work regardless of the network being standard
// or not.
func Register(params *Params) error {
	if _, ok := registeredNets[params.Net]; ok {
		return ErrDuplicateNet
	}
	registeredNets[params.Net] = struct{}{}

	return nil
}

// mustRegister performs the same function as Register except it panics if
// there is an error. This should only be called from package init functions.
func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

func init() {
	// Register all default networks when the package is initialized.
	mustRegister(&MainNetParams)
	mustRegister(&TestNet3Params)
	mustRegister(&RegressionNetParams)
	mustRegister(&SimNetParams)
}
