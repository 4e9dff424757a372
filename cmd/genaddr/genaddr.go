package main

import (
	"fmt"
	"os"

	"github.com/kaspanet/go-secp256k1"
	"github.com/pkg/errors"

	"github.com/cruxnet/cruxd/util"
	"github.com/cruxnet/cruxd/util/base58"
)

func main() {
	cfg, err := parseConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse config: %s\n", err)
		os.Exit(1)
	}

	err = genAddr(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func genAddr(cfg *configFlags) error {
	privateKey, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return errors.Wrap(err, "Failed to generate private key")
	}

	fmt.Println("This is your private key, granting access to all funds sent to the address below. Keep it safe.")
	fmt.Printf("Private key (base-58):\t%s\n\n", base58.Encode(privateKey.SerializePrivateKey()[:]))

	publicKey, err := privateKey.SchnorrPublicKey()
	if err != nil {
		return errors.Wrap(err, "Failed to generate public key")
	}
	publicKeySerialized, err := publicKey.Serialize()
	if err != nil {
		return errors.Wrap(err, "Failed to serialize public key")
	}

	addr, err := util.NewAddressPubKeyHashFromPublicKey(publicKeySerialized[:])
	if err != nil {
		return errors.Wrap(err, "Failed to generate p2pkh address")
	}
	fmt.Printf("Address (%s):\t%s\n", cfg.NetParams().Name, addr.EncodeAddress(cfg.NetParams()))

	return nil
}
