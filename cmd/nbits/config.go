package main

import (
	"github.com/jessevdk/go-flags"
)

type configFlags struct {
	Encode bool `short:"e" long:"encode" description:"Treat the argument as a target in hex and print its compact representation instead of decoding one"`
	Args   struct {
		Value string `positional-arg-name:"value" description:"Compact bits (hex, e.g. 1d00ffff) or, with --encode, a target in hex"`
	} `positional-args:"true" required:"true"`
}

func parseConfig() (*configFlags, error) {
	cfg := &configFlags{}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)
	_, err := parser.Parse()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
