package main

import "flag"

// arguments mirrors AU-HC-mayo-go's flags.ApplicationArguments: a flat
// struct of the CLI's options, parsed once via the stdlib flag package
// rather than a subcommand framework (no cobra/urfave/kingpin import
// appears anywhere in the retrieval pack, so this module doesn't reach for
// one either).
type arguments struct {
	Mode       string
	ParamsTag  uint
	SecretKey  string
	PublicKey  string
	Message    string
	Signature  string
	Prescribed string
}

func parseArguments() *arguments {
	a := &arguments{}
	flag.StringVar(&a.Mode, "mode", "", "keygen | sign | verify")
	flag.UintVar(&a.ParamsTag, "tag", 1, "parameter set tag")
	flag.StringVar(&a.SecretKey, "sk", "sk.bin", "secret key file path")
	flag.StringVar(&a.PublicKey, "pk", "pk.bin", "public key file path")
	flag.StringVar(&a.Message, "msg", "", "raw message file path (ignored if -prescription is set)")
	flag.StringVar(&a.Signature, "sig", "sig.bin", "signature file path")
	flag.StringVar(&a.Prescribed, "prescription", "", "JSON-encoded prescription file path")
	flag.Parse()
	return a
}
