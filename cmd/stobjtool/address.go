package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/anyswap/stobject/common"
	"github.com/anyswap/stobject/sfield"
	"github.com/anyswap/stobject/stobject"
)

var (
	addressCommand = &cli.Command{
		Action: addressAction,
		Name:   "address",
		Usage:  "derive an account address from a public key or seed",
		Flags:  []cli.Flag{pubkeyFlag, seedFlag, keyTypeFlag, keyseqFlag},
	}
	fieldsCommand = &cli.Command{
		Action: fieldsAction,
		Name:   "fields",
		Usage:  "list the known fields in canonical order",
	}
)

func addressAction(ctx *cli.Context) error {
	var pub []byte
	var err error
	switch {
	case ctx.IsSet(pubkeyFlag.Name):
		pub, err = common.FromHex(ctx.String(pubkeyFlag.Name))
	case ctx.IsSet(seedFlag.Name):
		k, seq, kerr := newKey(ctx)
		if kerr != nil {
			return kerr
		}
		pub, err = k.Public(seq)
	default:
		return fmt.Errorf("specify --pubkey or --seed")
	}
	if err != nil {
		return err
	}
	fmt.Printf("public key: %v\n", common.ToHex(pub))
	fmt.Printf("address: %v\n", stobject.AccountFromPublicKey(pub))
	return nil
}

func fieldsAction(ctx *cli.Context) error {
	for _, f := range sfield.Default.Fields() {
		signing := ""
		if !f.IsSigning() {
			signing = " (not signing)"
		}
		fmt.Printf("%-8v %-10v %s%s\n", f.SortKey(), f.Type, f.Name, signing)
	}
	return nil
}
