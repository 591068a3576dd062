package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/anyswap/stobject/common"
	"github.com/anyswap/stobject/crypto"
	"github.com/anyswap/stobject/log"
	"github.com/anyswap/stobject/sfield"
	"github.com/anyswap/stobject/stobject"
)

var (
	hashCommand = &cli.Command{
		Action:    hashAction,
		Name:      "hash",
		Usage:     "print the prefixed hash of a hex encoded object",
		ArgsUsage: "<hex>",
		Flags:     append(decodeFlags, prefixFlag, skipFlag, &cli.BoolFlag{Name: "signing", Usage: "hash the signing encoding"}),
	}
	signCommand = &cli.Command{
		Action:    signAction,
		Name:      "sign",
		Usage:     "sign a hex encoded transaction and print the signed encoding",
		ArgsUsage: "<hex>",
		Flags:     append(decodeFlags, seedFlag, keyTypeFlag, keyseqFlag),
	}
	verifyCommand = &cli.Command{
		Action:    verifyAction,
		Name:      "verify",
		Usage:     "check the signature of a hex encoded transaction",
		ArgsUsage: "<hex>",
		Flags:     decodeFlags,
	}
)

func hashAction(ctx *cli.Context) error {
	r, err := readRecord(ctx)
	if err != nil {
		return err
	}
	prefix, err := stobject.ParseHashPrefix(strings.ToUpper(ctx.String(prefixFlag.Name)))
	if err != nil {
		return err
	}
	var h stobject.Hash256
	if ctx.Bool("signing") || ctx.IsSet(skipFlag.Name) {
		var skip *sfield.Field
		if name := ctx.String(skipFlag.Name); name != "" {
			f, ok := sfield.Default.ByName(name)
			if !ok {
				return fmt.Errorf("unknown field %q", name)
			}
			skip = f
		}
		h, err = r.SigningHash(prefix, skip)
	} else {
		h, err = r.Hash(prefix)
	}
	if err != nil {
		return err
	}
	fmt.Println(h)
	return nil
}

// parseSeed accepts a base58 family seed or 16 bytes of hex.
func parseSeed(s string) ([]byte, error) {
	if strings.HasPrefix(s, "s") {
		return crypto.DecodeBase58(s, crypto.FamilySeedVersion)
	}
	return common.FromHex(s)
}

func newKey(ctx *cli.Context) (crypto.Key, *uint32, error) {
	seed, err := parseSeed(ctx.String(seedFlag.Name))
	if err != nil {
		return nil, nil, fmt.Errorf("bad seed: %w", err)
	}
	switch ctx.String(keyTypeFlag.Name) {
	case "ed25519":
		k, err := crypto.NewEd25519Key(seed)
		return k, nil, err
	case "secp256k1":
		seq := uint32(ctx.Uint(keyseqFlag.Name))
		k, err := crypto.NewECDSAKey(seed)
		return k, &seq, err
	default:
		return nil, nil, fmt.Errorf("unknown key type %q", ctx.String(keyTypeFlag.Name))
	}
}

func signAction(ctx *cli.Context) error {
	r, err := readRecord(ctx)
	if err != nil {
		return err
	}
	k, seq, err := newKey(ctx)
	if err != nil {
		return err
	}
	if err := stobject.Sign(r, k, seq); err != nil {
		return err
	}
	b, err := r.Bytes()
	if err != nil {
		return err
	}
	id, err := r.TransactionID()
	if err != nil {
		return err
	}
	log.Info("signed transaction", "hash", id)
	fmt.Println(common.ToHex(b))
	return nil
}

func verifyAction(ctx *cli.Context) error {
	r, err := readRecord(ctx)
	if err != nil {
		return err
	}
	ok, err := stobject.CheckSignature(r)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("signature does not verify")
	}
	fmt.Println("signature ok")
	return nil
}
