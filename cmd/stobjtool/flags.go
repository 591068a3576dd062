package main

import (
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/anyswap/stobject/cmd/utils"
	"github.com/anyswap/stobject/common"
	"github.com/anyswap/stobject/stobject"
)

var (
	fileFlag = &cli.StringFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Usage:   "read the hex encoding from a file instead of the argument",
	}
	formatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "bind to formats: tx, ledger or none",
		Value: "tx",
	}
	prefixFlag = &cli.StringFlag{
		Name:  "prefix",
		Usage: "hash prefix (TXN, STX, SMT, MLN, MIN, LWR, SND, VAL, PRP, MAN)",
		Value: "TXN",
	}
	skipFlag = &cli.StringFlag{
		Name:  "skip",
		Usage: "field left out of the signing encoding (default: all non signing fields)",
	}
	seedFlag = &cli.StringFlag{
		Name:  "seed",
		Usage: "family seed (base58 or hex)",
	}
	keyTypeFlag = &cli.StringFlag{
		Name:  "keytype",
		Usage: "secp256k1 or ed25519",
		Value: "secp256k1",
	}
	keyseqFlag = &cli.UintFlag{
		Name:  "keyseq",
		Usage: "secp256k1 account key sequence",
		Value: 0,
	}
	pubkeyFlag = &cli.StringFlag{
		Name:  "pubkey",
		Usage: "public key hex",
	}
	textFlag = &cli.BoolFlag{
		Name:  "text",
		Usage: "print the text rendering instead of JSON",
	}
)

var decodeFlags = []cli.Flag{fileFlag, formatFlag, utils.MaxDepthFlag}

// inputBytes reads the hex encoding from --file or the first argument.
func inputBytes(ctx *cli.Context) ([]byte, error) {
	s := ctx.Args().First()
	if path := ctx.String(fileFlag.Name); path != "" {
		b, err := ioutil.ReadFile(path)
		if err != nil {
			return nil, err
		}
		s = strings.TrimSpace(string(b))
	}
	if s == "" {
		return nil, fmt.Errorf("no hex encoding given")
	}
	return common.FromHex(s)
}

func decodeRecord(ctx *cli.Context, b []byte) (*stobject.Record, error) {
	d := utils.NewDecoder(ctx)
	switch format := ctx.String(formatFlag.Name); format {
	case "tx":
		return stobject.TxFormats.DecodeWith(d, b)
	case "ledger":
		return stobject.LedgerFormats.DecodeWith(d, b)
	case "none":
		return d.Decode(b, nil)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// readRecord decodes the command input.
func readRecord(ctx *cli.Context) (*stobject.Record, error) {
	b, err := inputBytes(ctx)
	if err != nil {
		return nil, err
	}
	return decodeRecord(ctx, b)
}
