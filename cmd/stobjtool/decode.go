package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/anyswap/stobject/common"
	"github.com/anyswap/stobject/log"
)

var (
	decodeCommand = &cli.Command{
		Action:    decodeAction,
		Name:      "decode",
		Usage:     "decode a hex encoded object and print it",
		ArgsUsage: "<hex>",
		Flags:     append(decodeFlags, textFlag),
	}
)

func decodeAction(ctx *cli.Context) error {
	r, err := readRecord(ctx)
	if err != nil {
		return err
	}
	if ctx.Bool(textFlag.Name) {
		fmt.Println(r.FullText())
		return nil
	}
	out, err := r.MarshalIndent()
	if err != nil {
		return err
	}
	fmt.Println(string(out))

	b, err := r.Bytes()
	if err != nil {
		return err
	}
	log.Info("decoded record", "fields", r.Len(), "size", common.StorageSize(len(b)), "valid", r.IsValidForType())
	return nil
}
