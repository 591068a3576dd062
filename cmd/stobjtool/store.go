package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/anyswap/stobject/cmd/utils"
	"github.com/anyswap/stobject/log"
	"github.com/anyswap/stobject/stobject"
)

var (
	putCommand = &cli.Command{
		Action:    putAction,
		Name:      "put",
		Usage:     "store a hex encoded object keyed by its prefixed hash",
		ArgsUsage: "<hex>",
		Flags:     append(decodeFlags, prefixFlag, utils.DataDirFlag),
	}
	getCommand = &cli.Command{
		Action:    getAction,
		Name:      "get",
		Usage:     "load a stored object by hash",
		ArgsUsage: "<hash>",
		Flags:     []cli.Flag{formatFlag, textFlag, utils.DataDirFlag, utils.MaxDepthFlag},
	}
	listCommand = &cli.Command{
		Action: listAction,
		Name:   "list",
		Usage:  "list stored object hashes",
		Flags:  []cli.Flag{utils.DataDirFlag},
	}
)

func putAction(ctx *cli.Context) error {
	r, err := readRecord(ctx)
	if err != nil {
		return err
	}
	prefix, err := stobject.ParseHashPrefix(ctx.String(prefixFlag.Name))
	if err != nil {
		return err
	}
	rdb, closeDB, err := utils.OpenRecordDB(ctx, prefix, false)
	if err != nil {
		return err
	}
	defer closeDB()
	h, err := rdb.Put(r)
	if err != nil {
		return err
	}
	log.Info("put record", "hash", h, "prefix", prefix)
	fmt.Println(h)
	return nil
}

func getAction(ctx *cli.Context) error {
	h, err := stobject.NewHash256(ctx.Args().First())
	if err != nil {
		return err
	}
	rdb, closeDB, err := utils.OpenRecordDB(ctx, stobject.HP_TRANSACTION_ID, true)
	if err != nil {
		return err
	}
	defer closeDB()
	b, err := rdb.GetBytes(h)
	if err != nil {
		return err
	}
	r, err := decodeRecord(ctx, b)
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
	return nil
}

func listAction(ctx *cli.Context) error {
	rdb, closeDB, err := utils.OpenRecordDB(ctx, stobject.HP_TRANSACTION_ID, true)
	if err != nil {
		return err
	}
	defer closeDB()
	count := 0
	err = rdb.Each(func(h stobject.Hash256, b []byte) error {
		count++
		fmt.Printf("%v %d\n", h, len(b))
		return nil
	})
	log.Info("listed records", "count", count)
	return err
}
