package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/anyswap/stobject/cmd/utils"
	"github.com/anyswap/stobject/log"
)

var (
	clientIdentifier = "stobjtool"
	gitCommit        = ""
	gitDate          = ""
	app              = utils.NewApp(clientIdentifier, gitCommit, gitDate, "inspect, hash, sign and store serialized ledger objects")
)

func main() {
	initApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initApp() {
	app.Action = stobjtool
	app.Before = utils.Setup
	app.After = func(*cli.Context) error { return log.Close() }
	app.Commands = []*cli.Command{
		decodeCommand,
		showCommand,
		hashCommand,
		signCommand,
		verifyCommand,
		putCommand,
		getCommand,
		listCommand,
		addressCommand,
		fieldsCommand,
		utils.VersionCommand,
	}
	app.Flags = utils.CommonFlags
}

func stobjtool(ctx *cli.Context) error {
	if ctx.NArg() > 0 {
		return fmt.Errorf("invalid command: %q", ctx.Args().Get(0))
	}
	_ = cli.ShowAppHelp(ctx)
	fmt.Println()
	return fmt.Errorf("please specify a sub command to run")
}
