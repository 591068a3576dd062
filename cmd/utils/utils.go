package utils

import (
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/anyswap/stobject/params"
	"github.com/anyswap/stobject/stobject"
	"github.com/anyswap/stobject/store"
)

var (
	clientIdentifier string
	gitCommit        string
	gitDate          string
)

// NewApp creates an app with sane defaults.
func NewApp(identifier, gitcommit, gitdate, usage string) *cli.App {
	clientIdentifier = identifier
	gitCommit = gitcommit
	gitDate = gitdate
	app := cli.NewApp()
	app.Name = filepath.Base(os.Args[0])
	app.Version = params.VersionWithCommit(gitCommit, gitDate)
	app.Usage = usage
	return app
}

// Setup loads the config named by --config and installs the logger. It is
// meant as the app's Before hook.
func Setup(ctx *cli.Context) error {
	params.LoadConfig(GetConfigFilePath(ctx))
	SetLogger(ctx)
	return nil
}

// NewDecoder returns the standard decoder bounded by the configured depth.
func NewDecoder(ctx *cli.Context) *stobject.Decoder {
	d := stobject.NewDecoder()
	d.MaxDepth = params.GetCodecConfig().MaxDepth
	if ctx.IsSet(MaxDepthFlag.Name) {
		d.MaxDepth = ctx.Int(MaxDepthFlag.Name)
	}
	return d
}

// OpenRecordDB opens the configured leveldb record store.
func OpenRecordDB(ctx *cli.Context, prefix stobject.HashPrefix, readonly bool) (*store.RecordDB, func() error, error) {
	cfg := params.GetStoreConfig()
	dataDir := cfg.DataDir
	if ctx.IsSet(DataDirFlag.Name) {
		dataDir = ctx.String(DataDirFlag.Name)
	}
	db, err := store.New(dataDir, cfg.Cache, cfg.Handles, readonly || cfg.ReadOnly)
	if err != nil {
		return nil, nil, err
	}
	return store.NewRecordDB(db, prefix, NewDecoder(ctx)), db.Close, nil
}
