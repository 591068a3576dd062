package utils

import (
	"time"

	"github.com/urfave/cli/v2"

	"github.com/anyswap/stobject/log"
	"github.com/anyswap/stobject/params"
)

var (
	// ConfigFileFlag --config
	ConfigFileFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Specify config file",
	}
	// VerbosityFlag --verbosity
	VerbosityFlag = &cli.Uint64Flag{
		Name:    "verbosity",
		Aliases: []string{"v"},
		Usage:   "log verbosity (0:panic, 1:fatal, 2:error, 3:warn, 4:info, 5:debug, 6:trace)",
		Value:   4,
	}
	// JSONFormatFlag --json
	JSONFormatFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "output log in json format",
	}
	// ColorFormatFlag --color
	ColorFormatFlag = &cli.BoolFlag{
		Name:  "color",
		Usage: "output log in color text format",
		Value: true,
	}
	// LogFileFlag --log
	LogFileFlag = &cli.StringFlag{
		Name:  "log",
		Usage: "also write log to a daily rotated file",
	}
	// DataDirFlag --datadir
	DataDirFlag = &cli.StringFlag{
		Name:  "datadir",
		Usage: "record store directory (overrides config)",
	}
	// MaxDepthFlag --maxdepth
	MaxDepthFlag = &cli.IntFlag{
		Name:  "maxdepth",
		Usage: "maximum nesting of decoded objects (overrides config)",
	}
)

// CommonFlags are accepted by every command.
var CommonFlags = []cli.Flag{
	ConfigFileFlag,
	VerbosityFlag,
	JSONFormatFlag,
	ColorFormatFlag,
	LogFileFlag,
}

// SetLogger applies log flags, falling back to the loaded config.
func SetLogger(ctx *cli.Context) {
	cfg := params.GetLogConfig()
	logLevel := uint32(ctx.Uint64(VerbosityFlag.Name))
	if !ctx.IsSet(VerbosityFlag.Name) {
		logLevel = cfg.Verbosity
	}
	jsonFormat := ctx.Bool(JSONFormatFlag.Name) || cfg.JSONFormat
	colorFormat := ctx.Bool(ColorFormatFlag.Name)
	if !ctx.IsSet(ColorFormatFlag.Name) {
		colorFormat = cfg.ColorFormat
	}
	log.SetLogger(logLevel, jsonFormat, colorFormat)

	logFile := ctx.String(LogFileFlag.Name)
	if logFile == "" {
		logFile = cfg.LogFile
	}
	rotation := time.Duration(cfg.Rotation) * time.Hour
	maxAge := time.Duration(cfg.MaxAge) * time.Hour
	if err := log.SetLogFile(logFile, rotation, maxAge); err != nil {
		log.Fatalf("set log file failed: %v", err)
	}
}

// GetConfigFilePath --config value
func GetConfigFilePath(ctx *cli.Context) string {
	return ctx.String(ConfigFileFlag.Name)
}
