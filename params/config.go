package params

import (
	"fmt"
	"sync"

	"github.com/BurntSushi/toml"
	json "github.com/goccy/go-json"

	"github.com/anyswap/stobject/common"
	"github.com/anyswap/stobject/log"
)

const (
	defaultMaxDepth = 10
	defaultCache    = 16
	defaultHandles  = 16
	defaultDataDir  = "stobject-data"

	defaultVerbosity = 4
	defaultRotation  = 24 // hours
	defaultMaxLogAge = 7 * 24
)

var (
	stobjConfig       *Config
	loadConfigStarter sync.Once
)

// Config config items (decode from toml file)
type Config struct {
	Codec *CodecConfig `toml:",omitempty" json:",omitempty"`
	Store *StoreConfig `toml:",omitempty" json:",omitempty"`
	Log   *LogConfig   `toml:",omitempty" json:",omitempty"`
}

// CodecConfig decoding limits
type CodecConfig struct {
	MaxDepth int
}

// StoreConfig leveldb record store
type StoreConfig struct {
	DataDir  string
	Cache    int // MiB
	Handles  int
	ReadOnly bool `toml:",omitempty" json:",omitempty"`
}

// LogConfig logger options
type LogConfig struct {
	Verbosity   uint32
	JSONFormat  bool
	ColorFormat bool
	LogFile     string `toml:",omitempty" json:",omitempty"`
	Rotation    uint64 // hours
	MaxAge      uint64 // hours
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() *Config {
	return &Config{
		Codec: &CodecConfig{MaxDepth: defaultMaxDepth},
		Store: &StoreConfig{
			DataDir: defaultDataDir,
			Cache:   defaultCache,
			Handles: defaultHandles,
		},
		Log: &LogConfig{
			Verbosity:   defaultVerbosity,
			ColorFormat: true,
			Rotation:    defaultRotation,
			MaxAge:      defaultMaxLogAge,
		},
	}
}

// fillDefaults completes sections omitted from the config file.
func (c *Config) fillDefaults() {
	def := DefaultConfig()
	if c.Codec == nil {
		c.Codec = def.Codec
	}
	if c.Codec.MaxDepth == 0 {
		c.Codec.MaxDepth = defaultMaxDepth
	}
	if c.Store == nil {
		c.Store = def.Store
	}
	if c.Store.DataDir == "" {
		c.Store.DataDir = defaultDataDir
	}
	if c.Log == nil {
		c.Log = def.Log
	}
	if c.Log.Rotation == 0 {
		c.Log.Rotation = defaultRotation
	}
	if c.Log.MaxAge == 0 {
		c.Log.MaxAge = defaultMaxLogAge
	}
}

// GetConfig get config, the defaults if none is loaded
func GetConfig() *Config {
	if stobjConfig == nil {
		return DefaultConfig()
	}
	return stobjConfig
}

// SetConfig set config
func SetConfig(config *Config) {
	stobjConfig = config
}

// GetCodecConfig get codec config
func GetCodecConfig() *CodecConfig {
	return GetConfig().Codec
}

// GetStoreConfig get store config
func GetStoreConfig() *StoreConfig {
	return GetConfig().Store
}

// GetLogConfig get log config
func GetLogConfig() *LogConfig {
	return GetConfig().Log
}

// ReadConfig decodes and checks a config file without installing it.
func ReadConfig(configFile string) (*Config, error) {
	if !common.FileExist(configFile) {
		return nil, fmt.Errorf("config file %v not exist", configFile)
	}
	config := &Config{}
	if _, err := toml.DecodeFile(configFile, config); err != nil {
		return nil, fmt.Errorf("toml DecodeFile: %w", err)
	}
	config.fillDefaults()
	if err := config.CheckConfig(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadConfig load config once; an empty path installs the defaults.
func LoadConfig(configFile string) *Config {
	loadConfigStarter.Do(func() {
		if configFile == "" {
			SetConfig(DefaultConfig())
			return
		}
		log.Println("Config file is", configFile)
		config, err := ReadConfig(configFile)
		if err != nil {
			log.Fatalf("LoadConfig error: %v", err)
		}
		SetConfig(config)
		var bs []byte
		if log.JSONFormat {
			bs, _ = json.Marshal(config)
		} else {
			bs, _ = json.MarshalIndent(config, "", "  ")
		}
		log.Println("LoadConfig finished.", string(bs))
	})
	return stobjConfig
}
