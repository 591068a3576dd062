package params

import (
	"errors"
	"fmt"
)

const maxDecodeDepth = 64

// CheckConfig check config
func (c *Config) CheckConfig() (err error) {
	if c.Codec == nil {
		return errors.New("must config 'Codec'")
	}
	if err = c.Codec.CheckConfig(); err != nil {
		return err
	}
	if c.Store == nil {
		return errors.New("must config 'Store'")
	}
	if err = c.Store.CheckConfig(); err != nil {
		return err
	}
	if c.Log != nil {
		if err = c.Log.CheckConfig(); err != nil {
			return err
		}
	}
	return nil
}

// CheckConfig check codec config
func (c *CodecConfig) CheckConfig() error {
	if c.MaxDepth < 1 || c.MaxDepth > maxDecodeDepth {
		return fmt.Errorf("codec 'MaxDepth' %v out of range [1, %v]", c.MaxDepth, maxDecodeDepth)
	}
	return nil
}

// CheckConfig check store config
func (c *StoreConfig) CheckConfig() error {
	if c.DataDir == "" {
		return errors.New("store must config non empty 'DataDir'")
	}
	if c.Cache < 0 || c.Handles < 0 {
		return errors.New("store 'Cache' and 'Handles' must not be negative")
	}
	return nil
}

// CheckConfig check log config
func (c *LogConfig) CheckConfig() error {
	if c.Verbosity > 6 {
		return fmt.Errorf("log 'Verbosity' %v out of range [0, 6]", c.Verbosity)
	}
	if c.LogFile != "" && c.MaxAge < c.Rotation {
		return errors.New("log 'MaxAge' must not be shorter than 'Rotation'")
	}
	return nil
}
