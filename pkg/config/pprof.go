package config

import "fmt"

type PProfConfig struct {
	Enabled bool   `koanf:"enabled"`
	Addr    string `koanf:"addr" validate:"required_if=Enabled true"`
}

func (c *PProfConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid pprof config: %w", err)
	}
	return nil
}
