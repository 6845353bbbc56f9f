package config

import (
	"fmt"
	"time"
)

type NATSConfig struct {
	Enabled bool          `koanf:"enabled"`
	Url     string        `koanf:"url" validate:"required_if=Enabled true"`
	Timeout time.Duration `koanf:"timeout" validate:"required_if=Enabled true"`
}

func (c *NATSConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid NATS config: %w", err)
	}
	return nil
}
