package config

import (
	"fmt"
	"time"
)

type ShutdownConfig struct {
	Timeout time.Duration `koanf:"timeout" validate:"required,gt=0"`
}

func (c *ShutdownConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid shutdown config: %w", err)
	}
	return nil
}
