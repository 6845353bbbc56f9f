package config

import "fmt"

type LogConfig struct {
	Level string `koanf:"level" validate:"omitempty,oneof=debug info warn error"`
}

func (c *LogConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid log config: %w", err)
	}
	return nil
}
