package config

import (
	"fmt"
	"time"
)

type HTTPConfig struct {
	Port           int   `koanf:"port" validate:"required,gte=1,lte=65535"`
	MaxHeaderBytes int   `koanf:"maxHeaderBytes" validate:"gte=0"`
	MaxBodyBytes   int64 `koanf:"maxBodyBytes" validate:"gte=0"`
	Timeout        struct {
		Read       time.Duration `koanf:"read" validate:"required,gt=0"`
		Write      time.Duration `koanf:"write" validate:"required,gt=0"`
		Idle       time.Duration `koanf:"idle" validate:"required,gt=0"`
		ReadHeader time.Duration `koanf:"readHeader" validate:"required,gt=0"`
	} `koanf:"timeout"`
}

func (c *HTTPConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid HTTP server config: %w", err)
	}
	return nil
}
