package config

import "fmt"

type GrpcServerConfig struct {
	Port              string `koanf:"port" validate:"required"`
	ReflectionEnabled bool   `koanf:"reflection"`
}

func (c *GrpcServerConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid gRPC server config: %w", err)
	}
	return nil
}
