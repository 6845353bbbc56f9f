// Package config holds the shared configuration blocks used by the service.
package config

import "github.com/go-playground/validator/v10"

// validate is the shared validator instance for all config blocks.
var validate = validator.New(validator.WithRequiredStructEnabled())
