package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv overlays REWIND_* environment variables onto target
// Unset variables leave the existing field value untouched
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
