// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks the merged and defaulted [StructuredConfig].
// Runtime values are display strings and are never validated.
func (cfg *StructuredConfig) validate() error {
	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.Log.Level)
	}

	if cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
