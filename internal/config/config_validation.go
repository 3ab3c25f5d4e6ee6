// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost must be in range %d-%d", ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	}

	if cfg.App.GenerationDailyLimit <= 0 || cfg.App.GenerationWindow <= 0 {
		return fmt.Errorf("%w: generation limit and window must be positive", ErrInvalidAppConfigs)
	}

	if cfg.App.GuestTTL <= 0 {
		return fmt.Errorf("%w: guest ttl must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}

	if cfg.Workers.ReapInterval <= 0 || cfg.Workers.ReapBatchSize <= 0 {
		return fmt.Errorf("%w: reap interval and batch size must be positive", ErrInvalidWorkerConfigs)
	}

	if cfg.Storage.Redis.Address != "" && (cfg.App.GuestRateLimit <= 0 || cfg.App.GuestRateWindow <= 0) {
		return fmt.Errorf("%w: guest rate limit requires a positive limit and window", ErrInvalidStorageConfigs)
	}

	return nil
}
