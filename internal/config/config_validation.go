// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the sentinel errors
// from errors.go wrapped with details otherwise.
func (cfg *StructuredConfig) validate() error {
	u, err := url.Parse(strings.TrimSpace(cfg.Portal.LoginURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: login url %q must be absolute", ErrInvalidPortalConfigs, cfg.Portal.LoginURL)
	}
	if cfg.Portal.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidPortalConfigs)
	}

	if strings.TrimSpace(cfg.Probe.Host) == "" {
		return fmt.Errorf("%w: empty host", ErrInvalidProbeConfigs)
	}
	if cfg.Probe.Timeout < 0 || cfg.Probe.AttemptTimeout <= 0 || cfg.Probe.RetryInterval <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidProbeConfigs)
	}

	if cfg.Storage.CredentialsFile == "" || cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.LoginInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if strings.TrimSpace(cfg.AutoStart.TaskName) == "" {
		return ErrInvalidAutoStartConfigs
	}

	return nil
}
