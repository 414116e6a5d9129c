// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the env-tagged fields of [StructuredConfig] from environ,
// or from the process environment when environ is nil. Surrounding
// whitespace is trimmed from every value, which matters for values pasted
// into Windows environment dialogs.
//
// Launch flags are never read from the environment.
func parseEnv(environ map[string]string) (*StructuredConfig, error) {
	if environ == nil {
		environ = processEnviron()
	}

	trimmed := make(map[string]string, len(environ))
	for k, v := range environ {
		trimmed[k] = strings.TrimSpace(v)
	}

	cfg, err := env.ParseAsWithOptions[StructuredConfig](env.Options{Environment: trimmed})
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}
	cfg.Launch = LaunchFlags{}

	return &cfg, nil
}

func processEnviron() map[string]string {
	environ := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			environ[k] = v
		}
	}
	return environ
}
