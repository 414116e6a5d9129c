// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error

	// parseFlags is swapped in tests to avoid touching flag.CommandLine.
	parseFlags func() (*StructuredConfig, error)
	// environ replaces the process environment when set.
	environ map[string]string
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs:    make([]*StructuredConfig, 0, 4),
		parseFlags: ParseFlags,
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg, err := parseEnv(b.environ)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags, err := b.parseFlags()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withFile() *configBuilder {
	var path string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			path = cfg.JSONFilePath
		}
	}

	if path == "" {
		return b
	}

	fileCfg, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, fileCfg)

	return b
}

// withDefaults fills fields that no source has set. It must run last.
func (b *configBuilder) withDefaults() *configBuilder {
	defaults := Defaults()

	merged := make([]*StructuredConfig, 0, len(b.configs)+1)
	merged = append(merged, defaults)
	merged = append(merged, b.configs...)
	b.configs = merged

	return b
}
