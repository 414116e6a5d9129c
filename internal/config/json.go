// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// StructuredFileConfig mirrors [StructuredConfig] for JSON and TOML files.
// Launch switches are not read from files.
type StructuredFileConfig struct {
	Portal struct {
		LoginURL       string   `json:"login_url" toml:"login_url"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
	} `json:"portal,omitempty" toml:"portal"`

	Probe struct {
		Host           string   `json:"host" toml:"host"`
		Timeout        Duration `json:"timeout" toml:"timeout"`
		AttemptTimeout Duration `json:"attempt_timeout" toml:"attempt_timeout"`
		RetryInterval  Duration `json:"retry_interval" toml:"retry_interval"`
	} `json:"probe,omitempty" toml:"probe"`

	Storage struct {
		CredentialsFile       string `json:"credentials_file" toml:"credentials_file"`
		LegacyCredentialsFile string `json:"legacy_credentials_file" toml:"legacy_credentials_file"`
		DB                    struct {
			DSN string `json:"dsn" toml:"dsn"`
		} `json:"db,omitempty" toml:"db"`
	} `json:"storage,omitempty" toml:"storage"`

	Workers struct {
		LoginInterval Duration `json:"login_interval" toml:"login_interval"`
	} `json:"workers,omitempty" toml:"workers"`

	AutoStart struct {
		TaskName string `json:"task_name" toml:"task_name"`
	} `json:"autostart,omitempty" toml:"autostart"`

	Log struct {
		Dir string `json:"dir" toml:"dir"`
	} `json:"log,omitempty" toml:"log"`
}

func parseFile(path string) (*StructuredConfig, error) {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return parseTOML(path)
	}
	return parseJSON(path)
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var fileCfg StructuredFileConfig
	if err := json.NewDecoder(jsonFile).Decode(&fileCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return fileCfg.toStructured(), nil
}

func parseTOML(tomlFilePath string) (*StructuredConfig, error) {
	var fileCfg StructuredFileConfig
	if _, err := toml.DecodeFile(tomlFilePath, &fileCfg); err != nil {
		return nil, fmt.Errorf("error decoding toml configs: %w", err)
	}

	return fileCfg.toStructured(), nil
}

func (f StructuredFileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		Portal: Portal{
			LoginURL:       f.Portal.LoginURL,
			RequestTimeout: time.Duration(f.Portal.RequestTimeout),
		},
		Probe: Probe{
			Host:           f.Probe.Host,
			Timeout:        time.Duration(f.Probe.Timeout),
			AttemptTimeout: time.Duration(f.Probe.AttemptTimeout),
			RetryInterval:  time.Duration(f.Probe.RetryInterval),
		},
		Storage: Storage{
			CredentialsFile:       f.Storage.CredentialsFile,
			LegacyCredentialsFile: f.Storage.LegacyCredentialsFile,
			DB:                    DB{DSN: f.Storage.DB.DSN},
		},
		Workers:   Workers{LoginInterval: time.Duration(f.Workers.LoginInterval)},
		AutoStart: AutoStart{TaskName: f.AutoStart.TaskName},
		Log:       Log{Dir: f.Log.Dir},
	}
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
// and TOML strings through encoding.TextUnmarshaler.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d *Duration) UnmarshalText(text []byte) error {
	tmp, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
