// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

// Default values for the campus gateway.
const (
	DefaultLoginURL       = "http://1.1.1.5/ac_portal/login.php"
	DefaultProbeHost      = "1.1.1.5"
	DefaultProbeTimeout   = 60 * time.Second
	DefaultAttemptTimeout = 2 * time.Second
	DefaultRetryInterval  = 3 * time.Second
	DefaultRequestTimeout = 10 * time.Second
	DefaultLoginInterval  = 10 * time.Minute
	DefaultTaskName       = "CampusAutoLogin"

	appDirName          = "CampusLogin"
	legacyAppDirName    = "CampusLoginUI"
	credentialsFileName = "config.ini"
	historyDBFileName   = "history.db"
)

// Defaults returns the configuration used when no source sets a value.
// Paths live under the user configuration directory, falling back to the
// working directory when it cannot be determined.
func Defaults() *StructuredConfig {
	dir := appDir(appDirName)

	return &StructuredConfig{
		Portal: Portal{
			LoginURL:       DefaultLoginURL,
			RequestTimeout: DefaultRequestTimeout,
		},
		Probe: Probe{
			Host:           DefaultProbeHost,
			Timeout:        DefaultProbeTimeout,
			AttemptTimeout: DefaultAttemptTimeout,
			RetryInterval:  DefaultRetryInterval,
		},
		Storage: Storage{
			CredentialsFile:       filepath.Join(dir, credentialsFileName),
			LegacyCredentialsFile: filepath.Join(appDir(legacyAppDirName), credentialsFileName),
			DB:                    DB{DSN: filepath.Join(dir, historyDBFileName)},
		},
		Workers:   Workers{LoginInterval: DefaultLoginInterval},
		AutoStart: AutoStart{TaskName: DefaultTaskName},
		Log:       Log{Dir: dir},
	}
}

// appDir returns name inside the user configuration directory (%APPDATA%
// on Windows).
func appDir(name string) string {
	base, err := os.UserConfigDir()
	if err != nil {
		return name
	}
	return filepath.Join(base, name)
}
