// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"
)

// LaunchFlags selects what the process does once configuration is loaded.
// At most one of EnableAuto, DisableAuto, Silent and Watch is expected; the
// client dispatches them in that order of precedence.
type LaunchFlags struct {
	// Silent runs one unattended login with stored credentials and exits.
	Silent bool
	// EnableAuto registers the run-at-logon trigger and exits.
	EnableAuto bool
	// DisableAuto removes the run-at-logon trigger and exits.
	DisableAuto bool
	// Watch repeats silent logins every Workers.LoginInterval.
	Watch bool
	// Version prints build information and exits.
	Version bool
}

// legacyFlags maps Windows-style switches written by older scheduled tasks
// to their current spelling.
var legacyFlags = map[string]string{
	"/silent":      "-silent",
	"/enableauto":  "-enable-auto",
	"/disableauto": "-disable-auto",
}

// ParseFlags parses all configuration and launch flags from os.Args.
//
// Flags:
//
//	-login-url portal login endpoint URL
//	-request-timeout login request timeout (e.g., "10s")
//	-probe-host host checked before login
//	-probe-timeout total network wait (e.g., "60s")
//	-attempt-timeout single reachability check timeout (e.g., "2s")
//	-retry-interval pause between reachability checks (e.g., "3s")
//	-credentials credentials file path
//	-d login history database DSN
//	-login-interval watch mode login interval (e.g., "10m")
//	-task-name autostart task name
//	-log-dir log file directory
//	-c/-config JSON or TOML file path with configs
//	-silent, -enable-auto, -disable-auto, -watch, -version launch modes
func ParseFlags() (*StructuredConfig, error) {
	return parseFlagSet(os.Args[1:])
}

func parseFlagSet(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("campus-login", flag.ContinueOnError)

	var (
		loginURL        string
		requestTimeout  time.Duration
		probeHost       string
		probeTimeout    time.Duration
		attemptTimeout  time.Duration
		retryInterval   time.Duration
		credentialsFile string
		databaseDSN     string
		loginInterval   time.Duration
		taskName        string
		logDir          string
		configPath      string
		launch          LaunchFlags
	)

	fs.StringVar(&loginURL, "login-url", "", "Portal login endpoint URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Login request timeout (e.g., 10s)")
	fs.StringVar(&probeHost, "probe-host", "", "Host checked before login")
	fs.DurationVar(&probeTimeout, "probe-timeout", 0, "Total network wait (e.g., 60s)")
	fs.DurationVar(&attemptTimeout, "attempt-timeout", 0, "Single reachability check timeout (e.g., 2s)")
	fs.DurationVar(&retryInterval, "retry-interval", 0, "Pause between reachability checks (e.g., 3s)")
	fs.StringVar(&credentialsFile, "credentials", "", "Credentials file path")
	fs.StringVar(&databaseDSN, "d", "", "Login history database DSN")
	fs.DurationVar(&loginInterval, "login-interval", 0, "Watch mode login interval (e.g., 10m)")
	fs.StringVar(&taskName, "task-name", "", "Autostart task name")
	fs.StringVar(&logDir, "log-dir", "", "Log file directory")
	fs.StringVar(&configPath, "c", "", "JSON or TOML config file path")
	fs.StringVar(&configPath, "config", "", "JSON or TOML config file path (alias)")
	fs.BoolVar(&launch.Silent, "silent", false, "Log in once without UI and exit")
	fs.BoolVar(&launch.EnableAuto, "enable-auto", false, "Enable login at user logon and exit")
	fs.BoolVar(&launch.DisableAuto, "disable-auto", false, "Disable login at user logon and exit")
	fs.BoolVar(&launch.Watch, "watch", false, "Repeat silent login every login interval")
	fs.BoolVar(&launch.Version, "version", false, "Print build information and exit")

	if err := fs.Parse(normalizeArgs(args)); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Portal: Portal{
			LoginURL:       loginURL,
			RequestTimeout: requestTimeout,
		},
		Probe: Probe{
			Host:           probeHost,
			Timeout:        probeTimeout,
			AttemptTimeout: attemptTimeout,
			RetryInterval:  retryInterval,
		},
		Storage: Storage{
			CredentialsFile: credentialsFile,
			DB:              DB{DSN: databaseDSN},
		},
		Workers:      Workers{LoginInterval: loginInterval},
		AutoStart:    AutoStart{TaskName: taskName},
		Log:          Log{Dir: logDir},
		Launch:       launch,
		JSONFilePath: configPath,
	}, nil
}

func normalizeArgs(args []string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		if mapped, ok := legacyFlags[strings.ToLower(arg)]; ok {
			out[i] = mapped
			continue
		}
		out[i] = arg
	}
	return out
}
