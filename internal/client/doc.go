// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the campus login application runtime.
//
// It dispatches the launch mode chosen on the command line: a one-shot
// silent login, enabling or disabling the run-at-logon registration, the
// periodic watch loop or the interactive terminal UI.
package client
