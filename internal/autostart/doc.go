// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package autostart registers campus-login to run with the -silent flag when
// the user logs on.
//
// On Windows the registration is a Task Scheduler task created with
// schtasks.exe that runs with the highest privileges; creating or removing
// it requires an elevated process. On Linux and macOS it is a per-user
// service (a systemd user unit or a launchd agent) managed through
// kardianos/service.
package autostart
