// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package probe waits for the campus gateway to become reachable before a
// login is attempted.
//
// # Polling model
//
// [Probe.WaitReachable] performs one reachability check per iteration with a
// short per-attempt timeout. A failed check, including one that errors out
// (no route, permission denied), is ignored; the probe sleeps for the retry
// interval and tries again. Elapsed time is accounted in whole retry
// intervals regardless of how long the check itself took, so a 60s window
// with a 3s interval always performs at most 20 checks.
//
// The context is honored at the sleep boundary only: a cancelled context
// stops the loop before the next check, never in the middle of one.
//
// # Pingers
//
// The check itself is delegated to a [Pinger]. [ICMPPinger] sends a single
// ICMP echo using golang.org/x/net/icmp, preferring unprivileged datagram
// sockets and falling back to raw sockets.
package probe
