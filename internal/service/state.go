// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// State is a step of the login state machine:
// Idle, ProbingNetwork, Encrypting, Submitting, then Succeeded or Failed.
// Any step may end in Failed; blank credentials go from Idle straight to it.
type State int32

const (
	StateIdle State = iota
	StateProbingNetwork
	StateEncrypting
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateProbingNetwork:
		return "probing_network"
	case StateEncrypting:
		return "encrypting"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether s ends an attempt.
func (s State) Terminal() bool {
	return s == StateSucceeded || s == StateFailed
}
