// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// OutcomeKind tags the terminal result of one login attempt.
type OutcomeKind int

const (
	// OutcomeSucceeded means the login request reached the portal and an
	// HTTP status was received. The response body is not interpreted.
	OutcomeSucceeded OutcomeKind = iota
	// OutcomeEmptyCredentials means the username or password was blank.
	OutcomeEmptyCredentials
	// OutcomeNetworkTimeout means the gateway did not become reachable
	// within the configured probe window.
	OutcomeNetworkTimeout
	// OutcomeTransportError means the HTTP request itself failed.
	OutcomeTransportError
	// OutcomeCancelled means the caller cancelled the attempt before the
	// request was sent.
	OutcomeCancelled
)

// String returns the stable identifier persisted in the login history.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeEmptyCredentials:
		return "empty_credentials"
	case OutcomeNetworkTimeout:
		return "network_timeout"
	case OutcomeTransportError:
		return "transport_error"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Outcome is the single value produced by a login attempt.
//
// HTTPStatus is set only for OutcomeSucceeded, Message only for
// OutcomeTransportError. AuthTag is the timestamp used for the request,
// zero when the attempt ended before encryption.
type Outcome struct {
	Kind       OutcomeKind
	HTTPStatus int
	Message    string
	AuthTag    int64
}

// Success builds an OutcomeSucceeded value.
func Success(httpStatus int, authTag int64) Outcome {
	return Outcome{Kind: OutcomeSucceeded, HTTPStatus: httpStatus, AuthTag: authTag}
}

// EmptyCredentials builds an OutcomeEmptyCredentials value.
func EmptyCredentials() Outcome {
	return Outcome{Kind: OutcomeEmptyCredentials}
}

// NetworkTimeout builds an OutcomeNetworkTimeout value.
func NetworkTimeout() Outcome {
	return Outcome{Kind: OutcomeNetworkTimeout}
}

// TransportError builds an OutcomeTransportError value.
func TransportError(message string, authTag int64) Outcome {
	return Outcome{Kind: OutcomeTransportError, Message: message, AuthTag: authTag}
}

// Cancelled builds an OutcomeCancelled value.
func Cancelled() Outcome {
	return Outcome{Kind: OutcomeCancelled}
}

// OK reports whether the attempt reached the portal.
func (o Outcome) OK() bool {
	return o.Kind == OutcomeSucceeded
}

// String renders the outcome for logs and CLI output.
func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeSucceeded:
		return fmt.Sprintf("%s (HTTP %d)", o.Kind, o.HTTPStatus)
	case OutcomeTransportError:
		return fmt.Sprintf("%s: %s", o.Kind, o.Message)
	default:
		return o.Kind.String()
	}
}
