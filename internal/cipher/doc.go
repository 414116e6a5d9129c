// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cipher implements the password obfuscation used by the campus
// portal login form.
//
// The portal expects the password to be run through an RC4 keystream keyed
// by the decimal auth tag and rendered as lowercase hex. The XOR is applied
// to UTF-16 code units rather than UTF-8 bytes, so non-ASCII passwords
// produce more than two hex digits per character. This mirrors what the
// portal's own web client does and must not be "fixed".
package cipher
