// Package config provides configuration loading, merging, and validation
// facilities for the campus login client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON or TOML config file
//
// Unset values are then filled with defaults. The main entry point is
// [GetStructuredConfig]; launch-mode switches are parsed separately into
// [LaunchFlags].
package config
