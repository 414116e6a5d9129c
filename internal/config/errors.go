package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidPortalConfigs indicates invalid portal settings
	// (for example, a relative login URL or zero request timeout).
	ErrInvalidPortalConfigs = errors.New("invalid portal configuration")
	// ErrInvalidProbeConfigs indicates invalid reachability settings
	// (for example, an empty host or negative timeout).
	ErrInvalidProbeConfigs = errors.New("invalid probe configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty credentials file path or DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero login interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidAutoStartConfigs indicates an empty autostart task name.
	ErrInvalidAutoStartConfigs = errors.New("invalid autostart configuration")
)
