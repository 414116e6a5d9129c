package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func newTestBuilder(flags *StructuredConfig) *configBuilder {
	b := newConfigBuilder()
	b.parseFlags = func() (*StructuredConfig, error) {
		if flags == nil {
			return &StructuredConfig{}, nil
		}
		return flags, nil
	}
	return b
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
	assert.NotNil(t, b.parseFlags)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EmptyBuilderFailsValidation verifies that a config with no
// sources at all is rejected.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	_, err := newConfigBuilder().build()
	assert.ErrorIs(t, err, ErrInvalidPortalConfigs)
}

// TestBuild_DefaultsOnly verifies that defaults alone form a valid config.
func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultLoginURL, cfg.Portal.LoginURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.Portal.RequestTimeout)
	assert.Equal(t, DefaultProbeHost, cfg.Probe.Host)
	assert.Equal(t, DefaultProbeTimeout, cfg.Probe.Timeout)
	assert.Equal(t, DefaultAttemptTimeout, cfg.Probe.AttemptTimeout)
	assert.Equal(t, DefaultRetryInterval, cfg.Probe.RetryInterval)
	assert.Equal(t, DefaultLoginInterval, cfg.Workers.LoginInterval)
	assert.Equal(t, DefaultTaskName, cfg.AutoStart.TaskName)
	assert.NotEmpty(t, cfg.Storage.CredentialsFile)
	assert.NotEmpty(t, cfg.Storage.DB.DSN)

	// файл старых версий лежит рядом, в каталоге CampusLoginUI
	assert.Equal(t, "config.ini", filepath.Base(cfg.Storage.LegacyCredentialsFile))
	assert.Equal(t, "CampusLoginUI", filepath.Base(filepath.Dir(cfg.Storage.LegacyCredentialsFile)))
	assert.Equal(t,
		filepath.Dir(filepath.Dir(cfg.Storage.CredentialsFile)),
		filepath.Dir(filepath.Dir(cfg.Storage.LegacyCredentialsFile)))
}

// TestBuild_LaterSourcesOverride verifies that env < flags < file priority
// holds and that unset fields fall back to defaults.
func TestBuild_LaterSourcesOverride(t *testing.T) {
	path := writeTempFile(t, "c.json", `{"probe":{"timeout":"20s"}}`)

	b := newTestBuilder(&StructuredConfig{
		Probe:        Probe{Host: "flag-host"},
		Launch:       LaunchFlags{Silent: true},
		JSONFilePath: path,
	})
	b.environ = map[string]string{
		"PROBE_HOST":    "env-host",
		"PROBE_TIMEOUT": "10s",
	}

	cfg, err := b.
		withEnv().
		withFlags().
		withFile().
		withDefaults().
		build()

	require.NoError(t, err)
	assert.Equal(t, "flag-host", cfg.Probe.Host)
	assert.Equal(t, 20*time.Second, cfg.Probe.Timeout)
	assert.Equal(t, DefaultRetryInterval, cfg.Probe.RetryInterval)
	assert.True(t, cfg.Launch.Silent)
}

// TestWithFile_NoPathSkips verifies that no file source is added when no
// path was configured.
func TestWithFile_NoPathSkips(t *testing.T) {
	b := newTestBuilder(nil).withFlags().withFile()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithFile_BadFileSetsError verifies that a broken file is reported by build.
func TestWithFile_BadFileSetsError(t *testing.T) {
	path := writeTempFile(t, "c.json", "not json")

	_, err := newTestBuilder(&StructuredConfig{JSONFilePath: path}).
		withFlags().
		withFile().
		withDefaults().
		build()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

// TestValidate covers each sentinel error.
func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *StructuredConfig)
		err    error
	}{
		{name: "relative login url", mutate: func(c *StructuredConfig) { c.Portal.LoginURL = "/login.php" }, err: ErrInvalidPortalConfigs},
		{name: "zero request timeout", mutate: func(c *StructuredConfig) { c.Portal.RequestTimeout = 0 }, err: ErrInvalidPortalConfigs},
		{name: "empty probe host", mutate: func(c *StructuredConfig) { c.Probe.Host = "  " }, err: ErrInvalidProbeConfigs},
		{name: "negative probe timeout", mutate: func(c *StructuredConfig) { c.Probe.Timeout = -time.Second }, err: ErrInvalidProbeConfigs},
		{name: "zero retry interval", mutate: func(c *StructuredConfig) { c.Probe.RetryInterval = 0 }, err: ErrInvalidProbeConfigs},
		{name: "empty credentials file", mutate: func(c *StructuredConfig) { c.Storage.CredentialsFile = "" }, err: ErrInvalidStorageConfigs},
		{name: "empty dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, err: ErrInvalidStorageConfigs},
		{name: "zero login interval", mutate: func(c *StructuredConfig) { c.Workers.LoginInterval = 0 }, err: ErrInvalidWorkerConfigs},
		{name: "empty task name", mutate: func(c *StructuredConfig) { c.AutoStart.TaskName = "" }, err: ErrInvalidAutoStartConfigs},
		{name: "zero probe timeout is allowed", mutate: func(c *StructuredConfig) { c.Probe.Timeout = 0 }, err: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
