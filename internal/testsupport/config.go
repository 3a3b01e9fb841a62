package testsupport

import (
	"path/filepath"
	"testing"

	"csrwatch/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// Notifications and history are off by default so unit tests stay hermetic.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.UploadRoot = filepath.Join(base, "upload")
	cfg.Paths.CollectorLogDir = filepath.Join(base, "collectors")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Feeds.ProviderRegistry = filepath.Join(base, "providers.json")
	cfg.Notifications.SMTPAddr = ""
	cfg.Notifications.MailList = filepath.Join(base, "mailList.json")
	cfg.History.Enabled = false
	cfg.History.Path = filepath.Join(base, "history.db")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithJobs overrides the day-model job catalog.
func WithJobs(names ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Jobs.Names = names
	}
}

// WithMetadataFields overrides the required feed metadata keys.
func WithMetadataFields(fields ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Feeds.MetadataFields = fields
	}
}
