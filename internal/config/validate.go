package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Paths.UploadRoot == "" {
		return errors.New("paths.upload_root must be set")
	}
	if c.Paths.CollectorLogDir == "" {
		return errors.New("paths.collector_log_dir must be set")
	}
	if c.Paths.LogDir == "" {
		return errors.New("paths.log_dir must be set")
	}
	if len(c.Jobs.Names) == 0 {
		return errors.New("jobs.names must list at least one job")
	}
	if c.Feeds.ProviderRegistry == "" {
		return errors.New("feeds.provider_registry must be set")
	}
	if len(c.Feeds.MetadataFields) == 0 {
		return errors.New("feeds.metadata_fields must list at least one field")
	}
	if c.Notifications.SMTPAddr != "" {
		if c.Notifications.MailList == "" {
			return errors.New("notifications.mail_list must be set when notifications.smtp_addr is set")
		}
		if c.Notifications.CheckGroup == "" || c.Notifications.FeedsGroup == "" {
			return errors.New("notifications.check_group and notifications.feeds_group must be set when notifications.smtp_addr is set")
		}
	}
	if c.History.Enabled && c.History.Path == "" {
		return errors.New("history.path must be set when history.enabled is true")
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
