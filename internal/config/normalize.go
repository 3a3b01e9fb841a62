package config

import "strings"

// normalize expands and cleans every path field and trims list entries.
func (c *Config) normalize() error {
	for _, field := range []*string{
		&c.Paths.UploadRoot,
		&c.Paths.CollectorLogDir,
		&c.Paths.LogDir,
		&c.Feeds.ProviderRegistry,
		&c.Notifications.MailList,
		&c.History.Path,
	} {
		expanded, err := ExpandPath(strings.TrimSpace(*field))
		if err != nil {
			return err
		}
		*field = expanded
	}

	c.Jobs.Names = trimNonEmpty(c.Jobs.Names)
	c.Feeds.MetadataFields = trimNonEmpty(c.Feeds.MetadataFields)

	c.Notifications.SMTPAddr = strings.TrimSpace(c.Notifications.SMTPAddr)
	c.Notifications.From = strings.TrimSpace(c.Notifications.From)
	c.Notifications.CheckGroup = strings.TrimSpace(c.Notifications.CheckGroup)
	c.Notifications.FeedsGroup = strings.TrimSpace(c.Notifications.FeedsGroup)

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	return nil
}

func trimNonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
