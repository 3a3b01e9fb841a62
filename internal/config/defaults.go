package config

const (
	defaultUploadRoot       = "/home/ftpuser/upload"
	defaultCollectorLogDir  = "/opt/ibm/sccm/samples/logs/collectors"
	defaultLogDir           = "~/.local/share/csrwatch/logs"
	defaultProviderRegistry = "/opt/ibm/sccm/wlp/usr/servers/mcs/data/providers.json"
	defaultMailList         = "/opt/ibm/sccm/bin/custom/mailList.json"
	defaultSMTPAddr         = "localhost:25"
	defaultCheckGroup       = "CSR_checker"
	defaultFeedsGroup       = "MCS_checker"
	defaultHistoryPath      = "~/.local/share/csrwatch/history.db"
	defaultLogFormat        = "console"
	defaultLogLevel         = "warn"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			UploadRoot:      defaultUploadRoot,
			CollectorLogDir: defaultCollectorLogDir,
			LogDir:          defaultLogDir,
		},
		Jobs: Jobs{
			Names: []string{
				"consolidation_backups",
				"consolidation_cinder_volume",
				"consolidation_nova_compute",
			},
		},
		Feeds: Feeds{
			ProviderRegistry: defaultProviderRegistry,
			MetadataFields: []string{
				"ActionInProgress",
				"NetworkZone",
				"TemplateName",
			},
		},
		Notifications: Notifications{
			SMTPAddr:   defaultSMTPAddr,
			MailList:   defaultMailList,
			CheckGroup: defaultCheckGroup,
			FeedsGroup: defaultFeedsGroup,
		},
		History: History{
			Enabled: true,
			Path:    defaultHistoryPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
