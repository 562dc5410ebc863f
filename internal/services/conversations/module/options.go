package module

import "chatexport/internal/platform/config"

// Options holds configuration settings for the conversations module
type Options struct {
	ExportDir string
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	ef := cfg.Prefix("CORE_EXPORT_")
	return Options{
		ExportDir: ef.MayString("DIR", "exports"),
	}
}
