package module

import "chatexport/internal/platform/config"

// Options holds configuration settings for the contacts module
type Options struct {
	SnapshotPath string
	RefreshCmd   string
	MatchCutoff  float64
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	cf := cfg.Prefix("SERVICE_CONTACTS_")
	return Options{
		SnapshotPath: cf.MayString("SNAPSHOT", "contacts_output.csv"),
		RefreshCmd:   cf.MayString("REFRESH_CMD", ""),
		MatchCutoff:  cf.MayFloat64("MATCH_CUTOFF", 0.6),
	}
}
