package module

import "sitequery/internal/platform/config"

// Options holds configuration settings for the query module
type Options struct {
	DefaultLimit int
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	qf := cfg.Prefix("CORE_QUERY_")
	return Options{
		DefaultLimit: qf.MayInt("DEFAULT_LIMIT", 25),
	}
}
