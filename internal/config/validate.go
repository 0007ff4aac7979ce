package config

import (
	"fmt"
	"net/url"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if _, err := url.ParseRequestURI(c.AniList.BaseURL); err != nil {
		return fmt.Errorf("anilist.base_url: %w", err)
	}
	if c.AniList.PageCap < 0 {
		return fmt.Errorf("anilist.page_cap must not be negative")
	}
	if c.AniList.StaffWarnThreshold < 0 {
		return fmt.Errorf("anilist.staff_warn_threshold must not be negative")
	}
	if c.Output.Top < 1 {
		return fmt.Errorf("output.top must be at least 1")
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
