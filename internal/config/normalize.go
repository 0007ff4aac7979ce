package config

import (
	"os"
	"strings"
)

func (c *Config) normalize() {
	c.AniList.Token = strings.TrimSpace(c.AniList.Token)
	if c.AniList.Token == "" {
		if value, ok := os.LookupEnv("ANILIST_TOKEN"); ok {
			c.AniList.Token = strings.TrimSpace(value)
		}
	}
	c.AniList.BaseURL = strings.TrimSpace(c.AniList.BaseURL)
	if c.AniList.BaseURL == "" {
		c.AniList.BaseURL = defaultBaseURL
	}
	if c.AniList.StaffWarnThreshold == 0 {
		c.AniList.StaffWarnThreshold = defaultStaffWarnThreshold
	}

	c.Output.Language = strings.TrimSpace(c.Output.Language)
	if c.Output.Language == "" {
		c.Output.Language = defaultLanguage
	}
	if c.Output.Top == 0 {
		c.Output.Top = defaultTop
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
