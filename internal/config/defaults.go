package config

const (
	defaultBaseURL            = "https://graphql.anilist.co"
	defaultStaffWarnThreshold = 70
	defaultLanguage           = "japanese"
	defaultTop                = 5
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		AniList: AniList{
			BaseURL:            defaultBaseURL,
			StaffWarnThreshold: defaultStaffWarnThreshold,
		},
		Output: Output{
			Language: defaultLanguage,
			Top:      defaultTop,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
