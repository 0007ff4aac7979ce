// Package config loads and validates the anilens TOML configuration.
//
// The file lives at ~/.config/anilens/config.toml by default and every field
// has a working default, so running without a file is fine. The AniList
// token may alternatively come from the ANILIST_TOKEN environment variable.
package config
