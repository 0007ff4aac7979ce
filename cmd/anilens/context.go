package main

import (
	"log/slog"
	"os"
	"strings"
	"sync"

	"anilens/internal/anilist"
	"anilens/internal/config"
	"anilens/internal/logging"
)

type commandContext struct {
	configFlag  *string
	verboseFlag *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	clientOnce sync.Once
	client     *anilist.Client
	logger     *slog.Logger
	clientErr  error
}

func newCommandContext(configFlag *string, verboseFlag *bool) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		verboseFlag: verboseFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureClient builds the AniList client and its logger once per invocation.
// Logging goes to stderr so table output stays pipeable.
func (c *commandContext) ensureClient() (*anilist.Client, *slog.Logger, error) {
	c.clientOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.clientErr = err
			return
		}

		level := cfg.Logging.Level
		if c.verboseFlag != nil && *c.verboseFlag {
			level = "debug"
		}
		logger, err := logging.New(os.Stderr, logging.Options{
			Level:  level,
			Format: cfg.Logging.Format,
		})
		if err != nil {
			c.clientErr = err
			return
		}
		c.logger = logging.WithSession(logger)

		c.client = anilist.New(anilist.Config{
			Token:   cfg.AniList.Token,
			BaseURL: cfg.AniList.BaseURL,
			PageCap: cfg.AniList.PageCap,
			Logger:  c.logger,
		})
	})
	return c.client, c.logger, c.clientErr
}
