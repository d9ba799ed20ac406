package main

import (
	"log/slog"
	"strings"
	"sync"

	"giffer/internal/config"
	"giffer/internal/logging"
)

type commandContext struct {
	configFlag    *string
	logLevelFlag  *string
	logFormatFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag, logFormatFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
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

// newLogger builds the run logger, honouring --log-level and --log-format
// overrides on top of the configuration.
func (c *commandContext) newLogger(cfg *config.Config) (*slog.Logger, error) {
	overridden := *cfg
	if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
		overridden.Logging.Level = strings.TrimSpace(*c.logLevelFlag)
	}
	if c.logFormatFlag != nil && strings.TrimSpace(*c.logFormatFlag) != "" {
		overridden.Logging.Format = strings.TrimSpace(*c.logFormatFlag)
	}
	return logging.NewFromConfig(&overridden)
}
