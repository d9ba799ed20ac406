package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateScratch(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateOutput() error {
	if c.Output.Width <= 0 {
		return errors.New("output.width must be positive")
	}
	if c.Output.Height <= 0 {
		return errors.New("output.height must be positive")
	}
	if c.Output.FrameRate <= 0 {
		return errors.New("output.fps must be positive")
	}
	if c.Output.MaxColors < 2 || c.Output.MaxColors > 256 {
		return errors.New("output.max_colors must be between 2 and 256")
	}
	if c.Output.Lossy < 0 || c.Output.Lossy > 200 {
		return errors.New("output.lossy must be between 0 and 200")
	}
	return nil
}

func (c *Config) validateScratch() error {
	if c.Scratch.Dir == "" {
		return errors.New("scratch.dir must be set")
	}
	if c.Scratch.StaleAgeHours < 0 {
		return errors.New("scratch.stale_age_hours must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
