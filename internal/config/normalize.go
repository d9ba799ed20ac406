package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeScratch(); err != nil {
		return err
	}
	c.normalizeTools()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeScratch() error {
	if strings.TrimSpace(c.Scratch.Dir) == "" {
		c.Scratch.Dir = defaultScratchDir()
	}
	var err error
	if c.Scratch.Dir, err = expandPath(c.Scratch.Dir); err != nil {
		return fmt.Errorf("scratch.dir: %w", err)
	}
	if c.Scratch.StaleAgeHours == 0 {
		c.Scratch.StaleAgeHours = defaultStaleAgeHours
	}
	return nil
}

func (c *Config) normalizeTools() {
	c.Tools.FFmpeg = strings.TrimSpace(c.Tools.FFmpeg)
	if c.Tools.FFmpeg == "" {
		c.Tools.FFmpeg = defaultFFmpeg
	}
	c.Tools.FFprobe = strings.TrimSpace(c.Tools.FFprobe)
	if c.Tools.FFprobe == "" {
		c.Tools.FFprobe = defaultFFprobe
	}
	c.Tools.Gifsicle = strings.TrimSpace(c.Tools.Gifsicle)
	if c.Tools.Gifsicle == "" {
		c.Tools.Gifsicle = defaultGifsicle
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
