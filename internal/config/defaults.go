package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultWidth         = 800
	defaultHeight        = 338
	defaultFrameRate     = 8
	defaultMaxColors     = 128
	defaultLossy         = 80
	defaultFFmpeg        = "ffmpeg"
	defaultFFprobe       = "ffprobe"
	defaultGifsicle      = "gifsicle"
	defaultStaleAgeHours = 24
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Output: Output{
			Width:     defaultWidth,
			Height:    defaultHeight,
			FrameRate: defaultFrameRate,
			MaxColors: defaultMaxColors,
			Lossy:     defaultLossy,
		},
		Tools: Tools{
			FFmpeg:   defaultFFmpeg,
			FFprobe:  defaultFFprobe,
			Gifsicle: defaultGifsicle,
		},
		Scratch: Scratch{
			Dir:           defaultScratchDir(),
			StaleAgeHours: defaultStaleAgeHours,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

func defaultScratchDir() string {
	if base, ok := os.LookupEnv("XDG_CACHE_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "giffer")
	}
	return "~/.cache/giffer"
}
