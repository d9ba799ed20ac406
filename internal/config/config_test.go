package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"giffer/internal/config"
)

func TestLoadDefaultsWhenFileAbsent(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("XDG_CACHE_HOME", "")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if cfg.Output.Width != 800 || cfg.Output.Height != 338 {
		t.Fatalf("unexpected canvas defaults: %dx%d", cfg.Output.Width, cfg.Output.Height)
	}
	if cfg.Output.FrameRate != 8 {
		t.Fatalf("unexpected fps default: %d", cfg.Output.FrameRate)
	}
	if cfg.Output.MaxColors != 128 {
		t.Fatalf("unexpected max_colors default: %d", cfg.Output.MaxColors)
	}
	if cfg.Output.Lossy != 80 {
		t.Fatalf("unexpected lossy default: %d", cfg.Output.Lossy)
	}
	wantScratch := filepath.Join(tempHome, ".cache", "giffer")
	if cfg.Scratch.Dir != wantScratch {
		t.Fatalf("unexpected scratch dir: got %q want %q", cfg.Scratch.Dir, wantScratch)
	}
	if cfg.Tools.FFmpeg != "ffmpeg" || cfg.Tools.FFprobe != "ffprobe" || cfg.Tools.Gifsicle != "gifsicle" {
		t.Fatalf("unexpected tool defaults: %+v", cfg.Tools)
	}
}

func TestLoadReadsFileAndExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(t.TempDir(), "config.toml")
	content := strings.Join([]string{
		"[output]",
		"width = 400",
		"fps = 12",
		"",
		"[tools]",
		"ffmpeg = \"/opt/ffmpeg/bin/ffmpeg\"",
		"",
		"[scratch]",
		"dir = \"~/scratch\"",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected resolved path %q to exist, got %q (%v)", path, resolved, exists)
	}
	if cfg.Output.Width != 400 {
		t.Fatalf("unexpected width: %d", cfg.Output.Width)
	}
	if cfg.Output.Height != 338 {
		t.Fatalf("expected default height to survive partial file, got %d", cfg.Output.Height)
	}
	if cfg.Output.FrameRate != 12 {
		t.Fatalf("unexpected fps: %d", cfg.Output.FrameRate)
	}
	if cfg.Tools.FFmpeg != "/opt/ffmpeg/bin/ffmpeg" {
		t.Fatalf("unexpected ffmpeg binary: %q", cfg.Tools.FFmpeg)
	}
	if cfg.Scratch.Dir != filepath.Join(tempHome, "scratch") {
		t.Fatalf("expected tilde expansion, got %q", cfg.Scratch.Dir)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    string
	}{
		{"zero width", "[output]\nwidth = 0\n", "output.width"},
		{"colors too high", "[output]\nmax_colors = 300\n", "output.max_colors"},
		{"lossy out of range", "[output]\nlossy = 201\n", "output.lossy"},
		{"bad log format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"bad log level", "[logging]\nlevel = \"trace\"\n", "logging.level"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	// The sample mirrors defaults; path fields differ only by expansion.
	if cfg.Output != config.Default().Output {
		t.Fatalf("sample output section diverges from defaults: %+v", cfg.Output)
	}
	if cfg.Tools != config.Default().Tools {
		t.Fatalf("sample tools section diverges from defaults: %+v", cfg.Tools)
	}
}
