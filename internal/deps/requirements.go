package deps

import "giffer/internal/config"

// Runtime returns the external tools a pipeline run needs, honouring any
// binary overrides from configuration.
func Runtime(cfg *config.Config) []Requirement {
	ffmpeg := "ffmpeg"
	ffprobe := "ffprobe"
	gifsicle := "gifsicle"
	if cfg != nil {
		ffmpeg = cfg.FFmpegBinary()
		ffprobe = cfg.FFprobeBinary()
		gifsicle = cfg.GifsicleBinary()
	}
	return []Requirement{
		{Name: "FFmpeg", Command: ffmpeg, Description: "Scales, retimes, concatenates, and renders clips"},
		{Name: "FFprobe", Command: ffprobe, Description: "Probes clip duration and stream metadata"},
		{Name: "Gifsicle", Command: gifsicle, Description: "Applies lossy GIF compression"},
	}
}
