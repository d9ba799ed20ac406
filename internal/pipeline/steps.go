package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"giffer/internal/clip"
	"giffer/internal/ffmpeg"
	"giffer/internal/fileutil"
	"giffer/internal/gifsicle"
	"giffer/internal/logging"
	"giffer/internal/toolrun"
	"giffer/internal/workspace"
)

// transformClips scales, pads, and retimes each clip into the workspace,
// strictly in input order. The returned paths feed the concat manifest.
func (r *Runner) transformClips(ctx context.Context, ws *workspace.Workspace, clips []clip.Clip) ([]string, error) {
	paths := make([]string, 0, len(clips))
	for i, c := range clips {
		dst := ws.Path(fmt.Sprintf("clip-%03d.mp4", i))
		r.logger.Info("transforming clip",
			logging.String("input", c.Path),
			logging.Float64("speed", c.Speed),
		)
		args := ffmpeg.BuildTransform(r.cfg.Output, c, dst)
		stderr, err := r.tools.Run(ctx, r.cfg.FFmpegBinary(), args)
		if err != nil {
			return nil, fmt.Errorf("transform %s: %w", c.Path, toolrun.WrapError("ffmpeg", stderr, err))
		}
		paths = append(paths, dst)
	}
	return paths, nil
}

// concatClips writes the concat manifest and stream-copies the transformed
// clips into one merged file. No re-encode happens here; every input shares
// codec parameters because each went through the same transform settings.
func (r *Runner) concatClips(ctx context.Context, ws *workspace.Workspace, paths []string) (string, error) {
	listPath := ws.Path("concat.txt")
	if err := os.WriteFile(listPath, []byte(ffmpeg.ConcatManifest(paths)), 0o644); err != nil {
		return "", fmt.Errorf("write concat manifest: %w", err)
	}

	merged := ws.Path("merged.mp4")
	r.logger.Info("concatenating clips", logging.Int("count", len(paths)))
	stderr, err := r.tools.Run(ctx, r.cfg.FFmpegBinary(), ffmpeg.BuildConcat(listPath, merged))
	if err != nil {
		return "", fmt.Errorf("concat: %w", toolrun.WrapError("ffmpeg", stderr, err))
	}
	return merged, nil
}

// probeDuration reports the merged clip's duration in seconds. Failures are
// logged and swallowed; the value never affects control flow.
func (r *Runner) probeDuration(ctx context.Context, merged string) float64 {
	result, err := r.probe(ctx, r.cfg.FFprobeBinary(), merged)
	if err != nil {
		r.logger.Warn("duration probe failed", logging.Error(err))
		return 0
	}
	duration := result.DurationSeconds()
	r.logger.Info("merged clip ready", logging.Float64("duration_seconds", duration))
	return duration
}

func (r *Runner) generatePalette(ctx context.Context, ws *workspace.Workspace, merged string) (string, error) {
	palette := ws.Path("palette.png")
	r.logger.Info("generating palette",
		logging.Int("max_colors", r.cfg.Output.MaxColors),
		logging.Int("fps", r.cfg.Output.FrameRate),
	)
	stderr, err := r.tools.Run(ctx, r.cfg.FFmpegBinary(), ffmpeg.BuildPalette(r.cfg.Output, merged, palette))
	if err != nil {
		return "", fmt.Errorf("palette: %w", toolrun.WrapError("ffmpeg", stderr, err))
	}
	return palette, nil
}

func (r *Runner) renderGIF(ctx context.Context, ws *workspace.Workspace, merged, palette string) (string, error) {
	raw := ws.Path("raw.gif")
	r.logger.Info("rendering gif")
	stderr, err := r.tools.Run(ctx, r.cfg.FFmpegBinary(), ffmpeg.BuildRender(r.cfg.Output, merged, palette, raw))
	if err != nil {
		return "", fmt.Errorf("render: %w", toolrun.WrapError("ffmpeg", stderr, err))
	}
	return raw, nil
}

// compressGIF runs the lossy compression pass into the output path. A
// gifsicle failure is recovered by substituting the uncompressed GIF; the
// run still succeeds. Returns whether compression was applied.
func (r *Runner) compressGIF(ctx context.Context, raw, outputPath string) (bool, error) {
	if dir := filepath.Dir(outputPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false, fmt.Errorf("create output directory: %w", err)
		}
	}

	r.logger.Info("compressing gif", logging.Int("lossy", r.cfg.Output.Lossy))
	stderr, err := r.tools.Run(ctx, r.cfg.GifsicleBinary(), gifsicle.BuildCompress(r.cfg.Output, raw, outputPath))
	if err == nil {
		return true, nil
	}

	r.logger.Warn("compression failed, falling back to uncompressed gif",
		logging.Error(toolrun.WrapError("gifsicle", stderr, err)),
	)
	if err := fileutil.CopyFile(raw, outputPath); err != nil {
		return false, fmt.Errorf("fallback copy: %w", err)
	}
	return false, nil
}
