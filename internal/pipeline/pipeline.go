package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"giffer/internal/clip"
	"giffer/internal/config"
	"giffer/internal/fileutil"
	"giffer/internal/logging"
	"giffer/internal/media/ffprobe"
	"giffer/internal/toolrun"
	"giffer/internal/workspace"
)

// Prober queries media metadata; it exists so tests can fake ffprobe.
type Prober func(ctx context.Context, binary string, path string) (ffprobe.Result, error)

// Runner drives the pipeline steps in order, fail-fast on every step except
// the final compression pass.
type Runner struct {
	cfg    *config.Config
	tools  toolrun.Runner
	probe  Prober
	logger *slog.Logger
}

// Result describes a finished run.
type Result struct {
	OutputPath  string
	OutputBytes int64
	// MergedDuration is the probed duration of the merged clip in seconds,
	// 0 when the probe failed. Informational only.
	MergedDuration float64
	// Compressed is false when gifsicle failed and the uncompressed GIF
	// was used as the final output.
	Compressed bool
	Steps      []StepTiming
}

// StepTiming records how long one pipeline step took.
type StepTiming struct {
	Name    string
	Elapsed time.Duration
}

// New constructs a pipeline runner. A nil tools runner defaults to executing
// real commands; a nil logger discards output.
func New(cfg *config.Config, tools toolrun.Runner, logger *slog.Logger) *Runner {
	if tools == nil {
		tools = toolrun.CommandRunner{}
	}
	return &Runner{
		cfg:    cfg,
		tools:  tools,
		probe:  ffprobe.Inspect,
		logger: logging.NewComponentLogger(logger, "pipeline"),
	}
}

// WithProber overrides the metadata prober. Intended for tests.
func (r *Runner) WithProber(p Prober) *Runner {
	if p != nil {
		r.probe = p
	}
	return r
}

// Run executes the full pipeline: per-clip transform, stream-copy concat,
// duration probe, palette generation, GIF render, and lossy compression.
// Exactly one file is written outside the workspace: the output at
// outputPath. Workspace cleanup is the caller's responsibility so the
// scratch area is released on every exit path.
func (r *Runner) Run(ctx context.Context, ws *workspace.Workspace, clips []clip.Clip, outputPath string) (*Result, error) {
	if len(clips) == 0 {
		return nil, fmt.Errorf("pipeline: no clips to process")
	}

	result := &Result{OutputPath: outputPath}

	transformed, err := timed(result, "transform", func() ([]string, error) {
		return r.transformClips(ctx, ws, clips)
	})
	if err != nil {
		return nil, err
	}

	merged, err := timed(result, "concat", func() (string, error) {
		return r.concatClips(ctx, ws, transformed)
	})
	if err != nil {
		return nil, err
	}

	// Informational only; a failed probe never fails the run.
	result.MergedDuration = r.probeDuration(ctx, merged)

	palette, err := timed(result, "palette", func() (string, error) {
		return r.generatePalette(ctx, ws, merged)
	})
	if err != nil {
		return nil, err
	}

	raw, err := timed(result, "render", func() (string, error) {
		return r.renderGIF(ctx, ws, merged, palette)
	})
	if err != nil {
		return nil, err
	}

	compressed, err := timed(result, "compress", func() (bool, error) {
		return r.compressGIF(ctx, raw, outputPath)
	})
	if err != nil {
		return nil, err
	}
	result.Compressed = compressed

	size, err := fileutil.FileSize(outputPath)
	if err != nil {
		return nil, fmt.Errorf("final output: %w", err)
	}
	result.OutputBytes = size

	r.logger.Info("pipeline complete",
		logging.String("output", outputPath),
		logging.Int64("bytes", size),
		logging.Bool("compressed", compressed),
	)
	return result, nil
}

// timed runs one step and appends its elapsed time to the result.
func timed[T any](result *Result, name string, step func() (T, error)) (T, error) {
	start := time.Now()
	value, err := step()
	result.Steps = append(result.Steps, StepTiming{Name: name, Elapsed: time.Since(start)})
	return value, err
}
