package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"giffer/internal/clip"
	"giffer/internal/config"
	"giffer/internal/deps"
	"giffer/internal/logging"
	"giffer/internal/pipeline"
	"giffer/internal/toolrun"
	"giffer/internal/workspace"
)

type runOptions struct {
	output      string
	width       int
	height      int
	fps         int
	colors      int
	lossy       int
	jsonOut     bool
	verbose     bool
	keepScratch bool
}

// runSummary is the machine-readable shape of a finished run.
type runSummary struct {
	Output         string  `json:"output"`
	Bytes          int64   `json:"bytes"`
	MergedDuration float64 `json:"merged_duration_seconds"`
	Compressed     bool    `json:"compressed"`
	Clips          int     `json:"clips"`
}

func runPipeline(cmd *cobra.Command, cctx *commandContext, opts *runOptions, args []string) error {
	if opts.output == "" {
		return errors.New("output path is required (use -o)")
	}
	if len(args) == 0 {
		return errors.New("at least one clip argument is required")
	}

	cfg, err := cctx.ensureConfig()
	if err != nil {
		return err
	}
	applyOutputOverrides(cmd, cfg, opts)
	if opts.keepScratch {
		cfg.Scratch.Keep = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := cctx.newLogger(cfg)
	if err != nil {
		return err
	}

	clips, err := clip.Parse(args)
	if err != nil {
		return err
	}

	statuses := deps.CheckBinaries(deps.Runtime(cfg))
	if missing := deps.FirstMissing(statuses); missing != nil {
		return fmt.Errorf("missing dependency %s: %s (run `giffer deps` for details)", missing.Name, missing.Detail)
	}

	if err := clip.Verify(clips); err != nil {
		return err
	}

	outputPath, err := config.ExpandPath(opts.output)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	// Interruption cancels the context, which kills the running tool; the
	// deferred Close still releases the scratch area.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	workspace.CleanStale(cfg.Scratch.Dir, time.Duration(cfg.Scratch.StaleAgeHours)*time.Hour, logger)

	ws, err := workspace.New(cfg.Scratch.Dir, cfg.Scratch.Keep)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := ws.Close(); closeErr != nil {
			logger.Warn("scratch cleanup failed", logging.Error(closeErr))
		}
	}()

	runner := pipeline.New(cfg, toolrun.CommandRunner{Verbose: opts.verbose}, logger)
	result, err := runner.Run(ctx, ws, clips, outputPath)
	if err != nil {
		return err
	}

	summary := runSummary{
		Output:         result.OutputPath,
		Bytes:          result.OutputBytes,
		MergedDuration: result.MergedDuration,
		Compressed:     result.Compressed,
		Clips:          len(clips),
	}
	if opts.jsonOut {
		return printJSON(cmd, summary)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %s (%s)\n", summary.Output, humanize.IBytes(uint64(summary.Bytes)))
	if summary.MergedDuration > 0 {
		fmt.Fprintf(out, "Merged duration: %.1fs across %d clip(s)\n", summary.MergedDuration, summary.Clips)
	}
	if !summary.Compressed {
		fmt.Fprintln(out, "Note: gifsicle compression failed; wrote the uncompressed GIF instead")
	}
	return nil
}

// applyOutputOverrides copies explicitly set CLI flags over the configured
// output parameters. Unset flags leave config values alone.
func applyOutputOverrides(cmd *cobra.Command, cfg *config.Config, opts *runOptions) {
	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Output.Width = opts.width
	}
	if flags.Changed("height") {
		cfg.Output.Height = opts.height
	}
	if flags.Changed("fps") {
		cfg.Output.FrameRate = opts.fps
	}
	if flags.Changed("colors") {
		cfg.Output.MaxColors = opts.colors
	}
	if flags.Changed("lossy") {
		cfg.Output.Lossy = opts.lossy
	}
}
