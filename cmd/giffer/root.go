package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string
	var logFormatFlag string

	ctx := newCommandContext(&configFlag, &logLevelFlag, &logFormatFlag)
	opts := &runOptions{}

	rootCmd := &cobra.Command{
		Use:   "giffer -o OUTPUT clip[:speed] ...",
		Short: "Convert video clips into a single compressed GIF",
		Long: `Giffer scales, retimes, and concatenates one or more video clips, then
renders the result as a palette-quantized GIF and compresses it with
gifsicle. Clips are given as path[:speed] tokens; a speed of 2 plays the
clip twice as fast, 0.5 at half speed, and a missing speed means 1.

Examples:
  giffer -o demo.gif intro.mov main.mov:2
  giffer -o small.gif -W 400 -H 300 -f 12 clip.mp4:1.5`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd, ctx, opts, args)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "Output GIF path (required)")
	flags.IntVarP(&opts.width, "width", "W", 0, "Canvas width in pixels")
	flags.IntVarP(&opts.height, "height", "H", 0, "Canvas height in pixels")
	flags.IntVarP(&opts.fps, "fps", "f", 0, "Target frame rate")
	flags.IntVarP(&opts.colors, "colors", "c", 0, "Maximum palette colors (2-256)")
	flags.IntVarP(&opts.lossy, "lossy", "l", 0, "Lossy compression strength (0-200)")
	flags.BoolVar(&opts.jsonOut, "json", false, "Print the run result as JSON")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Stream external tool output")
	flags.BoolVar(&opts.keepScratch, "keep-scratch", false, "Keep the scratch directory after the run")

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "Override log format (console, json)")

	rootCmd.AddCommand(newDepsCommand(ctx))
	rootCmd.AddCommand(newProbeCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
