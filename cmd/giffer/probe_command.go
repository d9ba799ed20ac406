package main

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"giffer/internal/media/ffprobe"
)

func newProbeCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "probe FILE",
		Short: "Show ffprobe metadata for one input clip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			result, err := ffprobe.Inspect(cmd.Context(), cfg.FFprobeBinary(), args[0])
			if err != nil {
				return err
			}

			if jsonOut {
				return printJSON(cmd, result)
			}

			rows := [][]string{
				{"File", result.Format.Filename},
				{"Container", result.Format.FormatName},
				{"Duration", fmt.Sprintf("%.2fs", result.DurationSeconds())},
				{"Size", humanize.IBytes(uint64(result.SizeBytes()))},
				{"Streams", strconv.Itoa(result.Format.NBStreams)},
			}
			if video, ok := result.VideoStream(); ok {
				rows = append(rows,
					[]string{"Video codec", video.CodecName},
					[]string{"Dimensions", fmt.Sprintf("%dx%d", video.Width, video.Height)},
					[]string{"Frame rate", fmt.Sprintf("%.2f fps", video.FrameRate())},
				)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print raw probe data as JSON")
	return cmd
}
