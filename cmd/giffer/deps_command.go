package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"giffer/internal/deps"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "deps",
		Short: "Show external tool availability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			statuses := deps.CheckBinaries(deps.Runtime(cfg))

			if jsonOut {
				if err := printJSON(cmd, statuses); err != nil {
					return err
				}
			} else {
				colorize := shouldColorize(cmd.OutOrStdout())
				rows := make([][]string, 0, len(statuses))
				for _, status := range statuses {
					rows = append(rows, []string{
						status.Name,
						colorizeStatus(status.Available, colorize),
						status.Command,
						status.Detail,
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Tool", "Status", "Command", "Notes"}, rows))
			}

			if deps.FirstMissing(statuses) != nil {
				return errors.New("one or more required tools are missing")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print dependency status as JSON")
	return cmd
}
