package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/dragcal/internal/simulate"
)

func (a *App) simulateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "simulate <script.toml>",
		Short: "Replay a scripted pointer sequence through the drag engine",
		Long: `Replay a TOML script of pointer samples through the real drag controllers
and print the lifecycle events they emit and the guide boxes they paint.

Example script:
  [grid]
  height = 480
  date = "2025-01-06"

  [[step]]
  controller = "time"
  type = "down"
  x = 250
  y = 180`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := simulate.Load(args[0])
			if err != nil {
				return err
			}
			res, err := simulate.Run(script)
			if err != nil {
				return fmt.Errorf("running script: %w", err)
			}
			printResult(cmd.OutOrStdout(), res, termWidth())
			return nil
		},
	}
}
