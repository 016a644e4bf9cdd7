package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wfpath/grid"
	"github.com/katalvlaran/wfpath/path"
)

func newGridCommand() *cobra.Command {
	var (
		t0, t1, dt float64
		minSteps   int
	)
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the time grid for an interval",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			times, err := grid.Build(t0, t1, dt, minSteps)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, t := range times {
				fmt.Fprintln(out, t)
			}

			return nil
		},
	}
	cmd.Flags().Float64Var(&t0, "t0", 0, "interval start")
	cmd.Flags().Float64Var(&t1, "t1", 1, "interval end")
	cmd.Flags().Float64Var(&dt, "dt", path.DefaultStep, "target step size")
	cmd.Flags().IntVar(&minSteps, "min-grid", path.DefaultMinSteps, "minimum number of steps")

	return cmd
}
