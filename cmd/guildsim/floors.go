package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samdwyer/guildsim/internal/game"
)

var floorsCount int

var floorsCmd = &cobra.Command{
	Use:   "floors",
	Short: "Print enemy scaling and roster per floor",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := current
		out := cmd.OutOrStdout()

		count := floorsCount
		if count <= 0 {
			count = a.scenario.FloorCap
		}
		if count <= 0 {
			count = game.DefaultFloorCap
		}
		for floor := 1; floor <= count; floor++ {
			plan := a.generator.Floor(floor)
			fmt.Fprintf(out, "Floor %2d  %6.2fx  %s\n", plan.Number, plan.Scaling, strings.Join(plan.RosterNames(), ", "))
		}
		return nil
	},
}

func init() {
	floorsCmd.Flags().IntVarP(&floorsCount, "count", "n", 0, "number of floors to print (default: floor cap)")
}
