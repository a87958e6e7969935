package main

import (
	"github.com/spf13/cobra"

	"github.com/samdwyer/guildsim/internal/balance"
	"github.com/samdwyer/guildsim/internal/ui"
)

var rankOpts struct {
	format  string
	workers int
	view    bool
}

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank the scenario's party compositions",
	Long: `Run every composition in the scenario through the dungeon and rank them
by the deepest floor cleared.`,
	Args: cobra.NoArgs,
	RunE: runRank,
}

func init() {
	rankCmd.Flags().StringVarP(&rankOpts.format, "format", "f", "table", "report format: table, json or yaml")
	rankCmd.Flags().IntVarP(&rankOpts.workers, "workers", "w", 0, "parallel runs (default from GUILDSIM_WORKERS)")
	rankCmd.Flags().BoolVar(&rankOpts.view, "view", false, "browse the ranking in an interactive terminal view")
}

func runRank(cmd *cobra.Command, _ []string) error {
	a := current

	format, err := balance.ParseFormat(rankOpts.format)
	if err != nil {
		return err
	}

	runner, err := a.runner(a.sink, false)
	if err != nil {
		return err
	}

	workers := a.settings.Workers
	if rankOpts.workers > 0 {
		workers = rankOpts.workers
	}
	harness, err := balance.NewHarness(&balance.Config{
		Runner:  runner,
		Seed:    a.scenario.Seed,
		Workers: workers,
		Logger:  a.logger,
	})
	if err != nil {
		return err
	}

	ranking, err := harness.Rank(a.ctx, a.scenario.CompositionList())
	if err != nil {
		return err
	}

	if rankOpts.view {
		screen, err := ui.NewScreen()
		if err != nil {
			return err
		}
		defer screen.Close()
		return ui.NewViewer(screen, ranking).Run(a.ctx)
	}
	return balance.WriteReport(cmd.OutOrStdout(), ranking, format)
}
