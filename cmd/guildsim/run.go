package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/samdwyer/guildsim/internal/events"
	"github.com/samdwyer/guildsim/internal/game"
)

var runOpts struct {
	showLog    bool
	showEvents bool
}

var runCmd = &cobra.Command{
	Use:   "run JOB [JOB...]",
	Short: "Run one party through the dungeon",
	Long: `Run a single composition through the dungeon floor by floor. Jobs are
given in formation order; the first three fight in the front row.`,
	Example: "  guildsim run Warrior Thief Priest Mage --seed 42 --log",
	Args:    cobra.RangeArgs(1, 4),
	RunE:    runDungeon,
}

func init() {
	runCmd.Flags().BoolVar(&runOpts.showLog, "log", false, "print every attack")
	runCmd.Flags().BoolVar(&runOpts.showEvents, "events", false, "print lifecycle events")
}

func runDungeon(cmd *cobra.Command, args []string) error {
	a := current
	out := cmd.OutOrStdout()

	collector := &events.Collector{}
	runner, err := a.runner(events.Fanout(a.sink, collector), runOpts.showLog)
	if err != nil {
		return err
	}

	comp := game.Composition(args)
	result, err := runner.Run(a.ctx, comp, rand.New(rand.NewSource(a.scenario.Seed)))
	if err != nil {
		return err
	}

	for _, fr := range result.Floors {
		fmt.Fprintf(out, "Floor %2d  %.2fx  %-8s  %3d turns  party HP %d\n",
			fr.Floor, fr.Scaling, fr.Outcome, fr.Turns, fr.PartyHP)
		for _, e := range fr.Log {
			status := ""
			if !e.TargetAlive {
				status = " (down)"
			}
			fmt.Fprintf(out, "    t%-3d %s -> %s: %d%s\n", e.Turn, e.Attacker, e.Target, e.Damage, status)
		}
	}

	if runOpts.showEvents {
		fmt.Fprintln(out)
		for _, e := range collector.Events() {
			fmt.Fprintf(out, "%-18s floor %-3d %s\n", e.Kind, e.Floor, e.Detail)
		}
	}

	fmt.Fprintf(out, "\n%s: %s, max floor %d, %d victories, final scaling %.2fx\n",
		comp, result.Status, result.MaxFloorReached, result.TotalVictories, result.FinalScaling)
	if result.Fallbacks > 0 {
		fmt.Fprintf(out, "warning: %d unknown job(s) replaced with Warrior\n", result.Fallbacks)
	}
	return nil
}
