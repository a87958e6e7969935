package balance_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/samdwyer/guildsim/internal/balance"
	"github.com/samdwyer/guildsim/internal/errors"
	"github.com/samdwyer/guildsim/internal/events"
	"github.com/samdwyer/guildsim/internal/game"
)

var referenceCompositions = []game.Composition{
	{"Warrior", "Warrior", "Warrior", "Priest"},
	{"Warrior", "Mage", "Priest", "Archer"},
	{"Warrior", "Thief", "Priest", "Mage"},
	{"Thief", "Thief", "Thief", "Priest"},
	{"Archer", "Archer", "Archer", "Priest"},
}

func newHarness(t *testing.T, workers int, sink events.Sink) *balance.Harness {
	t.Helper()
	runner, err := game.NewRunner(&game.Config{FloorCap: 30, Sink: sink})
	require.NoError(t, err)
	h, err := balance.NewHarness(&balance.Config{Runner: runner, Seed: 1, Workers: workers})
	require.NoError(t, err)
	return h
}

func TestNewHarnessValidation(t *testing.T) {
	_, err := balance.NewHarness(nil)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = balance.NewHarness(&balance.Config{})
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "runner")
}

func TestRankIsSortedAndComplete(t *testing.T) {
	ranking, err := newHarness(t, 4, nil).Rank(context.Background(), referenceCompositions)
	require.NoError(t, err)

	require.Len(t, ranking.Results, len(referenceCompositions))
	assert.Equal(t, 30, ranking.FloorCap)
	for i := 1; i < len(ranking.Results); i++ {
		assert.GreaterOrEqual(t, ranking.Results[i-1].MaxFloorReached, ranking.Results[i].MaxFloorReached)
	}
	for _, res := range ranking.Results {
		assert.GreaterOrEqual(t, res.FinalScaling, 1.0)
		assert.NotEqual(t, game.StatusRunning, res.Status)
		assert.Zero(t, res.Fallbacks)
	}
}

func TestResultsIndependentOfWorkerCount(t *testing.T) {
	ctx := context.Background()

	serial, err := newHarness(t, 1, nil).Run(ctx, referenceCompositions)
	require.NoError(t, err)
	parallel, err := newHarness(t, 8, nil).Run(ctx, referenceCompositions)
	require.NoError(t, err)

	assert.Equal(t, serial, parallel)
	for i, res := range serial {
		assert.Equal(t, referenceCompositions[i], res.Composition)
	}
}

func TestOversizedCompositionFailsRun(t *testing.T) {
	comps := append([]game.Composition{}, referenceCompositions...)
	comps = append(comps, game.Composition{"Warrior", "Warrior", "Warrior", "Warrior", "Warrior"})

	_, err := newHarness(t, 2, nil).Rank(context.Background(), comps)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "composition 5")
}

func TestFallbacksAreCounted(t *testing.T) {
	collector := &events.Collector{}
	comps := []game.Composition{{"Paladin", "Bard"}, {"Warrior"}}

	results, err := newHarness(t, 2, collector).Run(context.Background(), comps)
	require.NoError(t, err)

	assert.Equal(t, 2, results[0].Fallbacks)
	assert.Zero(t, results[1].Fallbacks)
	assert.Equal(t, 2, collector.Count(events.KindJobFallback))
}

func TestSortByFloorIsStable(t *testing.T) {
	results := []*game.Result{
		{Composition: game.Composition{"A"}, MaxFloorReached: 3},
		{Composition: game.Composition{"B"}, MaxFloorReached: 7},
		{Composition: game.Composition{"C"}, MaxFloorReached: 3},
		{Composition: game.Composition{"D"}, MaxFloorReached: 7},
	}
	balance.SortByFloor(results)

	var order []string
	for _, r := range results {
		order = append(order, r.Composition[0])
	}
	assert.Equal(t, []string{"B", "D", "A", "C"}, order)
}

func sampleRanking() *balance.Ranking {
	return &balance.Ranking{
		Seed:     1,
		FloorCap: 30,
		Results: []*game.Result{
			{Composition: game.Composition{"Warrior", "Priest"}, MaxFloorReached: 12, TotalVictories: 12, FinalScaling: 2.853116706110003, Status: game.StatusDefeated},
			{Composition: game.Composition{"Mage"}, MaxFloorReached: 2, TotalVictories: 2, FinalScaling: 1.1, Status: game.StatusTimedOut, Fallbacks: 1},
		},
	}
}

func TestParseFormat(t *testing.T) {
	for name, want := range map[string]balance.Format{
		"table": balance.FormatTable,
		"JSON":  balance.FormatJSON,
		"yaml":  balance.FormatYAML,
		"yml":   balance.FormatYAML,
	} {
		got, err := balance.ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := balance.ParseFormat("csv")
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestWriteReportTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, balance.WriteReport(&buf, sampleRanking(), balance.FormatTable))

	out := buf.String()
	assert.Contains(t, out, "RANK")
	assert.Contains(t, out, "Warrior, Priest")
	assert.Contains(t, out, "2.85x")
	assert.Contains(t, out, "timed_out")
}

func TestWriteReportJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, balance.WriteReport(&buf, sampleRanking(), balance.FormatJSON))

	var decoded struct {
		FloorCap int `json:"floor_cap"`
		Ranking  []struct {
			Rank        int      `json:"rank"`
			Composition []string `json:"composition"`
			Status      string   `json:"status"`
		} `json:"ranking"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 30, decoded.FloorCap)
	require.Len(t, decoded.Ranking, 2)
	assert.Equal(t, 2, decoded.Ranking[1].Rank)
	assert.Equal(t, "defeated", decoded.Ranking[0].Status)
	assert.Equal(t, []string{"Warrior", "Priest"}, decoded.Ranking[0].Composition)
}

func TestWriteReportYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, balance.WriteReport(&buf, sampleRanking(), balance.FormatYAML))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 30, decoded["floor_cap"])
	assert.Contains(t, buf.String(), "status: timed_out")
}
