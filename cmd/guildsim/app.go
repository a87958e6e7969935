package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/guildsim/internal/config"
	"github.com/samdwyer/guildsim/internal/events"
	"github.com/samdwyer/guildsim/internal/game"
	"github.com/samdwyer/guildsim/internal/logging"
	"github.com/samdwyer/guildsim/internal/telemetry"
	"github.com/samdwyer/guildsim/internal/world"
)

// Global flag values.
var opts struct {
	scenario string
	seed     int64
	floorCap int
	rest     bool
}

// app is the state shared by every command.
type app struct {
	ctx       context.Context
	cancel    context.CancelFunc
	settings  config.Settings
	scenario  *config.Scenario
	generator *world.Generator
	logger    *slog.Logger
	sink      events.Sink

	logCloser io.Closer
	shutdown  func(context.Context) error
}

var current *app

func setupApp(cmd *cobra.Command, _ []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(settings.Logging())
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	path := settings.Scenario
	if cmd.Flags().Changed("scenario") {
		path = opts.scenario
	}
	scenario, err := config.LoadScenario(path)
	if err != nil {
		closer.Close()
		return err
	}
	scenario.Apply(settings)
	applyFlags(cmd, scenario)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	shutdown, err := telemetry.Setup(ctx, telemetry.Options{
		Enabled:    settings.Telemetry,
		Attributes: []attribute.KeyValue{attribute.Int64("guildsim.seed", scenario.Seed)},
	})
	if err != nil {
		logger.Warn("telemetry setup failed, continuing without tracing", slog.Any("error", err))
		shutdown = func(context.Context) error { return nil }
	}

	a := &app{
		ctx:       ctx,
		cancel:    cancel,
		settings:  settings,
		scenario:  scenario,
		logger:    logger,
		sink:      events.Fanout(events.SpanSink{}, events.NewLogSink(logger)),
		logCloser: closer,
		shutdown:  shutdown,
	}

	gen, unknown, err := scenario.Generator()
	if err != nil {
		a.close()
		return err
	}
	for _, name := range unknown {
		a.sink.Emit(ctx, events.Event{Kind: events.KindEnemyFallback, Detail: name})
	}
	a.generator = gen

	current = a
	return nil
}

// teardownApp flushes telemetry and closes the log file. Safe to call when
// setup never ran.
func teardownApp() {
	if current != nil {
		current.close()
		current = nil
	}
}

func (a *app) close() {
	if err := a.shutdown(context.Background()); err != nil {
		a.logger.Error("telemetry shutdown failed", slog.Any("error", err))
	}
	a.cancel()
	a.logCloser.Close()
}

// applyFlags overrides scenario values with flags given on the command line.
func applyFlags(cmd *cobra.Command, s *config.Scenario) {
	flags := cmd.Flags()
	if flags.Changed("seed") {
		s.Seed = opts.seed
	}
	if flags.Changed("floor-cap") {
		s.FloorCap = opts.floorCap
	}
	if flags.Changed("rest") {
		s.RestBetweenFloors = opts.rest
	}
}

// runner builds a dungeon runner from the resolved scenario.
func (a *app) runner(sink events.Sink, keepLogs bool) (*game.Runner, error) {
	return game.NewRunner(&game.Config{
		FloorCap:          a.scenario.FloorCap,
		RestBetweenFloors: a.scenario.RestBetweenFloors,
		KeepLogs:          keepLogs,
		Generator:         a.generator,
		Sink:              sink,
		Logger:            a.logger,
	})
}
