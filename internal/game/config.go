package game

import (
	"log/slog"

	"github.com/samdwyer/guildsim/internal/errors"
	"github.com/samdwyer/guildsim/internal/events"
	"github.com/samdwyer/guildsim/internal/world"
)

const (
	// DefaultFloorCap is the deepest floor attempted when none is configured.
	DefaultFloorCap = 30
	// MaxFloorCap bounds configured caps.
	MaxFloorCap = 1000
)

// Config holds dungeon run options.
type Config struct {
	// FloorCap is the last floor attempted. Zero means DefaultFloorCap.
	FloorCap int

	// RestBetweenFloors heals living members to full after each cleared
	// floor. Off by default: damage carries over from floor to floor.
	RestBetweenFloors bool

	// KeepLogs retains per-attack combat logs in the result.
	KeepLogs bool

	Generator *world.Generator // nil uses world.DefaultGenerator()
	Sink      events.Sink      // nil discards events
	Logger    *slog.Logger     // nil uses slog.Default()
}

// Validate checks the config.
func (c *Config) Validate() error {
	return errors.NewValidationBuilder().
		Range("floor_cap", c.FloorCap, 0, MaxFloorCap).
		Build()
}

func (c *Config) withDefaults() Config {
	out := *c
	if out.FloorCap == 0 {
		out.FloorCap = DefaultFloorCap
	}
	if out.Generator == nil {
		out.Generator = world.DefaultGenerator()
	}
	if out.Sink == nil {
		out.Sink = events.Nop{}
	}
	if out.Logger == nil {
		out.Logger = slog.Default()
	}
	return out
}
