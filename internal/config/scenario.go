package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/guildsim/internal/entity"
	"github.com/samdwyer/guildsim/internal/errors"
	"github.com/samdwyer/guildsim/internal/game"
	"github.com/samdwyer/guildsim/internal/gamedata"
	"github.com/samdwyer/guildsim/internal/world"
)

// Scenario is a balance test plan.
type Scenario struct {
	Seed              int64      `yaml:"seed"`
	FloorCap          int        `yaml:"floor_cap"`
	RestBetweenFloors bool       `yaml:"rest_between_floors"`
	Compositions      [][]string `yaml:"compositions"`

	// Bands replaces the default floor bands when set.
	Bands []BandSpec `yaml:"bands,omitempty"`
}

// BandSpec is a floor band as written in a scenario file.
type BandSpec struct {
	MinFloor int      `yaml:"min_floor"`
	Enemies  []string `yaml:"enemies"`
}

// DefaultScenario returns the embedded scenario.
func DefaultScenario() (*Scenario, error) {
	s, err := gamedata.Load[Scenario](gamedata.DefaultScenarioFile)
	if err != nil {
		return nil, errors.Wrap(err, "load default scenario")
	}
	return &s, nil
}

// LoadScenario reads a scenario file. An empty path loads the embedded
// default. Unknown keys are rejected.
func LoadScenario(path string) (*Scenario, error) {
	if path == "" {
		return DefaultScenario()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("scenario file %s not found", path)
		}
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "decode scenario")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the scenario.
func (s *Scenario) Validate() error {
	vb := errors.NewValidationBuilder()
	if len(s.Compositions) == 0 {
		vb.RequiredField("compositions")
	}
	vb.Range("floor_cap", s.FloorCap, 0, game.MaxFloorCap)
	for i, c := range s.Compositions {
		if len(c) > entity.MaxPartySize {
			vb.Fieldf(fmt.Sprintf("compositions[%d]", i), "has %d members, at most %d allowed", len(c), entity.MaxPartySize)
		}
	}
	for i, b := range s.Bands {
		if len(b.Enemies) == 0 {
			vb.Fieldf(fmt.Sprintf("bands[%d]", i), "enemies is required")
		}
	}
	return vb.Build()
}

// Apply overrides scenario values with any settings that were set.
func (s *Scenario) Apply(set Settings) {
	if set.Seed != nil {
		s.Seed = *set.Seed
	}
	if set.FloorCap > 0 {
		s.FloorCap = set.FloorCap
	}
	if set.RestBetweenFloors != nil {
		s.RestBetweenFloors = *set.RestBetweenFloors
	}
}

// CompositionList returns the compositions as game values.
func (s *Scenario) CompositionList() []game.Composition {
	out := make([]game.Composition, len(s.Compositions))
	for i, c := range s.Compositions {
		out[i] = game.Composition(c)
	}
	return out
}

// Generator builds the floor generator. Unknown enemy names fall back to
// gamedata.DefaultEnemy and are returned in unknown.
func (s *Scenario) Generator() (gen *world.Generator, unknown []string, err error) {
	if len(s.Bands) == 0 {
		return world.DefaultGenerator(), nil, nil
	}

	bands := make([]world.Band, len(s.Bands))
	for i, spec := range s.Bands {
		band, bad := world.ParseBand(spec.MinFloor, spec.Enemies)
		bands[i] = band
		unknown = append(unknown, bad...)
	}
	gen, err = world.NewGenerator(bands)
	if err != nil {
		return nil, nil, err
	}
	return gen, unknown, nil
}
