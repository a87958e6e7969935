// Package gamedata holds the fixed job and enemy tables and the embedded
// default scenario.
package gamedata

import "embed"

// dataFS embeds the default scenario at build time.
//
//go:embed scenario.yaml
var dataFS embed.FS

// DefaultScenarioFile is the embedded scenario loaded when no file is given.
const DefaultScenarioFile = "scenario.yaml"
