// Package main is the entry point for the guildsim balance simulator.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/samdwyer/guildsim/internal/errors"
)

var rootCmd = &cobra.Command{
	Use:   "guildsim",
	Short: "Turn-based party balance simulator",
	Long: `guildsim runs adventurer parties through a scaling dungeon and ranks
party compositions by the deepest floor they clear.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupApp,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.scenario, "scenario", "", "scenario YAML file (default: embedded scenario)")
	flags.Int64Var(&opts.seed, "seed", 0, "base random seed")
	flags.IntVar(&opts.floorCap, "floor-cap", 0, "last floor attempted")
	flags.BoolVar(&opts.rest, "rest", false, "heal living members to full between floors")

	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(floorsCmd)
}

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	err := rootCmd.Execute()
	teardownApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.GetCode(err).ExitCode())
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_GUILDSIM_API_KEY")
	if apiKey == "" {
		return
	}
	dataset := os.Getenv("HONEYCOMB_GUILDSIM_DATASET")
	if dataset == "" {
		dataset = "guildsim"
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
