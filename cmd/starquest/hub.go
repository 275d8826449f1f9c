package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-quest/internal/platform/tui"
)

var hubCmd = &cobra.Command{
	Use:   "hub",
	Short: "Open the star hub",
	Long: `Start the quest in interactive mode.

The hub lists the five games with their stars. Pick a game with the arrow
keys and Enter; after leaving a game you return to the hub. Once every star
is collected the congratulations entry opens.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Play
  C            - Congratulations
  Tab          - High scores
  Q            - Quit

Examples:
  starquest hub
  starquest hub --fps 30
  starquest hub --profile egor`,
	RunE: runHub,
}

func runHub(_ *cobra.Command, _ []string) error {
	env := openApp()
	defer env.Close()

	env.logger.Info("hub opened", "profile", env.session.Profile, "stars", env.session.Stars().Count())
	if err := tui.RunApp(env.session, env.store, greeting(), runtimeConfig()); err != nil {
		return fmt.Errorf("error running hub: %w", err)
	}
	return nil
}
