package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-quest/internal/platform/tui"
)

var congratsCmd = &cobra.Command{
	Use:   "congrats",
	Short: "Open the congratulations finale",
	Long: `Show the congratulations card and the fireworks. The finale stays
locked until the profile holds all five stars.

Set STARQUEST_TO and STARQUEST_FROM to personalize the card.

Controls:
  Space/Click  - Launch a burst
  R            - Start the show again
  B/Q          - Leave`,
	Args: cobra.NoArgs,
	RunE: runCongrats,
}

func runCongrats(_ *cobra.Command, _ []string) error {
	env := openApp()
	defer env.Close()

	if err := tui.RunFinale(env.session, greeting(), runtimeConfig()); err != nil {
		return fmt.Errorf("error running finale: %w", err)
	}
	return nil
}
