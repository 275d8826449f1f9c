package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-quest/internal/platform/tui"
	"github.com/vovakirdan/star-quest/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game. Stars and best scores are saved
for the current profile.

Controls:
  Left/Right, A/D  - Switch lane / move cursor
  Up/Down, W/S     - Move cursor
  Space            - Tap (drop, hit, reveal at cursor)
  Mouse click      - Tap at the pointer
  P                - Pause
  R                - Restart the round
  B/Esc            - Back
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Examples:
  starquest play runner
  starquest play orbit --seed 42
  starquest play tower --config ./my-games.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	if gameID == "fireworks" {
		return runCongrats(cmd, nil)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'starquest list' to see available games)", err)
	}

	env := openApp()
	defer env.Close()

	if err := tui.RunGame(game, env.session, runtimeConfig()); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
