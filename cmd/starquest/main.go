// starquest is a terminal birthday quest: five mini-games, one star each,
// and a fireworks finale once all five are collected.
//
// Usage:
//
//	starquest                    - Open the hub (same as 'starquest hub')
//	starquest list               - List available games
//	starquest play <game>        - Play a game directly
//	starquest congrats           - Open the finale (needs all five stars)
//	starquest stars [--reset]    - Show or clear collected stars
//	starquest scores <game>      - Show high scores for a game
//	starquest serve              - Start SSH server for remote play
//	starquest config init        - Write the default games.yaml
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible rounds
//	--db <path>         - Set database path (default: ~/.starquest/starquest.db)
//	--config <path>     - Use a custom games.yaml
//	--profile <name>    - Star profile to play as (default: OS user)
//	--mute              - Disable sound
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/star-quest/internal/games/fireworks"
	_ "github.com/vovakirdan/star-quest/internal/games/memory"
	_ "github.com/vovakirdan/star-quest/internal/games/mines"
	_ "github.com/vovakirdan/star-quest/internal/games/orbit"
	_ "github.com/vovakirdan/star-quest/internal/games/runner"
	_ "github.com/vovakirdan/star-quest/internal/games/tower"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagProfile  string
	flagMute     bool
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starquest",
	Short: "Star Quest - a birthday quest in your terminal",
	Long: `Star Quest is a set of five mini-games played in the terminal.
Every game awards one star; collect all five to open the congratulations
and the fireworks.

Available commands:
  hub      - Interactive hub (default)
  list     - Show all available games
  play     - Play a specific game directly
  congrats - Open the finale
  stars    - Show or reset collected stars
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Manage games.yaml

Settings can also come from a .env file:
  STARQUEST_DB, STARQUEST_PROFILE, STARQUEST_SSH_ADDR,
  STARQUEST_TO, STARQUEST_FROM

Examples:
  starquest
  starquest play orbit
  starquest stars --reset
  starquest serve --ssh :2222`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadEnv(cmd)
	},
	RunE: runHub,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to stars and scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom games.yaml")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "Star profile (default: OS user name)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(hubCmd)
	rootCmd.AddCommand(congratsCmd)
	rootCmd.AddCommand(starsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
