package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-quest/internal/platform/tui"
	"github.com/vovakirdan/star-quest/internal/storage"
)

var flagResetStars bool

var starsCmd = &cobra.Command{
	Use:   "stars",
	Short: "Show or reset collected stars",
	Long: `Print the stars the current profile holds.

Examples:
  starquest stars
  starquest stars --profile egor
  starquest stars --reset`,
	Args: cobra.NoArgs,
	RunE: runStars,
}

func init() {
	starsCmd.Flags().BoolVar(&flagResetStars, "reset", false, "Clear every star for the profile")
}

func runStars(_ *cobra.Command, _ []string) error {
	logger, closer := newLogger(false)
	defer closer.Close()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	profile := profileName()
	if flagResetStars {
		if err := store.ResetStars(profile); err != nil {
			return err
		}
		logger.Info("stars reset", "profile", profile)
	}

	stars, err := store.LoadStars(profile)
	if err != nil {
		return err
	}

	fmt.Printf("Stars for %s: %d/%d\n", profile, stars.Count(), len(storage.StarGames))
	fmt.Println()
	for _, e := range tui.HubEntries() {
		mark := "☆"
		if stars.Has(e.GameID) {
			mark = "★"
		}
		fmt.Printf("  %s  %-14s %s\n", mark, e.Title, e.Goal)
	}

	fmt.Println()
	if stars.Unlocked() {
		fmt.Println("Everything collected! Run 'starquest congrats'.")
	} else {
		fmt.Println("Collect all stars to open the congratulations.")
	}
	return nil
}
