package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-quest/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the games.yaml tuning file",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default games.yaml",
	Long: `Write the built-in tuning to a file you can edit. Without a path the
file goes to ~/.starquest/configs/games.yaml, which is picked up on the next
start. Existing files are never overwritten.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		path := config.UserConfigPath()
		if len(args) == 1 {
			path = args[0]
		}
		if path == "" {
			return fmt.Errorf("cannot resolve home directory, pass a path")
		}
		if err := config.WriteDefault(path); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print where the user games.yaml is looked up",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(config.UserConfigPath())
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}
