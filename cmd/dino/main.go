// dino is a side-scrolling runner game for the terminal.
//
// Usage:
//
//	dino play                - Play in the current terminal
//	dino serve               - Start SSH server for remote play
//	dino scores              - Show the best runs
//	dino config              - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible obstacle streams
//	--db <path>       - Set database path (default: ~/.dino/scores.db)
//	--config <path>   - Use a custom game config YAML
//	--assets <dir>    - Load sprites from a different directory
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-runner/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
	flagAssets string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dino",
	Short: "Dino Runner - jump and duck through an endless desert",
	Long: `Dino Runner is a terminal take on the offline dinosaur game.
Jump over cacti, duck under birds and chase your high score.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View the best runs
  config   - Print the effective game configuration

Examples:
  dino play
  dino play --backend tcell --sound
  dino serve --ssh :2222
  dino scores --recent`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Sprite directory (overrides the config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// defaultPlayer names local runs after the logged-in user.
func defaultPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
