// baseball is Terminal League Baseball: time your swing in the terminal.
//
// Usage:
//
//	baseball play            - Play a game
//	baseball sim             - Watch two CPU batters play a game
//	baseball scores          - Show recent results and team records
//	baseball serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set redraw rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible games
//	--db <path>      - Set database path (default: ~/.baseball/games.db)
//	--config <path>  - Use a custom game config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-baseball/internal/config"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "baseball",
	Short: "Terminal League Baseball - time your swing in the terminal",
	Long: `Terminal League Baseball is a one-button batting game. The pitcher
throws, the ball travels to the plate, and you press SPACE in the last
quarter of its flight to put it in play.

Available commands:
  play     - Play a game
  sim      - Headless game between CPU batters
  scores   - View recent results and team records
  serve    - Start SSH server for remote play

Examples:
  baseball play
  baseball play --innings 9 --pace fast
  baseball sim --pace instant --board
  baseball scores --tui
  baseball serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Redraw rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.baseball/games.db", "Path to games database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the game config or exits.
func loadConfig() config.BaseballConfig {
	cfg, err := config.LoadBaseball(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// applyPace applies a --pace preset or exits.
func applyPace(cfg *config.BaseballConfig, pace string) {
	if err := config.ApplyPacePreset(cfg, pace); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
