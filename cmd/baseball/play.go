package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-baseball/internal/core"
	"github.com/vovakirdan/tui-baseball/internal/platform/tui"
	"github.com/vovakirdan/tui-baseball/internal/storage"
)

var (
	flagInnings int
	flagVisitor string
	flagHome    string
	flagPace    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game. You bat for both teams.

Controls:
  Space      - Swing
  R          - New game (after game over)
  S          - Results (after game over)
  ?          - Help
  Q/Ctrl+C   - Quit

Pace options:
  slow    - Messages stay up 50% longer
  normal  - Arcade timing
  fast    - Messages stay up half as long
  instant - No pauses between pitches

Examples:
  baseball play
  baseball play --innings 9
  baseball play --visitor "Chicago Cubs" --home "St. Louis Cardinals"
  baseball play --pace fast`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagInnings, "innings", 0, "Regulation innings (default from config)")
	playCmd.Flags().StringVar(&flagVisitor, "visitor", "", "Visiting team name")
	playCmd.Flags().StringVar(&flagHome, "home", "", "Home team name")
	playCmd.Flags().StringVar(&flagPace, "pace", "", "Pace preset: slow, normal, fast, instant")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	applyPace(&cfg, flagPace)
	if flagInnings > 0 {
		cfg.Game.Innings = flagInnings
	}
	if flagVisitor != "" {
		cfg.Game.Visitor = flagVisitor
	}
	if flagHome != "" {
		cfg.Game.Home = flagHome
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open results storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(cfg, store, rc, playerName())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

func playerName() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}
