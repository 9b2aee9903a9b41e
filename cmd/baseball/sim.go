package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-baseball/internal/baseball"
	"github.com/vovakirdan/tui-baseball/internal/config"
	"github.com/vovakirdan/tui-baseball/internal/platform/headless"
	"github.com/vovakirdan/tui-baseball/internal/platform/tui"
	"github.com/vovakirdan/tui-baseball/internal/storage"
)

var (
	flagSimPace   string
	flagSkill     float64
	flagTakeRate  float64
	flagBoard     bool
	flagSave      bool
	flagVerbose   bool
	flagMaxPitch  int
	flagSimPlayer string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Play a game between CPU batters",
	Long: `Play a game without a terminal UI. A CPU batter takes every at-bat
and the play-by-play is logged to stderr.

The CPU swings once per pitch at a random moment. --skill is the chance
that the swing is aimed at the good window, --take-rate the chance that
it does not swing at all.

Examples:
  baseball sim
  baseball sim --pace instant --board
  baseball sim --skill 0.8 --innings 9 --seed 42
  baseball sim --pace instant --save`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagInnings, "innings", 0, "Regulation innings (default from config)")
	simCmd.Flags().StringVar(&flagSimPace, "pace", "instant", "Pace preset: slow, normal, fast, instant")
	simCmd.Flags().Float64Var(&flagSkill, "skill", -1, "CPU skill 0.0-1.0 (default from config)")
	simCmd.Flags().Float64Var(&flagTakeRate, "take-rate", -1, "CPU take rate 0.0-1.0 (default from config)")
	simCmd.Flags().BoolVar(&flagBoard, "board", false, "Print the final field when the game ends")
	simCmd.Flags().BoolVar(&flagSave, "save", false, "Save the result to the games database")
	simCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every pitch")
	simCmd.Flags().IntVar(&flagMaxPitch, "max-pitches", headless.DefaultMaxPitches, "Stop the game after this many pitches (negative = no limit)")
	simCmd.Flags().StringVar(&flagSimPlayer, "player", "cpu", "Player name stored with a saved result")
}

func runSim(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	applyPace(&cfg, flagSimPace)
	if flagInnings > 0 {
		cfg.Game.Innings = flagInnings
	}
	if flagSkill >= 0 {
		cfg.CPU.Skill = flagSkill
	}
	if flagTakeRate >= 0 {
		cfg.CPU.TakeRate = flagTakeRate
	}

	instant := config.IsInstant(config.PacePreset(flagSimPace))

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: !instant,
		Prefix:          "sim",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sim := headless.New(cfg, headless.Options{
		Seed:       flagSeed,
		Instant:    instant,
		MaxPitches: flagMaxPitch,
		Logger:     logger,
	})

	res, err := sim.Play(ctx)
	switch {
	case errors.Is(err, headless.ErrPitchLimit):
		logger.Warn("game stopped", "pitches", res.Pitches)
	case errors.Is(err, context.Canceled):
		logger.Warn("game interrupted")
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagBoard {
		fmt.Println(tui.FieldText(tui.FieldView{Snap: sim.Last(), Message: res.Summary()}))
		fmt.Println()
	}
	printLineScore(res)

	if flagSave && res.Complete {
		saveResult(res)
	}
}

func printLineScore(res baseball.Result) {
	var header strings.Builder
	fmt.Fprintf(&header, "  %-16s", "")
	for i := range res.LineScore {
		fmt.Fprintf(&header, "%3d", i+1)
	}
	header.WriteString("     R")
	fmt.Println(header.String())

	for side, name := range res.Teams {
		var line strings.Builder
		fmt.Fprintf(&line, "  %-16.16s", name)
		for _, inn := range res.LineScore {
			fmt.Fprintf(&line, "%3d", inn[side])
		}
		fmt.Fprintf(&line, "   %3d", res.Score[side])
		fmt.Println(line.String())
	}

	fmt.Println()
	if res.Complete {
		fmt.Printf("%s (%d innings, %d pitches)\n", res.Summary(), res.Innings, res.Pitches)
	} else {
		fmt.Printf("Not finished (%d pitches)\n", res.Pitches)
	}
}

func saveResult(res baseball.Result) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		return
	}
	defer store.Close()

	id, err := store.SaveGame(flagSimPlayer, res)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save game: %v\n", err)
		return
	}
	fmt.Printf("Saved as game #%d\n", id)
}
