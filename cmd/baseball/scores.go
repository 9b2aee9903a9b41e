package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-baseball/internal/platform/tui"
	"github.com/vovakirdan/tui-baseball/internal/storage"
)

var (
	flagLimit     int
	flagScoresTUI bool
	flagTeam      string
	flagGameID    int64
	flagClear     bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recent results and team records",
	Long: `Display recently finished games and every team's record.

Examples:
  baseball scores
  baseball scores --limit 20
  baseball scores --team "Boston Red Sox"
  baseball scores --game 12
  baseball scores --tui`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of recent games to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive results table")
	scoresCmd.Flags().StringVar(&flagTeam, "team", "", "Only show this team's record")
	scoresCmd.Flags().Int64Var(&flagGameID, "game", 0, "Show the box score of one game")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every stored game")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearGames(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing games: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All games deleted.")
		return

	case flagScoresTUI:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return

	case flagGameID > 0:
		printBoxScore(store, flagGameID)
		return
	}

	printRecent(store)
	fmt.Println()
	printRecords(store)
}

func printRecent(store *storage.Store) {
	games, err := store.RecentGames(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving games: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent Games")
	fmt.Println()

	if len(games) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'baseball play' to record the first one!")
		return
	}

	fmt.Printf("  %-4s  %-16s  %-16s  %-7s  %-3s  %s\n", "#", "Visitor", "Home", "Score", "Inn", "Date")
	fmt.Printf("  %-4s  %-16s  %-16s  %-7s  %-3s  %s\n", "--", "-------", "----", "-----", "---", "----")
	for _, g := range games {
		score := fmt.Sprintf("%d-%d", g.VisitorScore, g.HomeScore)
		if !g.Complete {
			score += "*"
		}
		fmt.Printf("  %-4d  %-16.16s  %-16.16s  %-7s  %-3d  %s\n",
			g.ID, g.Visitor, g.Home, score, g.Innings, g.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func printRecords(store *storage.Store) {
	teams := []string{flagTeam}
	if flagTeam == "" {
		var err error
		teams, err = store.Teams()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving teams: %v\n", err)
			os.Exit(1)
		}
	}
	if len(teams) == 0 {
		return
	}

	fmt.Println("Records")
	fmt.Println()
	fmt.Printf("  %-16s  %3s  %3s  %3s  %3s  %4s  %4s\n", "Team", "G", "W", "L", "T", "RF", "RA")
	for _, team := range teams {
		rec, err := store.TeamRecord(team)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving record for %q: %v\n", team, err)
			os.Exit(1)
		}
		fmt.Printf("  %-16.16s  %3d  %3d  %3d  %3d  %4d  %4d\n",
			rec.Team, rec.Games, rec.Wins, rec.Losses, rec.Ties, rec.RunsFor, rec.RunsAgainst)
	}
}

func printBoxScore(store *storage.Store, id int64) {
	g, err := store.GameByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving game: %v\n", err)
		os.Exit(1)
	}
	if g == nil {
		fmt.Fprintf(os.Stderr, "Error: no game #%d\n", id)
		os.Exit(1)
	}

	fmt.Printf("Game #%d - %s at %s (%s)\n\n", g.ID, g.Visitor, g.Home, g.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Printf("  %-16s", "")
	for i := range g.LineScore {
		fmt.Printf("%3d", i+1)
	}
	fmt.Println("     R")
	for side, name := range []string{g.Visitor, g.Home} {
		fmt.Printf("  %-16.16s", name)
		for _, inn := range g.LineScore {
			fmt.Printf("%3d", inn[side])
		}
		fmt.Printf("   %3d\n", []int{g.VisitorScore, g.HomeScore}[side])
	}

	plays, err := store.GamePlays(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving plays: %v\n", err)
		os.Exit(1)
	}
	if len(plays) == 0 {
		return
	}

	fmt.Println()
	for _, p := range plays {
		runs := ""
		if p.Runs > 0 {
			runs = fmt.Sprintf(" (+%d)", p.Runs)
		}
		fmt.Printf("  %-6s %-2d  %-16.16s %s%s\n", p.Half, p.Inning, p.Batting, p.Description, runs)
	}
}
