// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-baseball/internal/baseball"
)

// Winner values stored in games.winner.
const (
	WinnerVisitor = "visitor"
	WinnerHome    = "home"
	WinnerTie     = "tie"
)

// Store manages the SQLite database connection for game results.
type Store struct {
	db *sql.DB
}

// GameRecord is one stored game.
type GameRecord struct {
	ID           int64
	Player       string
	Visitor      string
	Home         string
	VisitorScore int
	HomeScore    int
	Innings      int
	Winner       string
	Complete     bool
	Pitches      int
	LineScore    [][2]int // only filled by GameByID
	CreatedAt    time.Time
}

// WinnerName returns the winning team's name, or empty on a tie.
func (g GameRecord) WinnerName() string {
	switch g.Winner {
	case WinnerVisitor:
		return g.Visitor
	case WinnerHome:
		return g.Home
	default:
		return ""
	}
}

// PlayRecord is one stored plate appearance.
type PlayRecord struct {
	Seq         int
	Inning      int
	Half        string
	Batting     string
	Kind        string
	Description string
	Runs        int
}

// TeamRecord is a team's aggregated record across stored games.
type TeamRecord struct {
	Team        string
	Games       int
	Wins        int
	Losses      int
	Ties        int
	RunsFor     int
	RunsAgainst int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// SSH sessions save concurrently; one connection serializes the writes.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL DEFAULT '',
			visitor TEXT NOT NULL,
			home TEXT NOT NULL,
			visitor_score INTEGER NOT NULL DEFAULT 0,
			home_score INTEGER NOT NULL DEFAULT 0,
			innings INTEGER NOT NULL,
			winner TEXT NOT NULL,
			complete INTEGER NOT NULL DEFAULT 1,
			pitches INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_visitor ON games(visitor);
		CREATE INDEX IF NOT EXISTS idx_games_home ON games(home);
		CREATE INDEX IF NOT EXISTS idx_games_created ON games(created_at DESC);

		CREATE TABLE IF NOT EXISTS line_scores (
			game_id INTEGER NOT NULL REFERENCES games(id) ON DELETE CASCADE,
			inning INTEGER NOT NULL,
			visitor_runs INTEGER NOT NULL DEFAULT 0,
			home_runs INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (game_id, inning)
		);

		CREATE TABLE IF NOT EXISTS plays (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id INTEGER NOT NULL REFERENCES games(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			inning INTEGER NOT NULL,
			half TEXT NOT NULL,
			batting TEXT NOT NULL,
			kind TEXT NOT NULL,
			description TEXT NOT NULL,
			runs INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_plays_game ON plays(game_id, seq);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveGame records a game with its line score and play-by-play in one
// transaction. Returns the ID of the inserted game.
func (s *Store) SaveGame(player string, r baseball.Result) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	res, err := tx.Exec(
		`INSERT INTO games
		 (player, visitor, home, visitor_score, home_score, innings, winner, complete, pitches)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		player,
		r.Teams[baseball.Visitor],
		r.Teams[baseball.Home],
		r.Score[baseball.Visitor],
		r.Score[baseball.Home],
		r.Innings,
		winnerOf(r),
		r.Complete,
		r.Pitches,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save game: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	for i, line := range r.LineScore {
		if _, err := tx.Exec(
			`INSERT INTO line_scores (game_id, inning, visitor_runs, home_runs) VALUES (?, ?, ?, ?)`,
			id, i+1, line[baseball.Visitor], line[baseball.Home],
		); err != nil {
			return 0, fmt.Errorf("storage: cannot save line score: %w", err)
		}
	}

	for i, p := range r.Plays {
		if _, err := tx.Exec(
			`INSERT INTO plays (game_id, seq, inning, half, batting, kind, description, runs)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			id, i+1, p.Inning, p.Half.String(), r.Teams[p.Batting], p.Kind.String(), p.Description, p.Runs,
		); err != nil {
			return 0, fmt.Errorf("storage: cannot save play: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit game: %w", err)
	}
	return id, nil
}

const gameColumns = `id, player, visitor, home, visitor_score, home_score, innings, winner, complete, pitches, created_at`

// RecentGames retrieves the most recent games, newest first.
func (s *Store) RecentGames(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+gameColumns+`
		 FROM games
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var games []GameRecord
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return games, nil
}

// GameByID retrieves one game with its line score. Returns nil if no such
// game exists.
func (s *Store) GameByID(id int64) (*GameRecord, error) {
	row := s.db.QueryRow(`SELECT `+gameColumns+` FROM games WHERE id = ?`, id)
	g, err := scanGame(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		`SELECT visitor_runs, home_runs FROM line_scores WHERE game_id = ? ORDER BY inning`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query line score: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line [2]int
		if err := rows.Scan(&line[baseball.Visitor], &line[baseball.Home]); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		g.LineScore = append(g.LineScore, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return &g, nil
}

// GamePlays retrieves a game's play-by-play in order.
func (s *Store) GamePlays(gameID int64) ([]PlayRecord, error) {
	rows, err := s.db.Query(
		`SELECT seq, inning, half, batting, kind, description, runs
		 FROM plays
		 WHERE game_id = ?
		 ORDER BY seq`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query plays: %w", err)
	}
	defer rows.Close()

	var plays []PlayRecord
	for rows.Next() {
		var p PlayRecord
		if err := rows.Scan(&p.Seq, &p.Inning, &p.Half, &p.Batting, &p.Kind, &p.Description, &p.Runs); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		plays = append(plays, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return plays, nil
}

// TeamRecord aggregates a team's completed games, home and away.
func (s *Store) TeamRecord(team string) (TeamRecord, error) {
	rec := TeamRecord{Team: team}
	err := s.db.QueryRow(
		`SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN (visitor = ? AND winner = 'visitor') OR (home = ? AND winner = 'home') THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN (visitor = ? AND winner = 'home') OR (home = ? AND winner = 'visitor') THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN winner = 'tie' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN visitor = ? THEN visitor_score ELSE home_score END), 0),
			COALESCE(SUM(CASE WHEN visitor = ? THEN home_score ELSE visitor_score END), 0)
		 FROM games
		 WHERE complete = 1 AND (visitor = ? OR home = ?)`,
		team, team, team, team, team, team, team, team,
	).Scan(&rec.Games, &rec.Wins, &rec.Losses, &rec.Ties, &rec.RunsFor, &rec.RunsAgainst)
	if err != nil {
		return rec, fmt.Errorf("storage: cannot query team record: %w", err)
	}
	return rec, nil
}

// Teams lists every team that appears in a stored game, sorted by name.
func (s *Store) Teams() ([]string, error) {
	rows, err := s.db.Query(`SELECT visitor FROM games UNION SELECT home FROM games ORDER BY 1`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query teams: %w", err)
	}
	defer rows.Close()

	var teams []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return teams, nil
}

// ClearGames deletes every stored game.
func (s *Store) ClearGames() error {
	if _, err := s.db.Exec(`DELETE FROM plays; DELETE FROM line_scores; DELETE FROM games;`); err != nil {
		return fmt.Errorf("storage: cannot clear games: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGame(row scanner) (GameRecord, error) {
	var g GameRecord
	var createdAt any
	err := row.Scan(
		&g.ID,
		&g.Player,
		&g.Visitor,
		&g.Home,
		&g.VisitorScore,
		&g.HomeScore,
		&g.Innings,
		&g.Winner,
		&g.Complete,
		&g.Pitches,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return g, err
	}
	if err != nil {
		return g, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	g.CreatedAt = parseTime(createdAt)
	return g, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func winnerOf(r baseball.Result) string {
	switch {
	case r.Tie:
		return WinnerTie
	case r.Winner == baseball.Home:
		return WinnerHome
	default:
		return WinnerVisitor
	}
}
