package metrics

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"connect4/searcher"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS games (
	id TEXT PRIMARY KEY,
	game_index INTEGER,
	agent1 INTEGER,
	agent2 INTEGER,
	starting_agent TEXT,
	winner TEXT,
	termination TEXT,
	started_at TEXT,
	ended_at TEXT,
	duration_ns INTEGER,
	total_moves INTEGER
);
CREATE TABLE IF NOT EXISTS moves (
	game_id TEXT REFERENCES games(id),
	step INTEGER,
	side TEXT,
	agent TEXT,
	col INTEGER,
	searcher TEXT,
	duration_ns INTEGER,
	episodes INTEGER,
	full_playouts INTEGER,
	early_stops INTEGER,
	nodes INTEGER,
	table_hits INTEGER,
	cutoffs INTEGER,
	shortcut TEXT,
	fallback INTEGER,
	PRIMARY KEY (game_id, step)
);
`

// Store persists tournament games in SQLite
type Store struct {
	db *sql.DB
}

func OpenStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveGame stores a game and its moves in one transaction
func (s *Store) SaveGame(ctx context.Context, game GameRecord, moves []MoveRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO games (id, game_index, agent1, agent2, starting_agent, winner, termination, started_at, ended_at, duration_ns, total_moves)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		game.ID,
		game.Index,
		game.Agent1,
		game.Agent2,
		game.StartingAgent,
		game.Winner,
		game.Termination,
		game.StartTime.UTC().Format(time.RFC3339Nano),
		game.EndTime.UTC().Format(time.RFC3339Nano),
		int64(game.Duration),
		game.TotalMoves,
	)
	if err != nil {
		return fmt.Errorf("failed to save game %s: %w", game.ID, err)
	}

	for _, m := range moves {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO moves (game_id, step, side, agent, col, searcher, duration_ns, episodes, full_playouts, early_stops, nodes, table_hits, cutoffs, shortcut, fallback)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			game.ID,
			m.Step,
			m.Side,
			m.Agent,
			m.Column,
			m.Searcher,
			int64(m.Duration),
			m.Episodes,
			m.FullPlayouts,
			m.EarlyStops,
			m.Nodes,
			m.TableHits,
			m.Cutoffs,
			string(m.Shortcut),
			m.Fallback,
		)
		if err != nil {
			return fmt.Errorf("failed to save move %d of game %s: %w", m.Step, game.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit game %s: %w", game.ID, err)
	}
	return nil
}

// Games returns the stored games ordered by index
func (s *Store) Games(ctx context.Context) ([]GameRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, game_index, agent1, agent2, starting_agent, winner, termination, started_at, ended_at, duration_ns, total_moves
		FROM games ORDER BY game_index`)
	if err != nil {
		return nil, fmt.Errorf("failed to query games: %w", err)
	}
	defer rows.Close()

	var games []GameRecord
	for rows.Next() {
		var g GameRecord
		var started, ended string
		var duration int64
		err := rows.Scan(&g.ID, &g.Index, &g.Agent1, &g.Agent2, &g.StartingAgent, &g.Winner, &g.Termination, &started, &ended, &duration, &g.TotalMoves)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		if g.StartTime, err = time.Parse(time.RFC3339Nano, started); err != nil {
			return nil, fmt.Errorf("failed to parse start time of game %s: %w", g.ID, err)
		}
		if g.EndTime, err = time.Parse(time.RFC3339Nano, ended); err != nil {
			return nil, fmt.Errorf("failed to parse end time of game %s: %w", g.ID, err)
		}
		g.Duration = time.Duration(duration)
		games = append(games, g)
	}
	return games, rows.Err()
}

// Moves returns the moves of one game in play order
func (s *Store) Moves(ctx context.Context, gameID string) ([]MoveRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT step, side, agent, col, searcher, duration_ns, episodes, full_playouts, early_stops, nodes, table_hits, cutoffs, shortcut, fallback
		FROM moves WHERE game_id = ? ORDER BY step`, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to query moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		m := MoveRecord{Game: gameID}
		var duration int64
		var shortcut string
		err := rows.Scan(&m.Step, &m.Side, &m.Agent, &m.Column, &m.Searcher, &duration, &m.Episodes, &m.FullPlayouts, &m.EarlyStops, &m.Nodes, &m.TableHits, &m.Cutoffs, &shortcut, &m.Fallback)
		if err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		m.Duration = time.Duration(duration)
		m.Shortcut = searcher.Shortcut(shortcut)
		moves = append(moves, m)
	}
	return moves, rows.Err()
}
