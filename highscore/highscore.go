// Package highscore persists finished games in SQLite.
package highscore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"

	"github.com/plus3/tetra/engine"
)

const tableName = "high_scores"

// Entry is one recorded game.
type Entry struct {
	ID        int64
	Player    string
	Score     int
	Lines     int
	Level     int
	Ticks     uint64
	CreatedAt time.Time
}

// Store is a high score table backed by a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path. Use ":memory:" for
// a throwaway store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("highscore: open %s: %w", path, err)
	}
	// sqlite serializes writers; a single connection also keeps ":memory:"
	// databases alive across calls.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.createTable(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) createTable() error {
	const createTableSQL = `
	CREATE TABLE IF NOT EXISTS ` + tableName + ` (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		player_name TEXT NOT NULL,
		score INTEGER NOT NULL,
		lines INTEGER NOT NULL,
		level INTEGER NOT NULL,
		ticks INTEGER NOT NULL,
		created_at DATETIME NOT NULL
	);`

	if _, err := s.db.Exec(createTableSQL); err != nil {
		return fmt.Errorf("highscore: create table: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts e and returns its id. A zero CreatedAt is set to now.
func (s *Store) Save(ctx context.Context, e Entry) (int64, error) {
	const insertSQL = `
	INSERT INTO ` + tableName + ` (player_name, score, lines, level, ticks, created_at)
	VALUES (?, ?, ?, ?, ?, ?);`

	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	res, err := s.db.ExecContext(ctx, insertSQL, e.Player, e.Score, e.Lines, e.Level, int64(e.Ticks), e.CreatedAt.UTC())
	if err != nil {
		return 0, fmt.Errorf("highscore: insert score for %s: %w", e.Player, err)
	}
	return res.LastInsertId()
}

// Top returns a page of entries ordered by score, then lines, then age.
func (s *Store) Top(ctx context.Context, limit, offset int) ([]Entry, error) {
	const selectSQL = `
	SELECT id, player_name, score, lines, level, ticks, created_at
	FROM ` + tableName + `
	ORDER BY score DESC, lines DESC, created_at ASC, id ASC
	LIMIT ? OFFSET ?;`

	rows, err := s.db.QueryContext(ctx, selectSQL, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("highscore: query scores: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ticks int64
		if err := rows.Scan(&e.ID, &e.Player, &e.Score, &e.Lines, &e.Level, &ticks, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("highscore: scan row: %w", err)
		}
		e.Ticks = uint64(ticks)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("highscore: iterate rows: %w", err)
	}
	return entries, nil
}

// Count returns the number of stored entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	const countSQL = `SELECT COUNT(*) FROM ` + tableName + `;`
	var count int
	if err := s.db.QueryRowContext(ctx, countSQL).Scan(&count); err != nil {
		return 0, fmt.Errorf("highscore: count scores: %w", err)
	}
	return count, nil
}

// Track saves g's result under player when it ends. Failures are logged;
// the game never sees them.
func (s *Store) Track(g *engine.Game, player string, logger *log.Logger) engine.SubscriptionID {
	return g.Subscribe(func(ev engine.Event) {
		if ev.Kind != engine.EventGameOver {
			return
		}
		p := g.Progress()
		e := Entry{Player: player, Score: p.Score, Lines: p.Lines, Level: p.Level, Ticks: g.Ticks()}
		id, err := s.Save(context.Background(), e)
		if err != nil {
			logger.Error("Failed to save high score", "player", player, "score", p.Score, "err", err)
			return
		}
		logger.Info("High score saved", "player", player, "score", p.Score, "id", id)
	})
}
