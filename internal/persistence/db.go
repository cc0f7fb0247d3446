// Package persistence records simulation run history to SQLite for later
// reporting. It is an outbound sink only: nothing here ever restores live
// simulation state.
package persistence

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/amaz421326/PixelSociety/internal/engine"
)

// Store wraps a SQLite connection holding run history.
type Store struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	store := &Store{conn: conn}
	if err := store.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		world_name TEXT NOT NULL,
		seed INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS ticks (
		run_id TEXT NOT NULL,
		tick INTEGER NOT NULL,
		feedback_json TEXT NOT NULL,
		events_json TEXT NOT NULL,
		PRIMARY KEY (run_id, tick)
	);

	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		tick INTEGER NOT NULL,
		description TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_ticks_run ON ticks(run_id);
	CREATE INDEX IF NOT EXISTS idx_events_run_tick ON events(run_id, tick);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// BeginRun registers a new run and returns its ID.
func (s *Store) BeginRun(sim *engine.Simulation) (string, error) {
	runID := uuid.NewString()
	_, err := s.conn.Exec(
		"INSERT INTO runs (id, world_name, seed, created_at) VALUES (?, ?, ?, ?)",
		runID, sim.World.Name, sim.Seed(), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	slog.Info("run recording started", "run_id", runID, "world", sim.World.Name, "seed", sim.Seed())
	return runID, nil
}

// RecordResults appends tick results for a run.
func (s *Store) RecordResults(runID string, results []engine.SimulationResult) error {
	if len(results) == 0 {
		return nil
	}

	tx, err := s.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(
		"INSERT OR REPLACE INTO ticks (run_id, tick, feedback_json, events_json) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, result := range results {
		feedbackJSON, err := json.Marshal(result.Feedback)
		if err != nil {
			return fmt.Errorf("marshal feedback for tick %d: %w", result.Tick, err)
		}
		eventsJSON, err := json.Marshal(result.Events)
		if err != nil {
			return fmt.Errorf("marshal events for tick %d: %w", result.Tick, err)
		}

		if _, err := stmt.Exec(runID, result.Tick, string(feedbackJSON), string(eventsJSON)); err != nil {
			return fmt.Errorf("insert tick %d: %w", result.Tick, err)
		}

		for _, description := range result.Events {
			if _, err := tx.Exec(
				"INSERT INTO events (run_id, tick, description) VALUES (?, ?, ?)",
				runID, result.Tick, description,
			); err != nil {
				return fmt.Errorf("insert event at tick %d: %w", result.Tick, err)
			}
		}
	}

	return tx.Commit()
}

// TickRecord is one persisted tick, with the JSON payloads decoded.
type TickRecord struct {
	Tick     int                 `json:"tick"`
	Feedback map[string][]string `json:"feedback"`
	Events   []string            `json:"events"`
}

type tickRow struct {
	Tick         int    `db:"tick"`
	FeedbackJSON string `db:"feedback_json"`
	EventsJSON   string `db:"events_json"`
}

// RecentTicks returns the most recent limit ticks of a run, oldest first.
func (s *Store) RecentTicks(runID string, limit int) ([]TickRecord, error) {
	var rows []tickRow
	err := s.conn.Select(&rows,
		"SELECT tick, feedback_json, events_json FROM ticks WHERE run_id = ? ORDER BY tick DESC LIMIT ?",
		runID, limit,
	)
	if err != nil {
		return nil, err
	}

	records := make([]TickRecord, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		row := rows[i]
		record := TickRecord{Tick: row.Tick}
		if err := json.Unmarshal([]byte(row.FeedbackJSON), &record.Feedback); err != nil {
			return nil, fmt.Errorf("decode feedback for tick %d: %w", row.Tick, err)
		}
		if err := json.Unmarshal([]byte(row.EventsJSON), &record.Events); err != nil {
			return nil, fmt.Errorf("decode events for tick %d: %w", row.Tick, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// EventRecord is one persisted event occurrence.
type EventRecord struct {
	Tick        int    `db:"tick" json:"tick"`
	Description string `db:"description" json:"description"`
}

// RecentEvents returns the most recent limit events of a run, newest first.
func (s *Store) RecentEvents(runID string, limit int) ([]EventRecord, error) {
	var events []EventRecord
	err := s.conn.Select(&events,
		"SELECT tick, description FROM events WHERE run_id = ? ORDER BY id DESC LIMIT ?",
		runID, limit,
	)
	return events, err
}
