package store

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/mattn/go-sqlite3" // load the driver

	"github.com/katalvlaran/relsat/engine"
	"github.com/katalvlaran/relsat/export"
)

// SolutionStore persists recorded solutions into a SQLite file, one row
// per solution, plus a single cached row of the theory signature they
// belong to.
type SolutionStore struct {
	db     *sql.DB
	logger zerolog.Logger
	closed bool
}

// Open creates (or appends to) a SQLite database at path and ensures
// its schema exists.
func Open(path string) (*SolutionStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &SolutionStore{db: db, logger: log.Logger}, nil
}

func createSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS theory (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		theory_json TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("store: create table 'theory': %w", err)
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS solutions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		ordinal INTEGER NOT NULL,
		solution_json TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("store: create table 'solutions': %w", err)
	}
	return nil
}

// SaveTheory records s's domain/predicate signature, replacing any
// previously saved signature. Call once, before the first Save.
func (st *SolutionStore) SaveTheory(s *engine.Solver) error {
	if st.closed {
		return ErrClosed
	}
	theoryJSON, err := export.EncodeTheory(s)
	if err != nil {
		return err
	}
	_, err = st.db.Exec(
		`INSERT INTO theory (id, theory_json) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET theory_json = excluded.theory_json`,
		string(theoryJSON),
	)
	if err != nil {
		return fmt.Errorf("store: save theory: %w", err)
	}
	return nil
}

// Save encodes s's current assignment as solution ordinal and inserts
// it as a new row. Intended to be called from a SearchAll callback.
func (st *SolutionStore) Save(s *engine.Solver, ordinal int) error {
	if st.closed {
		return ErrClosed
	}
	solutionJSON, err := export.EncodeSolution(s, ordinal)
	if err != nil {
		return err
	}
	_, err = st.db.Exec(
		`INSERT INTO solutions (ordinal, solution_json) VALUES (?, ?)`,
		ordinal, string(solutionJSON),
	)
	if err != nil {
		return fmt.Errorf("store: save solution %d: %w", ordinal, err)
	}
	st.logger.Debug().Int("ordinal", ordinal).Msg("solution persisted")
	return nil
}

// Count returns the number of solutions currently stored.
func (st *SolutionStore) Count() (int, error) {
	if st.closed {
		return 0, ErrClosed
	}
	var n int
	if err := st.db.QueryRow(`SELECT COUNT(*) FROM solutions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("store: count solutions: %w", err)
	}
	return n, nil
}

// Close releases the underlying database handle. Any method called
// after Close returns ErrClosed.
func (st *SolutionStore) Close() error {
	if st.closed {
		return nil
	}
	st.closed = true
	if err := st.db.Close(); err != nil {
		return fmt.Errorf("store: close: %w", err)
	}
	return nil
}
