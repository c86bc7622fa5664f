package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Solve represents one recorded solver run.
type Solve struct {
	SolveID    string
	SolvedAt   time.Time
	Scramble   string
	Solution   string
	MoveCount  int
	DurationMs int64
}

// SolveRepository provides access to recorded solves.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create records a completed solve and returns its ID.
func (r *SolveRepository) Create(scramble, solution string, moveCount int, duration time.Duration) (string, error) {
	id := uuid.New().String()
	solvedAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, solved_at, scramble_text, solution_text, move_count, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, solvedAt.Format(time.RFC3339), scramble, solution, moveCount, duration.Milliseconds())

	if err != nil {
		return "", fmt.Errorf("failed to create solve: %w", err)
	}

	return id, nil
}

// Get retrieves a solve by ID. Returns nil if no such solve exists.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	var s Solve
	var solvedAtStr string

	err := r.db.QueryRow(`
		SELECT solve_id, solved_at, scramble_text, solution_text, move_count, duration_ms
		FROM solves
		WHERE solve_id = ?
	`, solveID).Scan(
		&s.SolveID, &solvedAtStr, &s.Scramble, &s.Solution, &s.MoveCount, &s.DurationMs,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}

	s.SolvedAt, _ = time.Parse(time.RFC3339, solvedAtStr)
	return &s, nil
}

// GetLast retrieves the most recent solve. Returns nil if none exist.
func (r *SolveRepository) GetLast() (*Solve, error) {
	var solveID string
	err := r.db.QueryRow(`
		SELECT solve_id FROM solves
		ORDER BY solved_at DESC
		LIMIT 1
	`).Scan(&solveID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last solve: %w", err)
	}

	return r.Get(solveID)
}

// List retrieves recent solves, most recent first.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, solved_at, scramble_text, solution_text, move_count, duration_ms
		FROM solves
		ORDER BY solved_at DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		var s Solve
		var solvedAtStr string

		err := rows.Scan(
			&s.SolveID, &solvedAtStr, &s.Scramble, &s.Solution, &s.MoveCount, &s.DurationMs,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}

		s.SolvedAt, _ = time.Parse(time.RFC3339, solvedAtStr)
		solves = append(solves, s)
	}

	return solves, rows.Err()
}

// Delete deletes a solve.
func (r *SolveRepository) Delete(solveID string) error {
	_, err := r.db.Exec("DELETE FROM solves WHERE solve_id = ?", solveID)
	if err != nil {
		return fmt.Errorf("failed to delete solve: %w", err)
	}
	return nil
}
