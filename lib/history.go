package lib

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// History is a sqlite-backed log of evaluated expressions, grouped into
// runs. The core never depends on it; it is a collaborator for drivers
// that want a record of what they evaluated.
type History struct {
	db *sql.DB
}

// Evaluation is one recorded line of a run.
type Evaluation struct {
	ID     int64
	RunID  string
	Line   int
	Expr   string
	Result int64
}

// OpenHistory opens (creating if needed) the history database at path
// and migrates the schema.
func OpenHistory(path string) (*History, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}

	h := &History{db: db}
	if err := h.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate history: %w", err)
	}
	return h, nil
}

func (h *History) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		started_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS evaluations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		line INTEGER NOT NULL,
		expr TEXT NOT NULL,
		result INTEGER NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (run_id) REFERENCES runs(id)
	);

	CREATE INDEX IF NOT EXISTS idx_evaluations_run ON evaluations(run_id);
	`

	_, err := h.db.Exec(schema)
	return err
}

// Begin starts a new run and returns its id.
func (h *History) Begin() (string, error) {
	id := uuid.New().String()
	_, err := h.db.Exec("INSERT INTO runs (id) VALUES (?)", id)
	if err != nil {
		return "", fmt.Errorf("begin run: %w", err)
	}
	return id, nil
}

// Record logs one evaluated line of a run.
func (h *History) Record(runID string, line int, expr string, result int64) error {
	_, err := h.db.Exec(
		"INSERT INTO evaluations (run_id, line, expr, result) VALUES (?, ?, ?, ?)",
		runID, line, expr, result)
	if err != nil {
		return fmt.Errorf("record evaluation: %w", err)
	}
	return nil
}

// Results returns a run's recorded evaluations in insertion order.
func (h *History) Results(runID string) ([]Evaluation, error) {
	rows, err := h.db.Query(
		"SELECT id, run_id, line, expr, result FROM evaluations WHERE run_id = ? ORDER BY id",
		runID)
	if err != nil {
		return nil, fmt.Errorf("query evaluations: %w", err)
	}
	defer rows.Close()

	evals := []Evaluation{}
	for rows.Next() {
		var e Evaluation
		if err := rows.Scan(&e.ID, &e.RunID, &e.Line, &e.Expr, &e.Result); err != nil {
			return nil, fmt.Errorf("scan evaluation: %w", err)
		}
		evals = append(evals, e)
	}
	return evals, rows.Err()
}

func (h *History) Close() error {
	return h.db.Close()
}
