package session

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"tuilab/internal/database"
)

const counterName = "counter"

// Todo is a single task row owned by the session store.
type Todo struct {
	ID        string
	Position  int
	Text      string
	Done      bool
	CreatedAt time.Time
}

// Store persists per-session widget state (counter, todos) in sqlite.
type Store struct {
	db *sql.DB
	id string
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, id: uuid.NewString()}
}

// ID returns the full session identifier.
func (s *Store) ID() string { return s.id }

// ShortID returns the first uuid block, used for status display.
func (s *Store) ShortID() string {
	if len(s.id) < 8 {
		return s.id
	}
	return s.id[:8]
}

// Begin registers the session row. Counter and todo state outlive
// individual sessions; the sessions table only records launches.
func (s *Store) Begin(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions(id, started_at) VALUES(?, ?)`,
		s.id, database.Now())
	return err
}

// Counter returns the current counter value, creating the zero row on
// first access.
func (s *Store) Counter(ctx context.Context) (int64, error) {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO counters(name, value) VALUES(?, 0)`, counterName)
	if err != nil {
		return 0, err
	}
	var value int64
	err = s.db.QueryRowContext(ctx,
		`SELECT value FROM counters WHERE name = ?`, counterName).Scan(&value)
	return value, err
}

// AdjustCounter adds delta to the counter and returns the new value.
// Negative results are allowed.
func (s *Store) AdjustCounter(ctx context.Context, delta int64) (int64, error) {
	_, err := s.db.ExecContext(ctx, `
	INSERT INTO counters(name, value) VALUES(?, ?)
	ON CONFLICT(name) DO UPDATE SET value = value + excluded.value, updated_at = CURRENT_TIMESTAMP`,
		counterName, delta)
	if err != nil {
		return 0, err
	}
	var value int64
	err = s.db.QueryRowContext(ctx,
		`SELECT value FROM counters WHERE name = ?`, counterName).Scan(&value)
	return value, err
}

// ResetCounter sets the counter back to zero and returns the stored
// value, like the other counter mutators.
func (s *Store) ResetCounter(ctx context.Context) (int64, error) {
	_, err := s.db.ExecContext(ctx, `
	INSERT INTO counters(name, value) VALUES(?, 0)
	ON CONFLICT(name) DO UPDATE SET value = 0, updated_at = CURRENT_TIMESTAMP`,
		counterName)
	if err != nil {
		return 0, err
	}
	var value int64
	err = s.db.QueryRowContext(ctx,
		`SELECT value FROM counters WHERE name = ?`, counterName).Scan(&value)
	return value, err
}

// Todos returns all tasks in insertion order.
func (s *Store) Todos(ctx context.Context) ([]Todo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, position, text, done, created_at FROM todos ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Todo, 0, 16)
	for rows.Next() {
		var t Todo
		var done int
		if err := rows.Scan(&t.ID, &t.Position, &t.Text, &done, &t.CreatedAt); err != nil {
			return nil, err
		}
		t.Done = done == 1
		out = append(out, t)
	}
	return out, rows.Err()
}

// AppendTodo inserts a new pending task at the end of the list.
func (s *Store) AppendTodo(ctx context.Context, text string) (Todo, error) {
	todo := Todo{ID: uuid.NewString(), Text: text, CreatedAt: database.Now()}
	err := database.WithTx(s.db, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(position), 0) + 1 FROM todos`)
		if err := row.Scan(&todo.Position); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `
		INSERT INTO todos(id, position, text, done, created_at, updated_at)
		VALUES(?, ?, ?, 0, ?, ?)`,
			todo.ID, todo.Position, todo.Text, todo.CreatedAt, todo.CreatedAt)
		return err
	})
	if err != nil {
		return Todo{}, err
	}
	return todo, nil
}

// SetTodoDone flips the done flag for one task.
func (s *Store) SetTodoDone(ctx context.Context, id string, done bool) error {
	flag := 0
	if done {
		flag = 1
	}
	_, err := s.db.ExecContext(ctx,
		`UPDATE todos SET done = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, flag, id)
	return err
}

// ClearCompleted deletes all done tasks and reports how many were
// removed. Remaining tasks keep their relative order.
func (s *Store) ClearCompleted(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM todos WHERE done = 1`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Counts returns pending and done task totals.
func (s *Store) Counts(ctx context.Context) (pending, done int, err error) {
	err = s.db.QueryRowContext(ctx, `
	SELECT
		COALESCE(SUM(CASE WHEN done = 0 THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN done = 1 THEN 1 ELSE 0 END), 0)
	FROM todos`).Scan(&pending, &done)
	return pending, done, err
}
