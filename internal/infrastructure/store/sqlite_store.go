package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/doeshing/habits/internal/domain"
	"github.com/doeshing/habits/internal/ports"
)

// Every connection to ":memory:" gets its own database, so the pool is pinned
// to one connection for the lifetime of the repository.
const sqliteMemoryDSN = ":memory:"

const sqliteSchema = `
PRAGMA foreign_keys = ON;
CREATE TABLE IF NOT EXISTS habits (
	position INTEGER PRIMARY KEY AUTOINCREMENT,
	name     TEXT NOT NULL UNIQUE
);
CREATE TABLE IF NOT EXISTS completions (
	seq   INTEGER PRIMARY KEY AUTOINCREMENT,
	habit TEXT NOT NULL REFERENCES habits(name),
	day   TEXT NOT NULL,
	UNIQUE (habit, day)
);`

// SQLiteRepository stores habits in a private in-memory SQLite database.
type SQLiteRepository struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRepository opens an empty database and creates the schema.
func NewSQLiteRepository(ctx context.Context) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", sqliteMemoryDSN)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init sqlite schema: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

// Create implements ports.HabitRepository.
func (s *SQLiteRepository) Create(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO habits (name) VALUES (?) ON CONFLICT(name) DO NOTHING`, name)
	if err != nil {
		return err
	}
	return affectedOr(res, domain.ErrAlreadyExists)
}

// AppendDate implements ports.HabitRepository.
func (s *SQLiteRepository) AppendDate(ctx context.Context, name string, date domain.Date) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	exists, err := s.exists(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO completions (habit, day) VALUES (?, ?) ON CONFLICT(habit, day) DO NOTHING`,
		name, date.String())
	if err != nil {
		return err
	}
	return affectedOr(res, domain.ErrAlreadyLogged)
}

// Get implements ports.HabitRepository.
func (s *SQLiteRepository) Get(ctx context.Context, name string) (domain.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	exists, err := s.exists(ctx, name)
	if err != nil {
		return domain.Habit{}, err
	}
	if !exists {
		return domain.Habit{}, domain.ErrNotFound
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT day FROM completions WHERE habit = ? ORDER BY seq`, name)
	if err != nil {
		return domain.Habit{}, err
	}
	defer rows.Close()

	habit := domain.Habit{Name: name, Dates: []domain.Date{}}
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return domain.Habit{}, err
		}
		d, err := domain.ParseDate(day)
		if err != nil {
			return domain.Habit{}, err
		}
		habit.Dates = append(habit.Dates, d)
	}
	return habit, rows.Err()
}

// List implements ports.HabitRepository.
func (s *SQLiteRepository) List(ctx context.Context) ([]domain.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.db.QueryContext(ctx, `
		SELECT h.name, c.day
		FROM habits h
		LEFT JOIN completions c ON c.habit = h.name
		ORDER BY h.position, c.seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []domain.Habit
	for rows.Next() {
		var name string
		var day sql.NullString
		if err := rows.Scan(&name, &day); err != nil {
			return nil, err
		}
		if len(habits) == 0 || habits[len(habits)-1].Name != name {
			habits = append(habits, domain.Habit{Name: name, Dates: []domain.Date{}})
		}
		if !day.Valid {
			continue
		}
		d, err := domain.ParseDate(day.String)
		if err != nil {
			return nil, err
		}
		last := &habits[len(habits)-1]
		last.Dates = append(last.Dates, d)
	}
	return habits, rows.Err()
}

// Close releases the database; its contents are discarded.
func (s *SQLiteRepository) Close() error {
	return s.db.Close()
}

func (s *SQLiteRepository) exists(ctx context.Context, name string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM habits WHERE name = ?`, name).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func affectedOr(res sql.Result, conflict error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return conflict
	}
	return nil
}

var _ ports.HabitRepository = (*SQLiteRepository)(nil)
