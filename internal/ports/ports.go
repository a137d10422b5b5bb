// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// The tracker core depends only on these abstractions. Concrete adapters live in
// the infrastructure layer:
//   - HabitRepository: in-memory ordered map or a private SQLite database
//   - ChartRenderer: interactive terminal viewer or plain text writer
//   - ConfigProvider: YAML file loader with embedded defaults
package ports

import (
	"context"

	"github.com/doeshing/habits/internal/domain"
)

// ConfigProvider loads the latest configuration.
// Implementations typically read from ~/.habits/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// HabitRepository stores habits and their completion dates for the life of the process.
// Implementations enforce the store invariants themselves:
//   - Create fails with domain.ErrAlreadyExists for a name already present.
//   - AppendDate fails with domain.ErrNotFound for an unknown habit and with
//     domain.ErrAlreadyLogged when the date is already recorded.
//   - List returns habits in insertion order, dates in append order.
//
// Names passed in are already normalized.
type HabitRepository interface {
	Create(ctx context.Context, name string) error
	AppendDate(ctx context.Context, name string, date domain.Date) error
	Get(ctx context.Context, name string) (domain.Habit, error)
	List(ctx context.Context) ([]domain.Habit, error)
	Close() error
}

// RepositoryFactory opens a fresh, empty repository of the given kind.
type RepositoryFactory interface {
	Open(ctx context.Context, kind string) (HabitRepository, error)
}

// ChartRenderer draws a bar chart. Render returns once the chart is dismissed
// (interactive renderers) or fully written (non-interactive ones).
type ChartRenderer interface {
	Render(ctx context.Context, chart domain.Chart) error
}

// Clock supplies "today" for completion logging.
type Clock interface {
	Today() domain.Date
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
