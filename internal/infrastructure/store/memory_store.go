package store

import (
	"context"
	"sync"

	"github.com/doeshing/habits/internal/domain"
	"github.com/doeshing/habits/internal/ports"
)

// MemoryRepository keeps habits in a map plus a slice of keys for insertion order.
type MemoryRepository struct {
	mu     sync.Mutex
	order  []string
	habits map[string][]domain.Date
}

// NewMemoryRepository returns an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{habits: make(map[string][]domain.Date)}
}

// Create implements ports.HabitRepository.
func (m *MemoryRepository) Create(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.habits[name]; ok {
		return domain.ErrAlreadyExists
	}
	m.habits[name] = []domain.Date{}
	m.order = append(m.order, name)
	return nil
}

// AppendDate implements ports.HabitRepository.
func (m *MemoryRepository) AppendDate(_ context.Context, name string, date domain.Date) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	dates, ok := m.habits[name]
	if !ok {
		return domain.ErrNotFound
	}
	for _, d := range dates {
		if d == date {
			return domain.ErrAlreadyLogged
		}
	}
	m.habits[name] = append(dates, date)
	return nil
}

// Get implements ports.HabitRepository.
func (m *MemoryRepository) Get(_ context.Context, name string) (domain.Habit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	dates, ok := m.habits[name]
	if !ok {
		return domain.Habit{}, domain.ErrNotFound
	}
	return domain.Habit{Name: name, Dates: cloneDates(dates)}, nil
}

// List implements ports.HabitRepository.
func (m *MemoryRepository) List(context.Context) ([]domain.Habit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	habits := make([]domain.Habit, 0, len(m.order))
	for _, name := range m.order {
		habits = append(habits, domain.Habit{
			Name:  name,
			Dates: cloneDates(m.habits[name]),
		})
	}
	return habits, nil
}

// Close is a no-op; state goes away with the process.
func (m *MemoryRepository) Close() error {
	return nil
}

func cloneDates(dates []domain.Date) []domain.Date {
	out := make([]domain.Date, len(dates))
	copy(out, dates)
	return out
}

var _ ports.HabitRepository = (*MemoryRepository)(nil)
