package tracker

import (
	"context"
	"errors"
	"fmt"

	"github.com/doeshing/habits/internal/domain"
	"github.com/doeshing/habits/internal/ports"
)

var errDependencies = errors.New("tracker.Service dependencies not satisfied")

// Service owns the habit → completion dates mapping and answers queries on it.
type Service struct {
	Repository ports.HabitRepository
	Clock      ports.Clock
	Logger     ports.Logger
}

// AddHabit registers a new habit and returns its stored (normalized) name.
func (s *Service) AddHabit(ctx context.Context, name string) (string, error) {
	if err := s.ready(); err != nil {
		return "", err
	}
	key, err := domain.NormalizeName(name)
	if err != nil {
		return "", err
	}

	if err := s.Repository.Create(ctx, key); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			s.Logger.Debug("habit already exists", map[string]interface{}{"habit": key})
			return key, err
		}
		return key, fmt.Errorf("create habit %q: %w", key, err)
	}

	s.Logger.Info("habit added", map[string]interface{}{"habit": key})
	return key, nil
}

// LogCompletion marks the habit as done today and returns the date recorded.
func (s *Service) LogCompletion(ctx context.Context, name string) (domain.Date, error) {
	if err := s.ready(); err != nil {
		return domain.Date{}, err
	}
	if s.Clock == nil {
		return domain.Date{}, errDependencies
	}
	today := s.Clock.Today()
	return today, s.LogCompletionOn(ctx, name, today)
}

// LogCompletionOn marks the habit as done on date. A date is recorded at most
// once per habit.
func (s *Service) LogCompletionOn(ctx context.Context, name string, date domain.Date) error {
	if err := s.ready(); err != nil {
		return err
	}
	key, err := domain.NormalizeName(name)
	if err != nil {
		return err
	}

	habit, err := s.Repository.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("load habit %q: %w", key, err)
	}
	if habit.HasDate(date) {
		return domain.ErrAlreadyLogged
	}

	if err := s.Repository.AppendDate(ctx, key, date); err != nil {
		if domain.IsRecoverable(err) {
			return err
		}
		return fmt.Errorf("log habit %q: %w", key, err)
	}

	s.Logger.Info("completion logged", map[string]interface{}{
		"habit": key,
		"date":  date.String(),
		"count": habit.Count() + 1,
	})
	return nil
}

// ListProgress returns one entry per habit in insertion order, or
// domain.ErrEmptyStore when nothing is tracked.
func (s *Service) ListProgress(ctx context.Context) ([]domain.ProgressEntry, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	habits, err := s.Repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}
	if len(habits) == 0 {
		return nil, domain.ErrEmptyStore
	}

	entries := make([]domain.ProgressEntry, 0, len(habits))
	for _, h := range habits {
		entries = append(entries, h.Progress())
	}
	return entries, nil
}

// Snapshot returns the (name, count) pairs used for rendering. It has the same
// emptiness contract as ListProgress.
func (s *Service) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	entries, err := s.ListProgress(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Snapshot(entries), nil
}

func (s *Service) ready() error {
	if s.Repository == nil || s.Logger == nil {
		return errDependencies
	}
	return nil
}
