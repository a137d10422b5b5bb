package store

import (
	"context"
	"fmt"

	"github.com/doeshing/habits/internal/domain"
	"github.com/doeshing/habits/internal/ports"
)

// Factory opens repositories by configured kind.
type Factory struct{}

// NewFactory builds a repository factory.
func NewFactory() Factory {
	return Factory{}
}

// Open implements ports.RepositoryFactory. Every call returns a new, empty repository.
func (Factory) Open(ctx context.Context, kind string) (ports.HabitRepository, error) {
	switch kind {
	case domain.StoreMemory, "":
		return NewMemoryRepository(), nil
	case domain.StoreSQLite:
		return NewSQLiteRepository(ctx)
	default:
		return nil, fmt.Errorf("unsupported store kind: %s", kind)
	}
}

var _ ports.RepositoryFactory = Factory{}
