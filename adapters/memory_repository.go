package adapters

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/quiseymor/repository-2-oop/domain"
	"github.com/quiseymor/repository-2-oop/domain/entities"
	"github.com/quiseymor/repository-2-oop/domain/repositories"
)

var (
	// ErrNotFound is returned when no entity is stored under the requested id
	ErrNotFound = errors.New("entity not found")
	// ErrAlreadyExists is returned when an entity with the same id is already stored
	ErrAlreadyExists = errors.New("entity already exists")
)

// identified is implemented by every entity family
type identified interface {
	ID() string
}

// MemoryRepository is an in-memory store of entities keyed by their ID.
// Entities live for the lifetime of the process; List returns them in insertion order.
type MemoryRepository[T identified] struct {
	mu    sync.RWMutex
	items map[string]T // id -> entity mapping
	order []string
}

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository[T identified]() *MemoryRepository[T] {
	return &MemoryRepository[T]{
		items: make(map[string]T),
	}
}

// NewMemoryComputerRepository creates an in-memory ComputerRepository
func NewMemoryComputerRepository() *MemoryRepository[entities.Computer] {
	return NewMemoryRepository[entities.Computer]()
}

// NewMemoryLibraryRepository creates an in-memory LibraryRepository
func NewMemoryLibraryRepository() *MemoryRepository[entities.Library] {
	return NewMemoryRepository[entities.Library]()
}

// NewMemoryAlbumRepository creates an in-memory AlbumRepository
func NewMemoryAlbumRepository() *MemoryRepository[entities.MusicAlbum] {
	return NewMemoryRepository[entities.MusicAlbum]()
}

var (
	_ repositories.ComputerRepository = (*MemoryRepository[entities.Computer])(nil)
	_ repositories.LibraryRepository  = (*MemoryRepository[entities.Library])(nil)
	_ repositories.AlbumRepository    = (*MemoryRepository[entities.MusicAlbum])(nil)
)

// Create stores a new entity
func (m *MemoryRepository[T]) Create(ctx context.Context, item T) error {
	if any(item) == nil {
		return domain.InvalidArgument("entity cannot be nil")
	}

	// Typed nil entities report an empty ID and are rejected below
	id := item.ID()
	if id == "" {
		return domain.InvalidArgument("entity ID cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.items[id]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, id)
	}

	m.items[id] = item
	m.order = append(m.order, id)
	return nil
}

// GetByID returns the entity stored under id
func (m *MemoryRepository[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	if id == "" {
		return zero, domain.InvalidArgument("entity ID cannot be empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	item, exists := m.items[id]
	if !exists {
		return zero, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return item, nil
}

// List returns all stored entities
func (m *MemoryRepository[T]) List(ctx context.Context) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]T, 0, len(m.order))
	for _, id := range m.order {
		result = append(result, m.items[id])
	}
	return result, nil
}

// Delete removes the entity stored under id
func (m *MemoryRepository[T]) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.InvalidArgument("entity ID cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.items[id]; !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	delete(m.items, id)
	for i, stored := range m.order {
		if stored == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}
