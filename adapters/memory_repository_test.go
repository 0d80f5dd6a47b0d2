package adapters

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/quiseymor/repository-2-oop/domain"
	"github.com/quiseymor/repository-2-oop/domain/entities"
)

func newTestComputer(t *testing.T) *entities.PersonalComputer {
	t.Helper()
	pc, err := entities.NewPersonalComputer(16, 512, entities.WithOutput(io.Discard))
	if err != nil {
		t.Fatalf("Failed to create computer: %v", err)
	}
	return pc
}

func TestMemoryRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryComputerRepository()
	pc := newTestComputer(t)

	if err := repo.Create(ctx, pc); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	got, err := repo.GetByID(ctx, pc.ID())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got.ID() != pc.ID() {
		t.Errorf("Expected ID %s, got %s", pc.ID(), got.ID())
	}
	if got.RAM() != 16 {
		t.Errorf("Expected RAM 16, got %d", got.RAM())
	}
}

func TestMemoryRepository_CreateDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryComputerRepository()
	pc := newTestComputer(t)

	if err := repo.Create(ctx, pc); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := repo.Create(ctx, pc); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("Expected ErrAlreadyExists, got %v", err)
	}
}

func TestMemoryRepository_CreateNil(t *testing.T) {
	repo := NewMemoryLibraryRepository()

	if err := repo.Create(context.Background(), nil); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("Expected invalid argument error, got %v", err)
	}
}

func TestMemoryRepository_CreateTypedNil(t *testing.T) {
	ctx := context.Background()

	var pc *entities.PersonalComputer
	if err := NewMemoryComputerRepository().Create(ctx, pc); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("Expected invalid argument error for nil computer, got %v", err)
	}

	var lib *entities.PublicLibrary
	if err := NewMemoryLibraryRepository().Create(ctx, lib); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("Expected invalid argument error for nil library, got %v", err)
	}

	var album *entities.StudioAlbum
	if err := NewMemoryAlbumRepository().Create(ctx, album); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("Expected invalid argument error for nil album, got %v", err)
	}
}

func TestMemoryRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAlbumRepository()

	if _, err := repo.GetByID(ctx, ""); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("Expected invalid argument error, got %v", err)
	}
	if _, err := repo.GetByID(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestMemoryRepository_ListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryLibraryRepository()

	names := []string{"Central", "North Branch", "Reading Room"}
	for i, name := range names {
		lib, err := entities.NewPublicLibrary(name, i*100, entities.WithOutput(io.Discard))
		if err != nil {
			t.Fatalf("Failed to create library: %v", err)
		}
		if err := repo.Create(ctx, lib); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}

	libs, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(libs) != len(names) {
		t.Fatalf("Expected %d libraries, got %d", len(names), len(libs))
	}
	for i, lib := range libs {
		if lib.Name() != names[i] {
			t.Errorf("Expected library %d to be %s, got %s", i, names[i], lib.Name())
		}
	}
}

func TestMemoryRepository_ListEmpty(t *testing.T) {
	albums, err := NewMemoryAlbumRepository().List(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if albums == nil || len(albums) != 0 {
		t.Errorf("Expected empty non-nil slice, got %v", albums)
	}
}

func TestMemoryRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryComputerRepository()
	first := newTestComputer(t)
	second := newTestComputer(t)
	for _, pc := range []*entities.PersonalComputer{first, second} {
		if err := repo.Create(ctx, pc); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}

	if err := repo.Delete(ctx, first.ID()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := repo.GetByID(ctx, first.ID()); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}

	remaining, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID() != second.ID() {
		t.Errorf("Expected only %s to remain, got %v", second.ID(), remaining)
	}

	if err := repo.Delete(ctx, first.ID()); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second delete, got %v", err)
	}
	if err := repo.Delete(ctx, ""); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("Expected invalid argument error, got %v", err)
	}
}

func TestMemoryRepository_ConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryComputerRepository()

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pc, err := entities.NewPersonalComputer(8, 256, entities.WithOutput(io.Discard))
			if err != nil {
				t.Error(err)
				return
			}
			if err := repo.Create(ctx, pc); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(all) != workers {
		t.Errorf("Expected %d computers, got %d", workers, len(all))
	}
}
