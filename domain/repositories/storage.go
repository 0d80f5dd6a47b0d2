package repositories

import (
	"context"

	"github.com/quiseymor/repository-2-oop/domain/entities"
)

// ComputerRepository defines data access methods for computers
type ComputerRepository interface {
	Create(ctx context.Context, computer entities.Computer) error
	GetByID(ctx context.Context, id string) (entities.Computer, error)
	List(ctx context.Context) ([]entities.Computer, error)
	Delete(ctx context.Context, id string) error
}

// LibraryRepository defines data access methods for libraries
type LibraryRepository interface {
	Create(ctx context.Context, library entities.Library) error
	GetByID(ctx context.Context, id string) (entities.Library, error)
	List(ctx context.Context) ([]entities.Library, error)
	Delete(ctx context.Context, id string) error
}

// AlbumRepository defines data access methods for music albums
type AlbumRepository interface {
	Create(ctx context.Context, album entities.MusicAlbum) error
	GetByID(ctx context.Context, id string) (entities.MusicAlbum, error)
	List(ctx context.Context) ([]entities.MusicAlbum, error)
	Delete(ctx context.Context, id string) error
}
