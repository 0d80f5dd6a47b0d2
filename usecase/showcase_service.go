package usecase

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/quiseymor/repository-2-oop/domain/entities"
	"github.com/quiseymor/repository-2-oop/domain/repositories"
)

// ShowcaseService registers entities of each family and drives their lifecycle operations
type ShowcaseService struct {
	computers repositories.ComputerRepository
	libraries repositories.LibraryRepository
	albums    repositories.AlbumRepository
	out       io.Writer
	logger    *zap.Logger
}

// NewShowcaseService creates a new showcase service.
// Status messages of the registered entities are written to out, or to standard output when out is nil.
func NewShowcaseService(
	computers repositories.ComputerRepository,
	libraries repositories.LibraryRepository,
	albums repositories.AlbumRepository,
	out io.Writer,
	logger *zap.Logger,
) *ShowcaseService {
	if out == nil {
		out = os.Stdout
	}
	return &ShowcaseService{
		computers: computers,
		libraries: libraries,
		albums:    albums,
		out:       out,
		logger:    logger,
	}
}

// RegisterComputer creates a personal computer and stores it
func (s *ShowcaseService) RegisterComputer(ctx context.Context, ram, storage int) (*entities.PersonalComputer, error) {
	pc, err := entities.NewPersonalComputer(ram, storage, entities.WithOutput(s.out))
	if err != nil {
		s.logger.Warn("Computer rejected",
			zap.Int("ramGB", ram),
			zap.Int("storageGB", storage),
			zap.Error(err))
		return nil, err
	}

	if err := s.computers.Create(ctx, pc); err != nil {
		return nil, fmt.Errorf("failed to store computer: %w", err)
	}

	s.logger.Info("Computer registered",
		zap.String("id", pc.ID()),
		zap.Int("ramGB", ram),
		zap.Int("storageGB", storage))
	return pc, nil
}

// RegisterLibrary creates a public library and stores it
func (s *ShowcaseService) RegisterLibrary(ctx context.Context, name string, bookCount int) (*entities.PublicLibrary, error) {
	lib, err := entities.NewPublicLibrary(name, bookCount, entities.WithOutput(s.out))
	if err != nil {
		s.logger.Warn("Library rejected",
			zap.String("name", name),
			zap.Int("bookCount", bookCount),
			zap.Error(err))
		return nil, err
	}

	if err := s.libraries.Create(ctx, lib); err != nil {
		return nil, fmt.Errorf("failed to store library: %w", err)
	}

	s.logger.Info("Library registered",
		zap.String("id", lib.ID()),
		zap.String("name", name),
		zap.Int("bookCount", bookCount))
	return lib, nil
}

// RegisterAlbum creates a studio album and stores it
func (s *ShowcaseService) RegisterAlbum(ctx context.Context, title, artist string, tracks int) (*entities.StudioAlbum, error) {
	album, err := entities.NewStudioAlbum(title, artist, tracks, entities.WithOutput(s.out))
	if err != nil {
		s.logger.Warn("Album rejected",
			zap.String("title", title),
			zap.String("artist", artist),
			zap.Int("tracks", tracks),
			zap.Error(err))
		return nil, err
	}

	if err := s.albums.Create(ctx, album); err != nil {
		return nil, fmt.Errorf("failed to store album: %w", err)
	}

	s.logger.Info("Album registered",
		zap.String("id", album.ID()),
		zap.String("title", title),
		zap.String("artist", artist),
		zap.Int("tracks", tracks))
	return album, nil
}

// PowerCycle boots the stored computer and shuts it down again
func (s *ShowcaseService) PowerCycle(ctx context.Context, id string) error {
	pc, err := s.computers.GetByID(ctx, id)
	if err != nil {
		return err
	}

	s.logger.Debug("Power cycling computer", zap.String("id", id))
	pc.Boot()
	pc.Shutdown()
	return nil
}

// Circulate lends the given book from the stored library and takes it back
func (s *ShowcaseService) Circulate(ctx context.Context, id, title string) (lent, returned bool, err error) {
	lib, err := s.libraries.GetByID(ctx, id)
	if err != nil {
		return false, false, err
	}

	if lent, err = lib.LendBook(title); err != nil {
		s.logger.Warn("Lending rejected", zap.String("library", lib.Name()), zap.Error(err))
		return false, false, err
	}
	if returned, err = lib.ReturnBook(title); err != nil {
		s.logger.Warn("Return rejected", zap.String("library", lib.Name()), zap.Error(err))
		return lent, false, err
	}

	s.logger.Debug("Book circulated",
		zap.String("library", lib.Name()),
		zap.String("title", title))
	return lent, returned, nil
}

// Listen plays the stored album and stops it
func (s *ShowcaseService) Listen(ctx context.Context, id string) error {
	album, err := s.albums.GetByID(ctx, id)
	if err != nil {
		return err
	}

	s.logger.Debug("Playing album", zap.String("id", id), zap.String("title", album.Title()))
	album.Play()
	album.Stop()
	return nil
}
