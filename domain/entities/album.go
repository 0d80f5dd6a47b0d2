package entities

import (
	"github.com/google/uuid"

	"github.com/quiseymor/repository-2-oop/domain"
)

// MusicAlbum is a playable collection of tracks by one artist
type MusicAlbum interface {
	ID() string
	Title() string
	Artist() string
	Tracks() int
	Play()
	Stop()
}

// StudioAlbum is a MusicAlbum recorded in a studio
type StudioAlbum struct {
	id     string
	title  string
	artist string
	tracks int
	out    console
}

var _ MusicAlbum = (*StudioAlbum)(nil)

// NewStudioAlbum creates an album. Title and artist must be non-empty and tracks positive.
func NewStudioAlbum(title, artist string, tracks int, opts ...Option) (*StudioAlbum, error) {
	if err := validateAlbum(title, artist, tracks); err != nil {
		return nil, err
	}

	return &StudioAlbum{
		id:     uuid.New().String(),
		title:  title,
		artist: artist,
		tracks: tracks,
		out:    newConsole(opts),
	}, nil
}

func validateAlbum(title, artist string, tracks int) error {
	if title == "" {
		return domain.InvalidArgument("album title cannot be empty")
	}
	if artist == "" {
		return domain.InvalidArgument("artist cannot be empty")
	}
	if tracks <= 0 {
		return domain.InvalidArgument("track count must be positive, got %d", tracks)
	}
	return nil
}

// ID returns the registry id; a nil album has none
func (a *StudioAlbum) ID() string {
	if a == nil {
		return ""
	}
	return a.id
}

func (a *StudioAlbum) Title() string  { return a.title }
func (a *StudioAlbum) Artist() string { return a.artist }
func (a *StudioAlbum) Tracks() int    { return a.tracks }

// Play reports that playback of the album has started
func (a *StudioAlbum) Play() {
	a.out.report("Playing album '%s' by '%s'.", a.title, a.artist)
}

// Stop reports that playback of the album has stopped
func (a *StudioAlbum) Stop() {
	a.out.report("Playback of album '%s' stopped.", a.title)
}
