package entities

import (
	"github.com/google/uuid"

	"github.com/quiseymor/repository-2-oop/domain"
)

// Library is a named collection of books that lends books out and takes them back
type Library interface {
	ID() string
	Name() string
	BookCount() int
	LendBook(title string) (bool, error)
	ReturnBook(title string) (bool, error)
}

// PublicLibrary is a Library open to everyone.
//
// Lending and returning do not track availability: the book count is fixed
// at construction and never changes.
type PublicLibrary struct {
	id        string
	name      string
	bookCount int
	out       console
}

var _ Library = (*PublicLibrary)(nil)

// NewPublicLibrary creates a library with a non-empty name and a non-negative number of books
func NewPublicLibrary(name string, bookCount int, opts ...Option) (*PublicLibrary, error) {
	if err := validateLibrary(name, bookCount); err != nil {
		return nil, err
	}

	return &PublicLibrary{
		id:        uuid.New().String(),
		name:      name,
		bookCount: bookCount,
		out:       newConsole(opts),
	}, nil
}

func validateLibrary(name string, bookCount int) error {
	if name == "" {
		return domain.InvalidArgument("library name cannot be empty")
	}
	if bookCount < 0 {
		return domain.InvalidArgument("book count cannot be negative, got %d", bookCount)
	}
	return nil
}

func validateBookTitle(title string) error {
	if title == "" {
		return domain.InvalidArgument("book title cannot be empty")
	}
	return nil
}

// ID returns the registry id; a nil library has none
func (l *PublicLibrary) ID() string {
	if l == nil {
		return ""
	}
	return l.id
}

func (l *PublicLibrary) Name() string   { return l.name }
func (l *PublicLibrary) BookCount() int { return l.bookCount }

// LendBook hands out the book with the given title
func (l *PublicLibrary) LendBook(title string) (bool, error) {
	if err := validateBookTitle(title); err != nil {
		return false, err
	}
	l.out.report("Book '%s' lent.", title)
	return true, nil
}

// ReturnBook takes back the book with the given title
func (l *PublicLibrary) ReturnBook(title string) (bool, error) {
	if err := validateBookTitle(title); err != nil {
		return false, err
	}
	l.out.report("Book '%s' returned.", title)
	return true, nil
}
