package entities

import (
	"github.com/google/uuid"

	"github.com/quiseymor/repository-2-oop/domain"
)

// Computer is a device with a fixed amount of memory and storage that can be powered on and off
type Computer interface {
	ID() string
	// RAM is the amount of memory in gigabytes
	RAM() int
	// Storage is the amount of disk storage in gigabytes
	Storage() int
	Boot()
	Shutdown()
}

// PersonalComputer is the desktop variant of Computer
type PersonalComputer struct {
	id      string
	ram     int
	storage int
	out     console
}

var _ Computer = (*PersonalComputer)(nil)

// NewPersonalComputer creates a computer with ram and storage given in gigabytes.
// Both must be positive.
func NewPersonalComputer(ram, storage int, opts ...Option) (*PersonalComputer, error) {
	if err := validateComputer(ram, storage); err != nil {
		return nil, err
	}

	return &PersonalComputer{
		id:      uuid.New().String(),
		ram:     ram,
		storage: storage,
		out:     newConsole(opts),
	}, nil
}

func validateComputer(ram, storage int) error {
	if ram <= 0 {
		return domain.InvalidArgument("RAM must be positive, got %d GB", ram)
	}
	if storage <= 0 {
		return domain.InvalidArgument("storage must be positive, got %d GB", storage)
	}
	return nil
}

// ID returns the registry id; a nil computer has none
func (pc *PersonalComputer) ID() string {
	if pc == nil {
		return ""
	}
	return pc.id
}

func (pc *PersonalComputer) RAM() int     { return pc.ram }
func (pc *PersonalComputer) Storage() int { return pc.storage }

// Boot reports that the computer has started
func (pc *PersonalComputer) Boot() {
	pc.out.report("Computer booted.")
}

// Shutdown reports that the computer has been turned off
func (pc *PersonalComputer) Shutdown() {
	pc.out.report("Computer shut down.")
}
