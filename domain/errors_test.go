package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidArgument(t *testing.T) {
	err := InvalidArgument("tracks must be positive, got %d", 0)

	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Equal(t, "invalid argument: tracks must be positive, got 0", err.Error())
}
