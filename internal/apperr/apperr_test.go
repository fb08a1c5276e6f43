package apperr_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/monotimer/internal/apperr"
)

var errTemplate = &apperr.Error{
	Message: "%s duration must be between %d and %d",
}

func TestFmtKeepsIdentity(t *testing.T) {
	err := errTemplate.Fmt("focus", 1, 720)

	assert.Equal(t, "focus duration must be between 1 and 720", err.Error())
	assert.ErrorIs(t, err, errTemplate)
}

func TestWrapExposesCause(t *testing.T) {
	base := &apperr.Error{Message: "sync failed"}

	err := base.Wrap(io.ErrUnexpectedEOF)

	assert.Equal(t, "sync failed: unexpected EOF", err.Error())
	assert.ErrorIs(t, err, base)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestDifferentTemplatesDoNotMatch(t *testing.T) {
	a := &apperr.Error{Message: "a"}
	b := &apperr.Error{Message: "b"}

	assert.False(t, errors.Is(a.Wrap(io.EOF), b))
}
