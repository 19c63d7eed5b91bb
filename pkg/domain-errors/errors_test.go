package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasCode(t *testing.T) {
	err := New(CodeValidation, "curp is required")
	assert.True(t, HasCode(err, CodeValidation))
	assert.False(t, HasCode(err, CodeBadRequest))
	assert.False(t, HasCode(errors.New("plain"), CodeValidation))
}

func TestWrap(t *testing.T) {
	cause := errors.New("boom")

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, CodeInternal, "unused"))
	})

	t.Run("cause is reachable", func(t *testing.T) {
		err := Wrap(cause, CodeInvalidInput, "bad curp")
		require.ErrorIs(t, err, cause)
		assert.Equal(t, CodeInvalidInput, CodeOf(err))
		assert.Equal(t, "invalid_input: bad curp: boom", err.Error())
	})

	t.Run("code survives fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("analyze: %w", New(CodeNotFound, "missing"))
		assert.True(t, HasCode(err, CodeNotFound))
	})
}

func TestCodeOf_DefaultsToInternal(t *testing.T) {
	assert.Equal(t, CodeInternal, CodeOf(errors.New("untyped")))
}
