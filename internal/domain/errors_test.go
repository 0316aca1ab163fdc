package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingVariableError(t *testing.T) {
	err := NewMissingVariableError("TRAMPOLINE_V2_TEST_ENV")

	assert.Equal(t, "TRAMPOLINE_V2_TEST_ENV is not set", err.Error())
	assert.Equal(t, "TRAMPOLINE_V2_TEST_ENV", err.Name())
	assert.ErrorIs(t, err, ErrVariableNotSet)
	assert.ErrorIs(t, fmt.Errorf("wrapped: %w", err), ErrVariableNotSet)
}

func TestValueMismatchError(t *testing.T) {
	err := NewValueMismatchError("TRAMPOLINE_V2_TEST_ENV", "Teapot_V2", "teapot_v2")

	assert.Equal(t, "TRAMPOLINE_V2_TEST_ENV is set to 'Teapot_V2' but expected 'teapot_v2'", err.Error())
	assert.NotErrorIs(t, err, ErrVariableNotSet)

	var target *ValueMismatchError
	require.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &target))
	assert.Equal(t, "TRAMPOLINE_V2_TEST_ENV", target.Name())
	assert.Equal(t, "Teapot_V2", target.Observed())
	assert.Equal(t, "teapot_v2", target.Expected())
}
