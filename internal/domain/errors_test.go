package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelWrapping(t *testing.T) {
	wrapped := fmt.Errorf("controller: %w", ErrLegBounds)
	assert.ErrorIs(t, wrapped, ErrLegBounds)

	invalid := WrapInvalidRequest("leg index %d out of range", 7)
	assert.True(t, IsInvalidRequest(invalid))
	assert.Contains(t, invalid.Error(), "leg index 7")
}

func TestFieldErrors(t *testing.T) {
	errs := &FieldErrors{}
	assert.False(t, errs.HasErrors())

	errs.Add("origin", "origin is required")
	errs.Add("departureDate", "departure date is required")

	require.True(t, errs.HasErrors())
	assert.ErrorIs(t, errs, ErrValidationFailed)
	assert.True(t, IsValidationFailed(errs))

	got := errs.ToMap()
	assert.Equal(t, map[string]string{
		"origin":        "origin is required",
		"departureDate": "departure date is required",
	}, got)

	assert.Contains(t, errs.Error(), "origin is required")
}

func TestFieldErrorsSurvivesWrapping(t *testing.T) {
	errs := &FieldErrors{}
	errs.Add("origin", "origin is required")
	wrapped := fmt.Errorf("submit: %w", errs)

	assert.ErrorIs(t, wrapped, ErrValidationFailed)

	var unwrapped *FieldErrors
	require.ErrorAs(t, wrapped, &unwrapped)
	assert.Len(t, unwrapped.Errors, 1)
}

func TestDispatchError(t *testing.T) {
	t.Run("carries the server message", func(t *testing.T) {
		err := NewDispatchError(502, "upstream capacity exceeded", errors.New("status 502"))

		assert.ErrorIs(t, err, ErrDispatchFailed)
		assert.True(t, IsDispatchFailed(err))
		assert.Contains(t, err.Error(), "upstream capacity exceeded")
		assert.Equal(t, 502, err.StatusCode)
	})

	t.Run("falls back to the cause without a message", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := NewDispatchError(0, "", cause)

		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("is distinguishable from validation failure", func(t *testing.T) {
		err := NewDispatchError(500, "", nil)

		assert.False(t, IsValidationFailed(err))
		assert.True(t, IsDispatchFailed(err))
	})
}
