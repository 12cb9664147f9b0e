package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	appErrors "locationreminder/internal/pkg/errors"
)

func TestValidationError(t *testing.T) {
	err := appErrors.NewValidationError("latitude", "must be a valid latitude")

	assert.Equal(t, "validation error: latitude - must be a valid latitude", err.Error())
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestIsValidationError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "direct validation error",
			err:  appErrors.NewValidationError("title", "is required"),
			want: true,
		},
		{
			name: "wrapped validation error",
			err:  fmt.Errorf("bind request: %w", appErrors.NewValidationError("title", "is required")),
			want: true,
		},
		{
			name: "sentinel only",
			err:  appErrors.ErrValidation,
			want: false,
		},
		{
			name: "other error",
			err:  appErrors.ErrDatabaseOperation,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, appErrors.IsValidationError(tt.err))
		})
	}
}
