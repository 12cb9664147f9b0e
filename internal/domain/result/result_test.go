package result_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"locationreminder/internal/domain/result"
)

func TestSuccess(t *testing.T) {
	r := result.Success([]string{"a", "b"})

	assert.True(t, r.IsSuccess())
	assert.False(t, r.IsError())
	assert.Equal(t, []string{"a", "b"}, r.Data())
	assert.Empty(t, r.Message())

	_, hasCode := r.StatusCode()
	assert.False(t, hasCode)
}

func TestError(t *testing.T) {
	tests := []struct {
		name    string
		res     result.Result[int]
		message string
		code    int
		hasCode bool
	}{
		{
			name:    "without status code",
			res:     result.Error[int]("Reminder not found!"),
			message: "Reminder not found!",
		},
		{
			name:    "with status code",
			res:     result.ErrorWithCode[int]("database is locked", result.CodeInternal),
			message: "database is locked",
			code:    result.CodeInternal,
			hasCode: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.res.IsError())
			assert.False(t, tt.res.IsSuccess())
			assert.Equal(t, tt.message, tt.res.Message())
			assert.Zero(t, tt.res.Data())

			code, ok := tt.res.StatusCode()
			assert.Equal(t, tt.hasCode, ok)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestZeroValueIsError(t *testing.T) {
	var r result.Result[string]

	assert.True(t, r.IsError())
}

func TestMap(t *testing.T) {
	t.Run("maps success payload", func(t *testing.T) {
		r := result.Map(result.Success(42), strconv.Itoa)

		assert.True(t, r.IsSuccess())
		assert.Equal(t, "42", r.Data())
	})

	t.Run("passes error through", func(t *testing.T) {
		r := result.Map(result.ErrorWithCode[int]("boom", result.CodeUnavailable), strconv.Itoa)

		assert.True(t, r.IsError())
		assert.Equal(t, "boom", r.Message())
		code, ok := r.StatusCode()
		assert.True(t, ok)
		assert.Equal(t, result.CodeUnavailable, code)
	})
}
