package errors

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsMatchesByCode(t *testing.T) {
	err := InvalidInputf("title of book %d has no words", 7)

	assert.True(t, Is(err, ErrInvalidInput))
	assert.False(t, Is(err, ErrValidation))
	assert.Equal(t, "title of book 7 has no words", err.Error())
}

func TestError_WrappedChain(t *testing.T) {
	base := NotFoundf("catalog cache not found: %s", "/data/gutenbergindex.db")
	wrapped := fmt.Errorf("open catalog: %w", base)

	assert.True(t, Is(wrapped, ErrNotFound))

	var domainErr *Error
	assert.True(t, As(wrapped, &domainErr))
	assert.Equal(t, CodeNotFound, domainErr.Code)
}

func TestError_Wrap(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(cause, CodeInternal, "write series.csv")

	assert.Equal(t, "write series.csv: disk full", err.Error())
	assert.Equal(t, cause, err.Unwrap())

	detailed := err.WithDetails(map[string]int{"row": 3})
	assert.Equal(t, map[string]int{"row": 3}, detailed.Details)
	assert.Equal(t, cause, detailed.Unwrap())
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"invalid input", InvalidInput("empty title"), 65},
		{"validation", ValidationWithDetails("bad row", map[string]string{"id": "is required"}), 65},
		{"not found", NotFoundf("missing cache %s", "x.db"), 66},
		{"config", Config("bad profile"), 78},
		{"internal", Wrap(fmt.Errorf("boom"), CodeInternal, "generate run id"), 1},
		{"wrapped config", fmt.Errorf("load: %w", Configf("limit %d", -1)), 78},
		{"canceled", fmt.Errorf("export: %w", context.Canceled), 130},
		{"plain", fmt.Errorf("plain failure"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
