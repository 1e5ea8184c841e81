package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listenupapp/catalog-export/internal/domain"
	"github.com/listenupapp/catalog-export/internal/errors"
	"github.com/listenupapp/catalog-export/internal/validation"
)

func TestValidator_ValidateSuccess(t *testing.T) {
	v := validation.New()

	assert.NoError(t, v.Validate(domain.Book{ID: 1, Issued: "1876", Language: "English"}))
	assert.NoError(t, v.Validate(domain.BookRecord{BookID: 1}))
	assert.NoError(t, v.Validate(domain.AuthorBook{BookID: 1, AuthorID: 2}))
}

func TestValidator_ValidateErrors(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name      string
		row       any
		wantField string
		wantMsg   string
	}{
		{
			name:      "zero book id",
			row:       domain.Book{ID: 0, Language: "English"},
			wantField: "id",
			wantMsg:   "must be greater than 0",
		},
		{
			name:      "missing language",
			row:       domain.Book{ID: 5},
			wantField: "language",
			wantMsg:   "is required",
		},
		{
			name:      "missing subject name",
			row:       domain.Subject{ID: 2},
			wantField: "name",
			wantMsg:   "is required",
		},
		{
			name:      "negative author id",
			row:       domain.AuthorBook{BookID: 3, AuthorID: -1},
			wantField: "author_id",
			wantMsg:   "must be greater than 0",
		},
		{
			name:      "series record without book",
			row:       domain.BookRecord{Title: "Moby Dick"},
			wantField: "book_id",
			wantMsg:   "must be greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.row)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrValidation))

			var domainErr *errors.Error
			require.True(t, errors.As(err, &domainErr))
			details, ok := domainErr.Details.(map[string]string)
			require.True(t, ok)
			assert.Equal(t, tt.wantMsg, details[tt.wantField])
			assert.Contains(t, domainErr.Message, tt.wantField+" "+tt.wantMsg)
		})
	}
}

func TestValidator_ColumnNames(t *testing.T) {
	v := validation.New()

	err := v.Validate(domain.DownloadLink{ID: 1, BookID: 2})
	require.Error(t, err)

	// Should use the db column "name", not the struct field "URL".
	assert.Contains(t, err.Error(), "name is required")
	assert.NotContains(t, err.Error(), "URL")
}
