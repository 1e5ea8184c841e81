// Package series groups catalog books into synthetic series.
//
// A series name is the first word of a book's title combined with its subject,
// e.g. "Adventures Series in Fiction". Series ids are assigned 1, 2, 3, ... in
// the order names first appear; memberships are numbered one per input record.
package series

import (
	"strings"

	"github.com/listenupapp/catalog-export/internal/domain"
	"github.com/listenupapp/catalog-export/internal/errors"
)

// Name derives the series name for a title and subject.
// Returns errors.ErrInvalidInput if the title has no words.
func Name(title, subject string) (string, error) {
	words := strings.Fields(title)
	if len(words) == 0 {
		return "", errors.InvalidInput("title has no words")
	}
	return words[0] + " Series in " + subject, nil
}

// Description derives the description of a named series.
func Description(name string) string {
	return "Books categorized under " + name
}

// Categorize assigns every record to a series.
// Records with equal derived names share one series; each record yields exactly one membership.
func Categorize(records []domain.BookRecord) ([]domain.Series, []domain.SeriesMembership, error) {
	ids := make(map[string]int64)
	series := make([]domain.Series, 0)
	memberships := make([]domain.SeriesMembership, 0, len(records))

	for i, rec := range records {
		name, err := Name(rec.Title, rec.Subject)
		if err != nil {
			return nil, nil, errors.InvalidInputf("record %d (book %d): title has no words", i, rec.BookID).
				WithDetails(map[string]any{"index": i, "book_id": rec.BookID, "title": rec.Title})
		}

		id, ok := ids[name]
		if !ok {
			id = int64(len(series) + 1)
			ids[name] = id
			series = append(series, domain.Series{ID: id, Name: name, Description: Description(name)})
		}

		memberships = append(memberships, domain.SeriesMembership{
			ID:       int64(len(memberships) + 1),
			SeriesID: id,
			BookID:   rec.BookID,
		})
	}

	return series, memberships, nil
}
