package domain

import "strconv"

// BookRecord is a decoded catalog row describing one book and one of its subjects.
// A book with several subjects yields several records.
type BookRecord struct {
	BookID   int64  `db:"book_id" validate:"gt=0"`
	Title    string `db:"title"`
	Issued   string `db:"date_issued"`
	Language string `db:"language"`
	Subject  string `db:"subject"`
}

// Series is a synthetic grouping of books inferred from title and subject text.
type Series struct {
	ID          int64
	Name        string
	Description string
}

// Record returns the CSV cells for the series.
func (s Series) Record() []string {
	return []string{itoa(s.ID), s.Name, s.Description}
}

// SeriesMembership links one book to one series.
type SeriesMembership struct {
	ID       int64
	SeriesID int64
	BookID   int64
}

// Record returns the CSV cells for the membership.
func (m SeriesMembership) Record() []string {
	return []string{itoa(m.ID), itoa(m.SeriesID), itoa(m.BookID)}
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
