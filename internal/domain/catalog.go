// Package domain contains the record types decoded from the catalog cache
// and the synthetic series types derived from them.
package domain

// Book is a catalog book with its issue date and language name.
type Book struct {
	ID       int64  `db:"id" validate:"gt=0"`
	Issued   string `db:"date_issued"`
	Language string `db:"language" validate:"required"`
}

// Record returns the CSV cells for the book.
func (b Book) Record() []string {
	return []string{itoa(b.ID), b.Issued, b.Language}
}

// BookTitle is one title of a book. Books may carry more than one title.
type BookTitle struct {
	ID     int64  `db:"id" validate:"gt=0"`
	Title  string `db:"name"`
	BookID int64  `db:"book_id" validate:"gt=0"`
}

// Record returns the CSV cells for the title.
func (t BookTitle) Record() []string {
	return []string{itoa(t.ID), t.Title, itoa(t.BookID)}
}

// Author is a catalog author. Nationality is approximated by the
// alphabetically first language among the author's books.
type Author struct {
	ID          int64  `db:"id" validate:"gt=0"`
	Name        string `db:"name" validate:"required"`
	Nationality string `db:"nationality"`
}

// Record returns the CSV cells for the author.
func (a Author) Record() []string {
	return []string{itoa(a.ID), a.Name, a.Nationality}
}

// Subject is a catalog subject heading.
type Subject struct {
	ID   int64  `db:"id" validate:"gt=0"`
	Name string `db:"name" validate:"required"`
}

// Record returns the CSV cells for the subject.
func (s Subject) Record() []string {
	return []string{itoa(s.ID), s.Name}
}

// DownloadLink is a download URL for one format of a book.
type DownloadLink struct {
	ID     int64  `db:"id" validate:"gt=0"`
	BookID int64  `db:"book_id" validate:"gt=0"`
	URL    string `db:"name" validate:"required"`
}

// Record returns the CSV cells for the link.
func (l DownloadLink) Record() []string {
	return []string{itoa(l.ID), itoa(l.BookID), l.URL}
}

// Genre is a catalog bookshelf, exported as a genre.
type Genre struct {
	ID   int64  `db:"id" validate:"gt=0"`
	Name string `db:"name" validate:"required"`
}

// Record returns the CSV cells for the genre.
func (g Genre) Record() []string {
	return []string{itoa(g.ID), g.Name}
}

// Publisher is a publisher referenced by at least one book.
type Publisher struct {
	ID   int64  `db:"id" validate:"gt=0"`
	Name string `db:"name" validate:"required"`
}

// Record returns the CSV cells for the publisher.
func (p Publisher) Record() []string {
	return []string{itoa(p.ID), p.Name}
}

// BookGenre links a book to its bookshelf.
type BookGenre struct {
	BookID  int64 `db:"book_id" validate:"gt=0"`
	GenreID int64 `db:"genre_id" validate:"gt=0"`
}

// Record returns the CSV cells for the link.
func (bg BookGenre) Record() []string {
	return []string{itoa(bg.BookID), itoa(bg.GenreID)}
}

// BookPublisher links a book to its publisher.
type BookPublisher struct {
	BookID      int64 `db:"book_id" validate:"gt=0"`
	PublisherID int64 `db:"publisher_id" validate:"gt=0"`
}

// Record returns the CSV cells for the link.
func (bp BookPublisher) Record() []string {
	return []string{itoa(bp.BookID), itoa(bp.PublisherID)}
}

// AuthorBook links a book to one of its authors.
type AuthorBook struct {
	BookID   int64 `db:"book_id" validate:"gt=0"`
	AuthorID int64 `db:"author_id" validate:"gt=0"`
}

// Record returns the CSV cells for the link.
func (ab AuthorBook) Record() []string {
	return []string{itoa(ab.BookID), itoa(ab.AuthorID)}
}

// TableCount is the number of rows in one cache table.
type TableCount struct {
	Table string
	Rows  int64
}
