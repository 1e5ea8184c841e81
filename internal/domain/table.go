package domain

// Table names an exportable catalog table.
type Table string

// Exportable tables, in export order.
const (
	TableBooks          Table = "books"
	TableAuthors        Table = "authors"
	TableSubjects       Table = "subjects"
	TableLinks          Table = "links"
	TableGenres         Table = "genres"
	TableTitles         Table = "titles"
	TablePublishers     Table = "publishers"
	TableSeries         Table = "series"
	TableBookGenres     Table = "book_genres"
	TableBookPublishers Table = "book_publishers"
	TableAuthorBooks    Table = "author_books"
)

// AllTables returns every exportable table in export order.
func AllTables() []Table {
	return []Table{
		TableBooks,
		TableAuthors,
		TableSubjects,
		TableLinks,
		TableGenres,
		TableTitles,
		TablePublishers,
		TableSeries,
		TableBookGenres,
		TableBookPublishers,
		TableAuthorBooks,
	}
}

// Valid reports whether t names an exportable table.
func (t Table) Valid() bool {
	for _, known := range AllTables() {
		if t == known {
			return true
		}
	}
	return false
}
