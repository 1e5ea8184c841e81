// Package catalog defines the typed read interface over the Gutenberg metadata cache.
package catalog

import (
	"context"

	"github.com/listenupapp/catalog-export/internal/domain"
)

// Source provides typed fetch operations over the catalog cache.
// A limit of 0 returns every row. Rows come back ordered by primary key.
type Source interface {
	// Books returns books with their issue date and language name.
	Books(ctx context.Context, limit int) ([]domain.Book, error)
	// Titles returns book titles.
	Titles(ctx context.Context, limit int) ([]domain.BookTitle, error)
	// Authors returns authors that have at least one book in a known language.
	Authors(ctx context.Context, limit int) ([]domain.Author, error)
	// Subjects returns subject headings.
	Subjects(ctx context.Context, limit int) ([]domain.Subject, error)
	// DownloadLinks returns download links of known books.
	DownloadLinks(ctx context.Context, limit int) ([]domain.DownloadLink, error)
	// Genres returns bookshelves.
	Genres(ctx context.Context, limit int) ([]domain.Genre, error)
	// Publishers returns distinct publishers referenced by books.
	Publishers(ctx context.Context, limit int) ([]domain.Publisher, error)
	// BookGenres returns book to bookshelf links.
	BookGenres(ctx context.Context, limit int) ([]domain.BookGenre, error)
	// BookPublishers returns book to publisher links.
	BookPublishers(ctx context.Context, limit int) ([]domain.BookPublisher, error)
	// AuthorBooks returns book to author links.
	AuthorBooks(ctx context.Context, limit int) ([]domain.AuthorBook, error)
	// SeriesCandidates returns one record per (book, title, subject) combination.
	SeriesCandidates(ctx context.Context, limit int) ([]domain.BookRecord, error)
	// TableCounts returns the row count of every cache table.
	TableCounts(ctx context.Context) ([]domain.TableCount, error)
}
