package export

import (
	"context"
	"sync"

	"github.com/listenupapp/catalog-export/internal/domain"
)

// fakeSource is an in-memory catalog.Source that records requested limits.
type fakeSource struct {
	mu     sync.Mutex
	limits map[string]int
	fail   map[string]error

	books          []domain.Book
	titles         []domain.BookTitle
	authors        []domain.Author
	subjects       []domain.Subject
	links          []domain.DownloadLink
	genres         []domain.Genre
	publishers     []domain.Publisher
	bookGenres     []domain.BookGenre
	bookPublishers []domain.BookPublisher
	authorBooks    []domain.AuthorBook
	candidates     []domain.BookRecord
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		limits: make(map[string]int),
		fail:   make(map[string]error),
		books: []domain.Book{
			{ID: 1, Issued: "1876", Language: "English"},
			{ID: 2, Issued: "1865", Language: "English"},
			{ID: 3, Issued: "", Language: "French"},
		},
		titles: []domain.BookTitle{
			{ID: 1, Title: "Adventures of Tom", BookID: 1},
			{ID: 2, Title: "Adventures in Wonderland", BookID: 2},
		},
		authors: []domain.Author{
			{ID: 1, Name: "Twain, Mark", Nationality: "English"},
		},
		subjects: []domain.Subject{
			{ID: 1, Name: "Fiction"},
			{ID: 2, Name: "Adventure stories, \"classic\""},
		},
		links: []domain.DownloadLink{
			{ID: 1, BookID: 1, URL: "https://www.gutenberg.org/ebooks/74.epub.images"},
		},
		genres:         []domain.Genre{{ID: 1, Name: "Adventure"}},
		publishers:     []domain.Publisher{{ID: 1, Name: "Project Gutenberg"}},
		bookGenres:     []domain.BookGenre{{BookID: 1, GenreID: 1}},
		bookPublishers: []domain.BookPublisher{{BookID: 1, PublisherID: 1}, {BookID: 2, PublisherID: 1}},
		authorBooks:    []domain.AuthorBook{{BookID: 1, AuthorID: 1}},
		candidates: []domain.BookRecord{
			{BookID: 1, Title: "Adventures of Tom", Subject: "Fiction"},
			{BookID: 2, Title: "Adventures in Wonderland", Subject: "Fiction"},
			{BookID: 3, Title: "Moby Dick", Subject: "Adventure"},
		},
	}
}

func take[T any](f *fakeSource, name string, items []T, limit int) ([]T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.limits[name] = limit
	if err := f.fail[name]; err != nil {
		return nil, err
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items, nil
}

func (f *fakeSource) Books(_ context.Context, limit int) ([]domain.Book, error) {
	return take(f, "books", f.books, limit)
}

func (f *fakeSource) Titles(_ context.Context, limit int) ([]domain.BookTitle, error) {
	return take(f, "titles", f.titles, limit)
}

func (f *fakeSource) Authors(_ context.Context, limit int) ([]domain.Author, error) {
	return take(f, "authors", f.authors, limit)
}

func (f *fakeSource) Subjects(_ context.Context, limit int) ([]domain.Subject, error) {
	return take(f, "subjects", f.subjects, limit)
}

func (f *fakeSource) DownloadLinks(_ context.Context, limit int) ([]domain.DownloadLink, error) {
	return take(f, "links", f.links, limit)
}

func (f *fakeSource) Genres(_ context.Context, limit int) ([]domain.Genre, error) {
	return take(f, "genres", f.genres, limit)
}

func (f *fakeSource) Publishers(_ context.Context, limit int) ([]domain.Publisher, error) {
	return take(f, "publishers", f.publishers, limit)
}

func (f *fakeSource) BookGenres(_ context.Context, limit int) ([]domain.BookGenre, error) {
	return take(f, "book_genres", f.bookGenres, limit)
}

func (f *fakeSource) BookPublishers(_ context.Context, limit int) ([]domain.BookPublisher, error) {
	return take(f, "book_publishers", f.bookPublishers, limit)
}

func (f *fakeSource) AuthorBooks(_ context.Context, limit int) ([]domain.AuthorBook, error) {
	return take(f, "author_books", f.authorBooks, limit)
}

func (f *fakeSource) SeriesCandidates(_ context.Context, limit int) ([]domain.BookRecord, error) {
	return take(f, "series", f.candidates, limit)
}

func (f *fakeSource) TableCounts(context.Context) ([]domain.TableCount, error) {
	return []domain.TableCount{{Table: "books", Rows: int64(len(f.books))}}, nil
}
