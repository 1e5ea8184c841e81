package sqlite

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"github.com/listenupapp/catalog-export/internal/domain"
)

// on joins left.col to right.col.
func on(left, right string) exp.JoinCondition {
	return goqu.On(goqu.I(left).Eq(goqu.I(right)))
}

// Books returns books joined with their language name.
func (s *Source) Books(ctx context.Context, limit int) ([]domain.Book, error) {
	ds := s.dialect.From(goqu.T("books").As("b")).
		Join(goqu.T("languages").As("l"), on("b.languageid", "l.id")).
		Select(
			goqu.I("b.id").As("id"),
			textCol("b.dateissued", "date_issued"),
			textCol("l.name", "language"),
		).
		Order(goqu.I("b.id").Asc())

	return fetch(ctx, s, domain.TableBooks, ds, limit, func(b *domain.Book) {
		b.Issued = s.text(b.Issued)
		b.Language = s.text(b.Language)
	})
}

// Titles returns book titles.
func (s *Source) Titles(ctx context.Context, limit int) ([]domain.BookTitle, error) {
	ds := s.dialect.From("titles").
		Select(
			goqu.C("id"),
			textCol("name", "name"),
			goqu.C("bookid").As("book_id"),
		).
		Order(goqu.C("id").Asc())

	return fetch(ctx, s, domain.TableTitles, ds, limit, func(t *domain.BookTitle) {
		t.Title = s.text(t.Title)
	})
}

// Authors returns authors with the alphabetically first language of their books.
func (s *Source) Authors(ctx context.Context, limit int) ([]domain.Author, error) {
	ds := s.dialect.From(goqu.T("authors").As("a")).
		Join(goqu.T("book_authors").As("ba"), on("a.id", "ba.authorid")).
		Join(goqu.T("books").As("b"), on("ba.bookid", "b.id")).
		Join(goqu.T("languages").As("l"), on("b.languageid", "l.id")).
		Select(
			goqu.I("a.id").As("id"),
			textCol("a.name", "name"),
			goqu.COALESCE(goqu.MIN(goqu.I("l.name")), "").As("nationality"),
		).
		GroupBy(goqu.I("a.id"), goqu.I("a.name")).
		Order(goqu.I("a.id").Asc())

	return fetch(ctx, s, domain.TableAuthors, ds, limit, func(a *domain.Author) {
		a.Name = s.text(a.Name)
		a.Nationality = s.text(a.Nationality)
	})
}

// Subjects returns subject headings.
func (s *Source) Subjects(ctx context.Context, limit int) ([]domain.Subject, error) {
	ds := s.dialect.From("subjects").
		Select(goqu.C("id"), textCol("name", "name")).
		Order(goqu.C("id").Asc())

	return fetch(ctx, s, domain.TableSubjects, ds, limit, func(sub *domain.Subject) {
		sub.Name = s.text(sub.Name)
	})
}

// DownloadLinks returns download links whose book exists.
func (s *Source) DownloadLinks(ctx context.Context, limit int) ([]domain.DownloadLink, error) {
	ds := s.dialect.From(goqu.T("downloadlinks").As("d")).
		Join(goqu.T("books").As("b"), on("d.bookid", "b.id")).
		Select(
			goqu.I("d.id").As("id"),
			goqu.I("d.bookid").As("book_id"),
			textCol("d.name", "name"),
		).
		Order(goqu.I("d.id").Asc())

	// URLs are copied verbatim; normalizing would corrupt percent-encoded paths.
	return fetch[domain.DownloadLink](ctx, s, domain.TableLinks, ds, limit, nil)
}

// Genres returns bookshelves.
func (s *Source) Genres(ctx context.Context, limit int) ([]domain.Genre, error) {
	ds := s.dialect.From("bookshelves").
		Select(goqu.C("id"), textCol("name", "name")).
		Order(goqu.C("id").Asc())

	return fetch(ctx, s, domain.TableGenres, ds, limit, func(g *domain.Genre) {
		g.Name = s.text(g.Name)
	})
}

// Publishers returns each publisher referenced by a book once.
func (s *Source) Publishers(ctx context.Context, limit int) ([]domain.Publisher, error) {
	ds := s.dialect.From(goqu.T("books").As("b")).
		Join(goqu.T("publishers").As("p"), on("b.publisherid", "p.id")).
		Select(
			goqu.I("p.id").As("id"),
			textCol("p.name", "name"),
		).
		Distinct().
		Order(goqu.I("p.id").Asc())

	return fetch(ctx, s, domain.TablePublishers, ds, limit, func(p *domain.Publisher) {
		p.Name = s.text(p.Name)
	})
}

// BookGenres returns the bookshelf of every book that has one.
func (s *Source) BookGenres(ctx context.Context, limit int) ([]domain.BookGenre, error) {
	ds := s.dialect.From("books").
		Select(
			goqu.C("id").As("book_id"),
			goqu.C("bookshelveid").As("genre_id"),
		).
		Where(goqu.C("bookshelveid").IsNotNull()).
		Order(goqu.C("id").Asc())

	return fetch[domain.BookGenre](ctx, s, domain.TableBookGenres, ds, limit, nil)
}

// BookPublishers returns the publisher of every book that has one.
func (s *Source) BookPublishers(ctx context.Context, limit int) ([]domain.BookPublisher, error) {
	ds := s.dialect.From("books").
		Select(
			goqu.C("id").As("book_id"),
			goqu.C("publisherid").As("publisher_id"),
		).
		Where(goqu.C("publisherid").IsNotNull()).
		Order(goqu.C("id").Asc())

	return fetch[domain.BookPublisher](ctx, s, domain.TableBookPublishers, ds, limit, nil)
}

// AuthorBooks returns book to author links.
func (s *Source) AuthorBooks(ctx context.Context, limit int) ([]domain.AuthorBook, error) {
	ds := s.dialect.From("book_authors").
		Select(
			goqu.C("bookid").As("book_id"),
			goqu.C("authorid").As("author_id"),
		).
		Order(goqu.C("bookid").Asc(), goqu.C("authorid").Asc())

	return fetch[domain.AuthorBook](ctx, s, domain.TableAuthorBooks, ds, limit, nil)
}

// SeriesCandidates returns one record per (book, title, subject) combination
// for books with a known language.
func (s *Source) SeriesCandidates(ctx context.Context, limit int) ([]domain.BookRecord, error) {
	ds := s.dialect.From(goqu.T("books").As("b")).
		Join(goqu.T("titles").As("t"), on("b.id", "t.bookid")).
		Join(goqu.T("book_subjects").As("bs"), on("b.id", "bs.bookid")).
		Join(goqu.T("subjects").As("s"), on("bs.subjectid", "s.id")).
		Join(goqu.T("languages").As("l"), on("b.languageid", "l.id")).
		Select(
			goqu.I("b.id").As("book_id"),
			textCol("t.name", "title"),
			textCol("b.dateissued", "date_issued"),
			textCol("l.name", "language"),
			textCol("s.name", "subject"),
		).
		Order(goqu.I("b.id").Asc(), goqu.I("t.id").Asc(), goqu.I("s.id").Asc())

	return fetch(ctx, s, domain.TableSeries, ds, limit, func(r *domain.BookRecord) {
		r.Title = s.text(r.Title)
		r.Issued = s.text(r.Issued)
		r.Language = s.text(r.Language)
		r.Subject = s.text(r.Subject)
	})
}
