package export

import (
	"context"

	"github.com/listenupapp/catalog-export/internal/catalog"
	"github.com/listenupapp/catalog-export/internal/domain"
	"github.com/listenupapp/catalog-export/internal/series"
)

// recorder is a row that knows its CSV cells.
type recorder interface {
	Record() []string
}

// tableFile is one CSV file produced by a step.
type tableFile struct {
	name   string
	header []string
	rows   [][]string
}

// step fetches one logical table and renders it into one or more files.
type step struct {
	table domain.Table
	run   func(ctx context.Context, src catalog.Source, limit int) ([]tableFile, error)
}

// steps lists every table in export order.
var steps = []step{
	tableStep(domain.TableBooks, "books.csv",
		[]string{"Book_id", "Published_date", "Language"}, catalog.Source.Books),
	tableStep(domain.TableAuthors, "authors.csv",
		[]string{"Author_id", "Name", "Nationality"}, catalog.Source.Authors),
	tableStep(domain.TableSubjects, "subjects.csv",
		[]string{"Subject_id", "Name"}, catalog.Source.Subjects),
	tableStep(domain.TableLinks, "links.csv",
		[]string{"Link_id", "Book_id", "Link"}, catalog.Source.DownloadLinks),
	tableStep(domain.TableGenres, "genres.csv",
		[]string{"Genre_id", "Genre_name"}, catalog.Source.Genres),
	tableStep(domain.TableTitles, "booktitles.csv",
		[]string{"id", "title", "Book_id"}, catalog.Source.Titles),
	tableStep(domain.TablePublishers, "publishers.csv",
		[]string{"Publisher_id", "Name"}, catalog.Source.Publishers),
	{table: domain.TableSeries, run: seriesFiles},
	tableStep(domain.TableBookGenres, "book_genre.csv",
		[]string{"Book_id", "genre_id"}, catalog.Source.BookGenres),
	tableStep(domain.TableBookPublishers, "Book_publisher.csv",
		[]string{"book_id", "publisher_id"}, catalog.Source.BookPublishers),
	tableStep(domain.TableAuthorBooks, "AuthorBooks.csv",
		[]string{"book_id", "author_id"}, catalog.Source.AuthorBooks),
}

// tableStep builds a step that writes one fetched table to one file.
func tableStep[T recorder](
	table domain.Table,
	name string,
	header []string,
	fetch func(catalog.Source, context.Context, int) ([]T, error),
) step {
	return step{
		table: table,
		run: func(ctx context.Context, src catalog.Source, limit int) ([]tableFile, error) {
			items, err := fetch(src, ctx, limit)
			if err != nil {
				return nil, err
			}
			return []tableFile{{name: name, header: header, rows: records(items)}}, nil
		},
	}
}

// seriesFiles categorizes series candidates into series.csv and series_books.csv.
func seriesFiles(ctx context.Context, src catalog.Source, limit int) ([]tableFile, error) {
	candidates, err := src.SeriesCandidates(ctx, limit)
	if err != nil {
		return nil, err
	}

	all, memberships, err := series.Categorize(candidates)
	if err != nil {
		return nil, err
	}

	return []tableFile{
		{
			name:   "series.csv",
			header: []string{"Series_id", "Series_name", "Description"},
			rows:   records(all),
		},
		{
			name:   "series_books.csv",
			header: []string{"Series_books_id", "Series_id", "Book_id"},
			rows:   records(memberships),
		},
	}, nil
}

func records[T recorder](items []T) [][]string {
	rows := make([][]string, len(items))
	for i, item := range items {
		rows[i] = item.Record()
	}
	return rows
}
