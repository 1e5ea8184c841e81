// Package sqlite reads the Gutenberg metadata cache, an SQLite file built by
// an external cache builder. The cache is opened read-only.
package sqlite

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3" // dialect registration
	"github.com/jmoiron/sqlx"

	"github.com/listenupapp/catalog-export/internal/catalog"
	"github.com/listenupapp/catalog-export/internal/domain"
	"github.com/listenupapp/catalog-export/internal/errors"
	"github.com/listenupapp/catalog-export/internal/normalize"
	"github.com/listenupapp/catalog-export/internal/validation"

	_ "modernc.org/sqlite"
)

const (
	driverName  = "sqlite"
	dialectName = "sqlite3"
)

// cacheTables are the tables the queries read from.
var cacheTables = []string{
	"books",
	"titles",
	"languages",
	"authors",
	"book_authors",
	"subjects",
	"book_subjects",
	"downloadlinks",
	"bookshelves",
	"publishers",
}

var _ catalog.Source = (*Source)(nil)

// Source is a catalog.Source backed by the SQLite cache file.
type Source struct {
	db        *sqlx.DB
	logger    *slog.Logger
	dialect   goqu.DialectWrapper
	validator *validation.Validator
	normalize bool
	path      string
}

// Option configures a Source.
type Option func(*Source)

// WithTextNormalization NFC-normalizes and trims text columns before validation.
func WithTextNormalization(enabled bool) Option {
	return func(s *Source) {
		s.normalize = enabled
	}
}

// Open opens the cache at path read-only and checks that every table the
// queries need is present.
// Returns errors.ErrNotFound if the file does not exist.
func Open(path string, logger *slog.Logger, opts ...Option) (*Source, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("catalog cache not found: %s", path)
		}
		return nil, fmt.Errorf("stat catalog cache: %w", err)
	}

	db, err := sqlx.Open(driverName, "file:"+filepath.ToSlash(path)+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// Reads are sequential; one connection is enough.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping catalog cache: %w", err)
	}

	s := &Source{
		db:        db,
		logger:    logger,
		dialect:   goqu.Dialect(dialectName),
		validator: validation.New(),
		path:      path,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.checkSchema(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("Catalog cache opened", "path", path, "normalize_text", s.normalize)
	return s, nil
}

// Close closes the underlying database connection.
func (s *Source) Close() error {
	return s.db.Close()
}

// Path returns the cache file path.
func (s *Source) Path() string {
	return s.path
}

// checkSchema verifies the cache contains every table the queries read.
func (s *Source) checkSchema() error {
	query, _, err := s.dialect.From("sqlite_master").
		Select("name").
		Where(goqu.C("type").Eq("table")).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build schema query: %w", err)
	}

	var names []string
	if err := s.db.Select(&names, query); err != nil {
		return fmt.Errorf("read catalog schema: %w", err)
	}

	present := make(map[string]bool, len(names))
	for _, name := range names {
		present[name] = true
	}

	var missing []string
	for _, table := range cacheTables {
		if !present[table] {
			missing = append(missing, table)
		}
	}
	if len(missing) > 0 {
		return errors.ValidationWithDetails(
			fmt.Sprintf("%s is not a catalog cache: missing tables %v", s.path, missing),
			map[string]any{"missing_tables": missing},
		)
	}
	return nil
}

// text returns s normalized when text normalization is enabled.
func (s *Source) text(v string) string {
	if !s.normalize {
		return v
	}
	return normalize.Text(v)
}

// fetch runs a select, scans rows into T, normalizes and validates each row.
func fetch[T any](ctx context.Context, s *Source, table domain.Table, ds *goqu.SelectDataset, limit int, clean func(*T)) ([]T, error) {
	if limit > 0 {
		ds = ds.Limit(uint(limit))
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", table, err)
	}

	rows := make([]T, 0)
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}

	for i := range rows {
		if clean != nil {
			clean(&rows[i])
		}
		if err := s.validator.Validate(rows[i]); err != nil {
			return nil, fmt.Errorf("decode %s row %d: %w", table, i+1, err)
		}
	}

	s.logger.Debug("Catalog query", "table", table, "rows", len(rows), "limit", limit)
	return rows, nil
}

// textCol selects a nullable text column as an empty string when NULL.
func textCol(col, alias string) any {
	return goqu.COALESCE(goqu.I(col), "").As(alias)
}

// TableCounts returns the row count of every cache table.
func (s *Source) TableCounts(ctx context.Context) ([]domain.TableCount, error) {
	counts := make([]domain.TableCount, 0, len(cacheTables))
	for _, table := range cacheTables {
		query, _, err := s.dialect.From(table).Select(goqu.COUNT(goqu.Star())).ToSQL()
		if err != nil {
			return nil, fmt.Errorf("build %s count: %w", table, err)
		}

		var n int64
		if err := s.db.GetContext(ctx, &n, query); err != nil {
			return nil, fmt.Errorf("count %s: %w", table, err)
		}
		counts = append(counts, domain.TableCount{Table: table, Rows: n})
	}
	return counts, nil
}
