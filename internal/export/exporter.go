// Package export writes the catalog cache as a set of CSV files, either into
// a directory or into a single zip archive, followed by a manifest.
package export

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/listenupapp/catalog-export/internal/catalog"
	"github.com/listenupapp/catalog-export/internal/config"
	"github.com/listenupapp/catalog-export/internal/domain"
	"github.com/listenupapp/catalog-export/internal/errors"
	"github.com/listenupapp/catalog-export/internal/id"
)

// FormatVersion is the export format version recorded in the manifest.
const FormatVersion = "1.0"

// ManifestName is the name of the manifest file, always written last.
const ManifestName = "manifest.json"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Options configures one export run.
type Options struct {
	// Tables to export. Empty means every table of the profile.
	Tables    []domain.Table
	Archive   bool
	OutputDir string
	// CachePath is recorded in the manifest.
	CachePath string
}

// FileResult describes one written file.
type FileResult struct {
	Name     string       `json:"name"`
	Table    domain.Table `json:"table"`
	Rows     int          `json:"rows"`
	Checksum string       `json:"sha256"`
}

// Result contains the outcome of an export run.
type Result struct {
	OutputPath string
	RunID      string
	Files      []FileResult
	Duration   time.Duration
}

// Rows returns the total number of data rows written.
func (r *Result) Rows() int {
	n := 0
	for _, f := range r.Files {
		n += f.Rows
	}
	return n
}

// Manifest describes export contents.
type Manifest struct {
	Version   string       `json:"version"`
	RunID     string       `json:"run_id"`
	CreatedAt time.Time    `json:"created_at"`
	CachePath string       `json:"cache_path,omitempty"`
	Files     []FileResult `json:"files"`
}

// Exporter writes catalog tables to a Sink.
type Exporter struct {
	source  catalog.Source
	profile config.Profile
	logger  *slog.Logger
}

// New creates an Exporter. Row limits come from profile.
func New(source catalog.Source, profile config.Profile, logger *slog.Logger) *Exporter {
	return &Exporter{source: source, profile: profile, logger: logger}
}

// Export writes the selected tables and the manifest.
// On any failure, including cancellation, nothing is published.
func (e *Exporter) Export(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()

	tables := opts.Tables
	if len(tables) == 0 {
		tables = e.profile.Tables
	}
	for _, table := range tables {
		if !table.Valid() {
			return nil, errors.InvalidInputf("unknown table %q", table)
		}
	}

	runID, err := id.Run()
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "generate run id")
	}

	sink, err := openSink(opts)
	if err != nil {
		return nil, err
	}
	defer sink.Abort()

	logger := e.logger.With("run_id", runID)
	logger.Info("Export started", "output", sink.Path(), "tables", len(tables), "archive", opts.Archive)

	manifest := &Manifest{
		Version:   FormatVersion,
		RunID:     runID,
		CreatedAt: start.UTC(),
		CachePath: opts.CachePath,
		Files:     make([]FileResult, 0, len(tables)),
	}

	for _, st := range steps {
		if !slices.Contains(tables, st.table) {
			continue
		}
		if err := ctx.Err(); err != nil {
			logger.Warn("Export canceled", "table", st.table)
			return nil, err
		}

		limit := e.profile.Limit(st.table)
		files, err := st.run(ctx, e.source, limit)
		if err != nil {
			return nil, fmt.Errorf("export %s: %w", st.table, err)
		}

		for _, file := range files {
			fr, err := writeTable(sink, st.table, file)
			if err != nil {
				return nil, fmt.Errorf("write %s: %w", file.name, err)
			}
			manifest.Files = append(manifest.Files, fr)
			logger.Info("Table exported", "table", st.table, "file", fr.Name, "rows", fr.Rows, "limit", limit)
		}
	}

	// Manifest goes last so a complete manifest implies complete files.
	if err := writeManifest(sink, manifest); err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}

	if err := sink.Close(); err != nil {
		return nil, fmt.Errorf("publish export: %w", err)
	}

	result := &Result{
		OutputPath: sink.Path(),
		RunID:      runID,
		Files:      manifest.Files,
		Duration:   time.Since(start),
	}
	logger.Info("Export completed", "files", len(result.Files), "rows", result.Rows(), "duration", result.Duration)
	return result, nil
}

func openSink(opts Options) (Sink, error) {
	if opts.OutputDir == "" {
		return nil, errors.InvalidInput("output directory is required")
	}
	if opts.Archive {
		return NewZipSink(opts.OutputDir)
	}
	return NewDirSink(opts.OutputDir)
}

// writeTable streams file into sink, hashing it as it goes.
func writeTable(sink Sink, table domain.Table, file tableFile) (FileResult, error) {
	w, err := sink.Create(file.name)
	if err != nil {
		return FileResult{}, err
	}
	defer w.Close()

	hash := sha256.New()
	tw, err := NewTableWriter(io.MultiWriter(w, hash), file.header)
	if err != nil {
		return FileResult{}, err
	}
	for _, row := range file.rows {
		if err := tw.Write(row); err != nil {
			return FileResult{}, err
		}
	}
	if err := tw.Flush(); err != nil {
		return FileResult{}, err
	}
	if err := w.Close(); err != nil {
		return FileResult{}, err
	}

	return FileResult{
		Name:     file.name,
		Table:    table,
		Rows:     tw.Count(),
		Checksum: hex.EncodeToString(hash.Sum(nil)),
	}, nil
}

func writeManifest(sink Sink, m *Manifest) error {
	w, err := sink.Create(ManifestName)
	if err != nil {
		return err
	}
	defer w.Close()

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return err
	}
	return w.Close()
}
