package export

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ArchiveName is the file name of the archive written by ZipSink.
const ArchiveName = "catalog-export.zip"

// Sink receives the files of one export run.
// Nothing is visible at the destination until Close succeeds.
type Sink interface {
	// Create opens the next file. The previous file must be closed first.
	Create(name string) (io.WriteCloser, error)
	// Close publishes every file created so far.
	Close() error
	// Abort discards everything written. Safe to call after Close.
	Abort()
	// Path returns where the export is published.
	Path() string
}

// DirSink writes each file into a directory as <name>.tmp and renames them
// all into place on Close.
type DirSink struct {
	dir     string
	pending []string
	closed  bool
}

// NewDirSink creates dir if needed.
func NewDirSink(dir string) (*DirSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &DirSink{dir: dir}, nil
}

// Create opens <dir>/<name>.tmp for writing.
func (s *DirSink) Create(name string) (io.WriteCloser, error) {
	final := filepath.Join(s.dir, name)
	f, err := os.Create(final + ".tmp")
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", name, err)
	}
	s.pending = append(s.pending, final)
	return f, nil
}

// Close renames every temp file to its final name. If any rename fails, the
// files already renamed are moved back so Abort can remove them.
func (s *DirSink) Close() error {
	for i, final := range s.pending {
		if err := os.Rename(final+".tmp", final); err != nil {
			s.unpublish(s.pending[:i])
			return fmt.Errorf("rename %s: %w", filepath.Base(final), err)
		}
	}
	s.closed = true
	return nil
}

func (s *DirSink) unpublish(published []string) {
	for _, final := range published {
		if err := os.Rename(final, final+".tmp"); err != nil {
			os.Remove(final)
		}
	}
}

// Abort removes temp files that were not yet renamed.
func (s *DirSink) Abort() {
	if s.closed {
		return
	}
	for _, final := range s.pending {
		os.Remove(final + ".tmp")
	}
	s.pending = nil
}

// Path returns the output directory.
func (s *DirSink) Path() string {
	return s.dir
}

// ZipSink writes every file as an entry of a single zip archive.
type ZipSink struct {
	path   string
	tmp    string
	f      *os.File
	zw     *zip.Writer
	closed bool
}

// NewZipSink starts <dir>/catalog-export.zip.tmp.
func NewZipSink(dir string) (*ZipSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(dir, ArchiveName)
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return nil, fmt.Errorf("create archive: %w", err)
	}

	return &ZipSink{path: path, tmp: tmp, f: f, zw: zip.NewWriter(f)}, nil
}

// Create starts a new archive entry.
func (s *ZipSink) Create(name string) (io.WriteCloser, error) {
	w, err := s.zw.Create(name)
	if err != nil {
		return nil, fmt.Errorf("create entry %s: %w", name, err)
	}
	return nopCloser{w}, nil
}

// Close finalizes the archive and renames it into place.
func (s *ZipSink) Close() error {
	if err := s.zw.Close(); err != nil {
		return fmt.Errorf("close zip: %w", err)
	}
	if err := s.f.Close(); err != nil {
		return fmt.Errorf("close archive: %w", err)
	}
	if err := os.Rename(s.tmp, s.path); err != nil {
		return fmt.Errorf("rename archive: %w", err)
	}
	s.closed = true
	return nil
}

// Abort removes the partial archive.
func (s *ZipSink) Abort() {
	if s.closed {
		return
	}
	s.f.Close()
	os.Remove(s.tmp)
}

// Path returns the archive path.
func (s *ZipSink) Path() string {
	return s.path
}

// nopCloser lets zip entries satisfy io.WriteCloser; entries end when the next one starts.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
