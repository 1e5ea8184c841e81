package config

import (
	"bytes"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/listenupapp/catalog-export/internal/domain"
	"github.com/listenupapp/catalog-export/internal/errors"
)

// Profile selects which tables to export and how many rows each may hold.
//
//	tables: [books, series]
//	limits:
//	  books: 1000
//	normalize_text: true
type Profile struct {
	Tables []domain.Table `yaml:"tables"`
	// Limits caps rows fetched per table. 0 means unlimited.
	Limits map[domain.Table]int `yaml:"limits"`
	// NormalizeText NFC-normalizes and trims text decoded from the cache.
	NormalizeText bool `yaml:"normalize_text"`
}

// defaultLimits are the row caps of the original catalog dump.
func defaultLimits() map[domain.Table]int {
	return map[domain.Table]int{
		domain.TableBooks:          500,
		domain.TableAuthors:        500,
		domain.TableSubjects:       200,
		domain.TableLinks:          1000,
		domain.TableGenres:         500,
		domain.TableTitles:         1000,
		domain.TablePublishers:     100,
		domain.TableSeries:         500,
		domain.TableBookGenres:     500,
		domain.TableBookPublishers: 500,
		domain.TableAuthorBooks:    600,
	}
}

// DefaultProfile exports every table with the default limits.
func DefaultProfile() Profile {
	return Profile{
		Tables: domain.AllTables(),
		Limits: defaultLimits(),
	}
}

// LoadProfile reads a YAML profile and merges it over DefaultProfile.
// Omitted tables keep the full table list; omitted limits keep their defaults.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- Profile path from user input is expected
	if err != nil {
		return Profile{}, errors.Wrapf(err, errors.CodeConfig, "read profile %s", path)
	}
	return ParseProfile(data)
}

// ParseProfile decodes YAML profile data and merges it over DefaultProfile.
func ParseProfile(data []byte) (Profile, error) {
	var raw Profile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return Profile{}, errors.Wrap(err, errors.CodeConfig, "parse profile")
	}

	profile := DefaultProfile()
	if len(raw.Tables) > 0 {
		profile.Tables = raw.Tables
	}
	for table, limit := range raw.Limits {
		profile.Limits[table] = limit
	}
	profile.NormalizeText = raw.NormalizeText

	if err := profile.Validate(); err != nil {
		return Profile{}, err
	}
	return profile, nil
}

// Validate rejects unknown or repeated tables and negative limits.
func (p Profile) Validate() error {
	if len(p.Tables) == 0 {
		return errors.Config("profile selects no tables")
	}

	seen := make(map[domain.Table]bool, len(p.Tables))
	for _, table := range p.Tables {
		if !table.Valid() {
			return errors.Configf("profile: unknown table %q", table)
		}
		if seen[table] {
			return errors.Configf("profile: table %q listed twice", table)
		}
		seen[table] = true
	}

	for table, limit := range p.Limits {
		if !table.Valid() {
			return errors.Configf("profile: limit for unknown table %q", table)
		}
		if limit < 0 {
			return errors.Configf("profile: limit for %q must not be negative, got %d", table, limit)
		}
	}
	return nil
}

// Limit returns the row cap for a table. 0 means unlimited.
func (p Profile) Limit(table domain.Table) int {
	return p.Limits[table]
}
