// Package id generates identifiers for export runs.
package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// runAlphabet keeps run ids safe in file names on case-insensitive filesystems.
	runAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	runLength   = 12
)

// Run creates an export run identifier.
// Format: run-<12 lowercase alphanumerics> (e.g., "run-4f9k2m0q8z1a").
func Run() (string, error) {
	id, err := gonanoid.Generate(runAlphabet, runLength)
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return "run-" + id, nil
}
