// Package normalize provides utilities for normalizing text decoded from the catalog cache.
package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Text composes text to NFC and collapses runs of white space to a single space.
// Catalog titles mix precomposed and decomposed accents ("Les Misérables"), which
// would otherwise produce distinct series names for the same word.
//
// Examples:
//
//	"Moby Dick"        -> "Moby Dick"
//	"  Les  Misérables " -> "Les Misérables"
func Text(s string) string {
	s = norm.NFC.String(s)
	return strings.Join(strings.Fields(s), " ")
}
