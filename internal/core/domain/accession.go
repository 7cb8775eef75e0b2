package domain

import (
	"fmt"
	"strings"
)

// Accession is an identifier in one of the accession namespaces
// (proteome, genome assembly, sequence entry).
//
// An assembly accession may carry a version suffix (".N"). Directory names
// and file-fetch keys use the unversioned form; lookups into external
// reports keep the version.
type Accession string

// AccessionKind classifies an accession by namespace.
type AccessionKind string

// Accession namespaces.
const (
	KindProteome AccessionKind = "proteome"
	KindAssembly AccessionKind = "assembly"
	KindEntry    AccessionKind = "entry"
)

// ParseAccession trims surrounding whitespace and validates s.
// Accessions must be non-empty and free of whitespace and path separators,
// since they are used as directory and file names.
func ParseAccession(s string) (Accession, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidAccession)
	}
	if strings.ContainsAny(s, " \t\r\n/\\") || s == "." || s == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidAccession, s)
	}
	return Accession(s), nil
}

// String returns the accession as given, version included.
func (a Accession) String() string {
	return string(a)
}

// Unversioned returns the accession up to the first '.'.
// "GCA_000001.2" becomes "GCA_000001".
func (a Accession) Unversioned() Accession {
	if i := strings.IndexByte(string(a), '.'); i >= 0 {
		return a[:i]
	}
	return a
}

// Kind guesses the namespace from the accession prefix.
func (a Accession) Kind() AccessionKind {
	s := string(a)
	switch {
	case strings.HasPrefix(s, "GCA_"), strings.HasPrefix(s, "GCF_"):
		return KindAssembly
	case strings.HasPrefix(s, "UP"):
		return KindProteome
	default:
		return KindEntry
	}
}

// AccessionLines returns the trimmed, non-empty lines of text in order.
// The lines are not validated.
func AccessionLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// ParseAccessionList parses one accession per line. Blank lines are
// skipped. Lines that are not valid accessions come back in invalid,
// so one bad line never costs the rest of the list.
func ParseAccessionList(text string) (accs []Accession, invalid []string) {
	for _, line := range AccessionLines(text) {
		acc, err := ParseAccession(line)
		if err != nil {
			invalid = append(invalid, line)
			continue
		}
		accs = append(accs, acc)
	}
	return accs, invalid
}
