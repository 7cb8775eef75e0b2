package services

import (
	"fmt"
	"os"

	"github.com/rfam/rfamops/internal/core/domain"
)

// readAccessionInput interprets input as a path to a file of accessions,
// one per line, or failing that as a single accession.
//
// File lines come back trimmed but unvalidated so the caller can report a
// bad line against its own position without dropping the others. A single
// accession is validated here.
func readAccessionInput(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil || info.IsDir() {
		acc, perr := domain.ParseAccession(input)
		if perr != nil {
			return nil, perr
		}
		return []string{acc.String()}, nil
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return nil, &domain.FilesystemError{Op: "read", Path: input, Err: err}
	}
	lines := domain.AccessionLines(string(data))
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: %s lists no accessions", domain.ErrInvalidInput, input)
	}
	return lines, nil
}
