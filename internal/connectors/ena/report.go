package ena

import (
	"strings"

	"github.com/rfam/rfamops/internal/core/domain"
)

// ParseReport extracts entry accessions from a tab-delimited assembly report.
// The first line is a header. Blank lines, including the usual trailing one,
// are ignored. The accession is the first field of each line and keeps its version.
func ParseReport(text string) []domain.Accession {
	lines := strings.Split(text, "\n")
	if len(lines) <= 1 {
		return nil
	}

	var accs []domain.Accession
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		field, _, _ := strings.Cut(line, "\t")
		accs = append(accs, domain.Accession(strings.TrimSpace(field)))
	}
	return accs
}
