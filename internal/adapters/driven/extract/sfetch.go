// Package extract runs Easel's esl-sfetch to cut subsequences out of a
// sequence database file.
package extract

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rfam/rfamops/internal/core/domain"
	"github.com/rfam/rfamops/internal/core/ports/driven"
	"github.com/rfam/rfamops/internal/logger"
)

// DefaultBinary is looked up on PATH when no explicit path is configured.
const DefaultBinary = "esl-sfetch"

// Ensure Sfetch implements the interface.
var _ driven.SequenceExtractor = (*Sfetch)(nil)

// Sfetch extracts subsequences with "esl-sfetch -c start/end source accession".
// The source file must have been indexed with "esl-sfetch --index".
type Sfetch struct {
	binary string
}

// NewSfetch creates an extractor for the esl-sfetch binary at path.
func NewSfetch(path string) *Sfetch {
	if path == "" {
		path = DefaultBinary
	}
	return &Sfetch{binary: path}
}

// Extract returns esl-sfetch's FASTA output for rng.
func (s *Sfetch) Extract(ctx context.Context, rng domain.SequenceRange, source string) ([]byte, error) {
	bin, err := exec.LookPath(s.binary)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrExtractorUnavailable, s.binary, err)
	}

	args := []string{"-c", rng.String(), source, rng.Accession}
	cmd := exec.CommandContext(ctx, bin, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	logger.Debug("Running %s %s", bin, strings.Join(args, " "))
	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("esl-sfetch %s %s: %w: %s", rng.Accession, rng, err, msg)
		}
		return nil, fmt.Errorf("esl-sfetch %s %s: %w", rng.Accession, rng, err)
	}
	return out, nil
}
