// Package fasta writes gzip-compressed FASTA files.
package fasta

import (
	"fmt"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/klauspost/pgzip"

	"github.com/rfam/rfamops/internal/core/domain"
	"github.com/rfam/rfamops/internal/core/ports/driven"
)

// DefaultLineWidth is the residue count per sequence line.
const DefaultLineWidth = 60

// Ensure SinkFactory implements the interface.
var _ driven.FastaSinkFactory = (*SinkFactory)(nil)

// SinkFactory creates gzip FASTA files.
type SinkFactory struct {
	lineWidth int
}

// NewSinkFactory returns a factory wrapping sequence lines at lineWidth.
func NewSinkFactory(lineWidth int) *SinkFactory {
	if lineWidth <= 0 {
		lineWidth = DefaultLineWidth
	}
	return &SinkFactory{lineWidth: lineWidth}
}

// Create truncates path and opens a sink writing to it.
func (f *SinkFactory) Create(path string) (driven.FastaSink, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, &domain.FilesystemError{Op: "create", Path: path, Err: err}
	}
	gz, err := pgzip.NewWriterLevel(file, pgzip.BestSpeed)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("gzip writer: %w", err)
	}
	return &Sink{
		path: path,
		file: file,
		gz:   gz,
		w:    fasta.NewWriter(gz, f.lineWidth),
	}, nil
}

// Sink is one open .fa.gz file.
type Sink struct {
	path string
	file *os.File
	gz   *pgzip.Writer
	w    *fasta.Writer
}

// WriteRecord appends rec as a FASTA record.
func (s *Sink) WriteRecord(rec domain.SequenceRecord) error {
	seq := linear.NewSeq(rec.ID, alphabet.BytesToLetters([]byte(rec.Sequence)), alphabet.DNAredundant)
	seq.Desc = rec.Description
	if _, err := s.w.Write(seq); err != nil {
		return &domain.FilesystemError{Op: "write", Path: s.path, Err: err}
	}
	return nil
}

// Close flushes the gzip stream and closes the file.
func (s *Sink) Close() error {
	gzErr := s.gz.Close()
	fileErr := s.file.Close()
	if gzErr != nil {
		return &domain.FilesystemError{Op: "write", Path: s.path, Err: gzErr}
	}
	if fileErr != nil {
		return &domain.FilesystemError{Op: "close", Path: s.path, Err: fileErr}
	}
	return nil
}
