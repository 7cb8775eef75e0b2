package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Region is a significant family hit on a sequence entry.
type Region struct {
	// Family is the Rfam family accession (RFxxxxx).
	Family string

	// SequenceAccession is the rfamseq accession the hit lies on.
	SequenceAccession string

	// Start and End are the hit coordinates; End < Start on the reverse strand.
	Start int64
	End   int64

	// Description is the rfamseq description line.
	Description string
}

// Range returns the extraction coordinates of the region.
func (r Region) Range() SequenceRange {
	return SequenceRange{Accession: r.SequenceAccession, Start: r.Start, End: r.End}
}

// RecordID returns the FASTA identifier "acc/start-end".
func (r Region) RecordID() string {
	return fmt.Sprintf("%s/%d-%d", r.SequenceAccession, r.Start, r.End)
}

// SequenceRange identifies a subsequence of a sequence entry.
type SequenceRange struct {
	Accession string
	Start     int64
	End       int64
}

// String returns the range in "start/end" form as accepted by esl-sfetch -c.
func (r SequenceRange) String() string {
	return fmt.Sprintf("%d/%d", r.Start, r.End)
}

// SequenceRecord is one FASTA record to export.
type SequenceRecord struct {
	ID          string
	Description string
	Sequence    string
}

// ExportReport summarises one family's FASTA export.
type ExportReport struct {
	// Family is the family accession.
	Family string

	// Path is the written .fa.gz file.
	Path string

	// Written counts records written.
	Written int

	// Skipped lists record IDs that were empty, invalid or failed extraction.
	Skipped []string
}

// invalidSequence matches characters that must not appear in an exported sequence.
var invalidSequence = regexp.MustCompile("[.-@|\\s| -)|z-~|Z-`|EFIJLOPQX|efijlopqx+,]+")

// ValidSequence reports whether seq is a non-empty nucleotide sequence
// free of digits, whitespace, most punctuation and non-nucleotide letters.
func ValidSequence(seq string) bool {
	return seq != "" && !invalidSequence.MatchString(seq)
}

// SequenceFromFASTA drops the header line of extracted FASTA output and
// joins the remaining lines into a single sequence.
func SequenceFromFASTA(raw []byte) string {
	lines := strings.Split(string(raw), "\n")
	if len(lines) <= 1 {
		return ""
	}
	var b strings.Builder
	for _, line := range lines[1:] {
		b.WriteString(strings.TrimRight(line, "\r"))
	}
	return b.String()
}
