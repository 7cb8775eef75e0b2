package domain

import (
	"strings"
)

// AssemblyDescriptor is the decoded shape of an assembly's XML descriptor.
// It is scoped to the call that fetched it and never cached.
type AssemblyDescriptor struct {
	// Accession is the assembly accession named by the record, if any.
	Accession Accession

	// HasRecord is false when the document has no top-level assembly record.
	HasRecord bool

	// HasChromosomeList is true when the record carries a chromosome list node,
	// even an empty one.
	HasChromosomeList bool

	// Chromosomes lists chromosome accessions in document order, version included.
	Chromosomes []Accession

	// ReportLink is the first external assembly-report URL, as embedded (usually ftp://).
	ReportLink string
}

// ExpansionStrategy identifies which case of the expander produced a result.
type ExpansionStrategy string

// Expansion strategies, in precedence order.
const (
	// ExpansionChromosomes means the descriptor listed chromosome-level children.
	ExpansionChromosomes ExpansionStrategy = "chromosomes"

	// ExpansionReport means the entries came from the linked assembly report.
	ExpansionReport ExpansionStrategy = "report"

	// ExpansionEmpty means the record had neither chromosomes nor a report link.
	ExpansionEmpty ExpansionStrategy = "empty"
)

// Expansion is the ordered list of sequence entry accessions for one assembly.
type Expansion struct {
	// Assembly is the expanded assembly accession.
	Assembly Accession

	// Strategy records which case produced the entries.
	Strategy ExpansionStrategy

	// Entries follows document order. Chromosome entries are unversioned;
	// report entries keep their version.
	Entries []Accession
}

// IsEmpty reports whether there is nothing to download.
func (e *Expansion) IsEmpty() bool {
	return e == nil || len(e.Entries) == 0
}

// HTTPReportURL rewrites the scheme of an embedded report link to http.
// Descriptors embed ftp:// links that must be retrieved over http.
func HTTPReportURL(link string) string {
	link = strings.TrimSpace(link)
	if _, rest, ok := strings.Cut(link, ":"); ok {
		return "http:" + rest
	}
	return "http://" + link
}

// SequenceFormat selects the payload of the sequence download service.
type SequenceFormat string

// Supported download formats.
const (
	FormatFASTA SequenceFormat = "fasta"
	FormatXML   SequenceFormat = "xml"
)

// IsValid returns true if the format is recognised.
func (f SequenceFormat) IsValid() bool {
	return f == FormatFASTA || f == FormatXML
}

// Extension returns the on-disk extension for a compressed download.
func (f SequenceFormat) Extension() string {
	switch f {
	case FormatXML:
		return ".xml.gz"
	default:
		return ".fa.gz"
	}
}

// EntryFileName returns the file name for a downloaded entry.
func EntryFileName(acc Accession, f SequenceFormat) string {
	return acc.String() + f.Extension()
}

// DescriptorFileName returns the file name of a locally stored assembly descriptor.
func DescriptorFileName(acc Accession) string {
	return acc.String() + ".xml"
}

// ProteomeAssemblies maps each proteome accession to its assembly accession.
// An empty value means the proteome could not be resolved.
// Built once per resolution run and not mutated afterwards.
type ProteomeAssemblies map[Accession]Accession

// Resolved returns the assembly for a proteome and whether it was resolved.
func (m ProteomeAssemblies) Resolved(proteome Accession) (Accession, bool) {
	acc, ok := m[proteome]
	return acc, ok && acc != ""
}

// Unresolved returns the proteomes that mapped to nothing, in no particular order.
func (m ProteomeAssemblies) Unresolved() []Accession {
	var out []Accession
	for p, a := range m {
		if a == "" {
			out = append(out, p)
		}
	}
	return out
}
