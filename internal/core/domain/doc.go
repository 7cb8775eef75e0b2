// Package domain defines the core entities of the Rfam operations toolkit.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Accession: an identifier in the proteome, assembly or sequence entry namespace
//   - AssemblyDescriptor: the decoded shape of an assembly's XML descriptor
//   - Expansion: the ordered entry accessions produced for one assembly
//   - FetchOutcome / BatchSummary: the per-accession result of a download run
//   - Region: a significant family hit used by the FASTA exporter
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
