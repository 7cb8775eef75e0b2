// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ResourceFetcher: Retrieves remote resources over HTTP
//   - ProteomeCatalog: Reference proteome directory and RDF descriptors
//   - AssemblyCatalog: Assembly XML descriptors, reports and download URLs
//   - OutcomeStore: Per-accession download outcome persistence
//   - ConfigStore: Application configuration
//
// # Export Interfaces
//
// Required only by the family FASTA exporter:
//
//   - RegionStore: Significant family regions from the relational store
//   - SequenceExtractor: Subsequence extraction (esl-sfetch)
//   - FastaSinkFactory: Compressed FASTA output
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
