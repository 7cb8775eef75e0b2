// Package uniprot reads the UniProt proteome catalogue.
//
// Two resources are used: the plain-text list of reference proteome
// accessions, and the per-proteome RDF/XML descriptor. The descriptor is
// decoded with github.com/knakk/rdf into its triples; only the object
// terms are surfaced, in document order, for the core resolver to scan.
//
// All requests go through a [driven.ResourceFetcher], which owns timeouts
// and rate limiting.
package uniprot
