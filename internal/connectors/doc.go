// Package connectors groups the clients for the external services rfamops
// talks to. Each subpackage implements one or more driven ports:
//
//   - httpfetch: rate-limited HTTP retrieval shared by every remote catalogue
//   - uniprot: reference proteome listing and proteome RDF descriptors
//   - ena: assembly XML descriptors, assembly reports and entry downloads
//
// Connectors never touch the filesystem layout of a download run; that is
// owned by the genome service.
package connectors
