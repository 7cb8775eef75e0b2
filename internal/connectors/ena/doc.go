// Package ena reads assembly metadata from the European Nucleotide Archive
// and locates sequence downloads.
//
// An assembly descriptor is an XML document whose top-level ASSEMBLY record
// may carry a CHROMOSOMES list or one or more ASSEMBLY_LINKS pointing at a
// tab-delimited assembly report. This package decodes both shapes into
// [domain.AssemblyDescriptor] and leaves the choice between them to the
// core expander.
package ena
