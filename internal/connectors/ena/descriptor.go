package ena

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rfam/rfamops/internal/core/domain"
)

// descriptorDocument mirrors the parts of the ENA assembly XML we read.
// Pointer fields distinguish an absent node from an empty one.
type descriptorDocument struct {
	XMLName  xml.Name
	Assembly *assemblyRecord `xml:"ASSEMBLY"`
}

type assemblyRecord struct {
	Accession   string          `xml:"accession,attr"`
	Chromosomes *chromosomeList `xml:"CHROMOSOMES"`
	Links       *assemblyLinks  `xml:"ASSEMBLY_LINKS"`
}

type chromosomeList struct {
	Chromosomes []chromosome `xml:"CHROMOSOME"`
}

type chromosome struct {
	Accession string `xml:"accession,attr"`
}

type assemblyLinks struct {
	Links []assemblyLink `xml:"ASSEMBLY_LINK"`
}

type assemblyLink struct {
	URLLink *urlLink `xml:"URL_LINK"`
}

type urlLink struct {
	Label string `xml:"LABEL"`
	URL   string `xml:"URL"`
}

// DecodeDescriptor decodes an assembly XML descriptor.
// A well-formed document without an ASSEMBLY record decodes to a descriptor
// with HasRecord false; malformed XML is an error.
func DecodeDescriptor(r io.Reader) (*domain.AssemblyDescriptor, error) {
	var doc descriptorDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode assembly descriptor: %w", err)
	}

	desc := &domain.AssemblyDescriptor{}
	rec := doc.Assembly
	if rec == nil {
		return desc, nil
	}

	desc.HasRecord = true
	desc.Accession = domain.Accession(strings.TrimSpace(rec.Accession))

	if rec.Chromosomes != nil {
		desc.HasChromosomeList = true
		for _, c := range rec.Chromosomes.Chromosomes {
			acc := strings.TrimSpace(c.Accession)
			if acc == "" {
				continue
			}
			desc.Chromosomes = append(desc.Chromosomes, domain.Accession(acc))
		}
	}

	if rec.Links != nil {
		for _, l := range rec.Links.Links {
			if l.URLLink == nil {
				continue
			}
			if u := strings.TrimSpace(l.URLLink.URL); u != "" {
				desc.ReportLink = u
				break
			}
		}
	}

	return desc, nil
}

// DecodeDescriptorFile decodes a descriptor saved at path.
func DecodeDescriptorFile(path string) (*domain.AssemblyDescriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.FilesystemError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()
	return DecodeDescriptor(f)
}
