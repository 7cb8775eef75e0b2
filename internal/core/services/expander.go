package services

import (
	"context"
	"fmt"

	"github.com/rfam/rfamops/internal/core/domain"
)

// expandDescriptor applies the expansion cases in strict precedence order.
// The first case that matches wins; cases are never combined.
//
//  1. no assembly record: ErrNoAssemblyRecord
//  2. chromosome list present: its accessions, version stripped
//  3. report link present: the report's accessions, version kept
//  4. otherwise: an empty expansion
func (g *GenomeDownloader) expandDescriptor(
	ctx context.Context,
	assembly domain.Accession,
	desc *domain.AssemblyDescriptor,
) (*domain.Expansion, error) {
	if desc == nil || !desc.HasRecord {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoAssemblyRecord, assembly)
	}

	exp := &domain.Expansion{Assembly: assembly}

	switch {
	case desc.HasChromosomeList:
		exp.Strategy = domain.ExpansionChromosomes
		exp.Entries = make([]domain.Accession, 0, len(desc.Chromosomes))
		for _, c := range desc.Chromosomes {
			exp.Entries = append(exp.Entries, c.Unversioned())
		}

	case desc.ReportLink != "":
		url := domain.HTTPReportURL(desc.ReportLink)
		entries, err := g.catalog.Report(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("assembly report for %s: %w", assembly, err)
		}
		exp.Strategy = domain.ExpansionReport
		exp.Entries = entries

	default:
		exp.Strategy = domain.ExpansionEmpty
	}

	return exp, nil
}

// Expand fetches an assembly's descriptor and expands it into entry accessions.
func (g *GenomeDownloader) Expand(ctx context.Context, assembly domain.Accession) (*domain.Expansion, error) {
	desc, err := g.catalog.Descriptor(ctx, assembly)
	if err != nil {
		return nil, fmt.Errorf("assembly descriptor for %s: %w", assembly, err)
	}
	return g.expandDescriptor(ctx, assembly, desc)
}
