package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rfam/rfamops/internal/core/domain"
	"github.com/rfam/rfamops/internal/core/ports/driven"
	"github.com/rfam/rfamops/internal/core/ports/driving"
	"github.com/rfam/rfamops/internal/logger"
)

// Ensure ProteomeResolver implements the interface.
var _ driving.ProteomeService = (*ProteomeResolver)(nil)

// assemblyMarker identifies an assembly reference among descriptor objects.
const assemblyMarker = "GCA"

// ProteomeResolver maps reference proteomes to genome assemblies.
//
// Resolution is a substring heuristic over the proteome's RDF descriptor:
// the first object, in document order, that contains "GCA" names the
// assembly, and its trailing path segment is the accession. Nothing
// stronger is inferred from the graph.
type ProteomeResolver struct {
	catalog driven.ProteomeCatalog
}

// NewProteomeResolver creates a resolver over catalog.
func NewProteomeResolver(catalog driven.ProteomeCatalog) *ProteomeResolver {
	return &ProteomeResolver{catalog: catalog}
}

// ListReferenceProteomes returns the reference proteome directory.
func (r *ProteomeResolver) ListReferenceProteomes(ctx context.Context) ([]domain.Accession, error) {
	accs, err := r.catalog.ReferenceProteomes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reference proteomes: %w", err)
	}
	return accs, nil
}

// ResolveAssembly returns the assembly accession named by a proteome's descriptor.
func (r *ProteomeResolver) ResolveAssembly(ctx context.Context, proteome domain.Accession) (domain.Accession, error) {
	objects, err := r.catalog.DescriptorObjects(ctx, proteome)
	if err != nil {
		return "", fmt.Errorf("proteome %s: %w", proteome, err)
	}

	for _, obj := range objects {
		if !strings.Contains(obj, assemblyMarker) {
			continue
		}
		seg := trailingSegment(obj)
		if seg == "" {
			return "", fmt.Errorf("%w: proteome %s names assembly %q with no accession", domain.ErrNotFound, proteome, obj)
		}
		logger.Debug("Proteome %s -> assembly %s", proteome, seg)
		return domain.Accession(seg), nil
	}
	return "", fmt.Errorf("%w: proteome %s names no assembly", domain.ErrNotFound, proteome)
}

// ResolveAssemblies resolves each proteome independently.
// A failure maps the proteome to the empty accession and the batch continues.
func (r *ProteomeResolver) ResolveAssemblies(ctx context.Context, proteomes []domain.Accession) domain.ProteomeAssemblies {
	result := make(domain.ProteomeAssemblies, len(proteomes))
	for _, p := range proteomes {
		acc, err := r.ResolveAssembly(ctx, p)
		if err != nil {
			logger.Warn("Unresolved %s: %v", p, err)
			result[p] = ""
			continue
		}
		result[p] = acc
	}
	logger.Info("Resolved %d of %d proteomes", len(result)-len(result.Unresolved()), len(proteomes))
	return result
}

// ResolveInput resolves a single proteome accession or a file of them.
// The returned order is the input order with repeats dropped. A line that
// is not a valid accession maps to the empty assembly.
func (r *ProteomeResolver) ResolveInput(ctx context.Context, input string) ([]domain.Accession, domain.ProteomeAssemblies, error) {
	lines, err := readAccessionInput(input)
	if err != nil {
		return nil, nil, err
	}

	order := make([]domain.Accession, 0, len(lines))
	seen := make(map[domain.Accession]bool, len(lines))
	var proteomes []domain.Accession
	for _, line := range lines {
		p := domain.Accession(line)
		if seen[p] {
			continue
		}
		seen[p] = true
		order = append(order, p)

		if _, perr := domain.ParseAccession(line); perr != nil {
			logger.Warn("Unresolved %q: %v", line, perr)
			continue
		}
		proteomes = append(proteomes, p)
	}

	result := r.ResolveAssemblies(ctx, proteomes)
	for _, p := range order {
		if _, ok := result[p]; !ok {
			result[p] = ""
		}
	}
	return order, result, nil
}

// SearchAccessions returns the trailing segment of every descriptor object
// containing "/keyword/", in document order.
func (r *ProteomeResolver) SearchAccessions(ctx context.Context, proteome domain.Accession, keyword string) ([]domain.Accession, error) {
	keyword = strings.Trim(strings.TrimSpace(keyword), "/")
	if keyword == "" {
		return nil, fmt.Errorf("%w: empty keyword", domain.ErrInvalidInput)
	}

	objects, err := r.catalog.DescriptorObjects(ctx, proteome)
	if err != nil {
		return nil, fmt.Errorf("proteome %s: %w", proteome, err)
	}

	needle := "/" + keyword + "/"
	var accs []domain.Accession
	for _, obj := range objects {
		if strings.Contains(obj, needle) {
			accs = append(accs, domain.Accession(trailingSegment(obj)))
		}
	}
	return accs, nil
}

// trailingSegment returns the text after the last '/'.
func trailingSegment(s string) string {
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		return s[i+1:]
	}
	return s
}
