package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/rfam/rfamops/internal/core/domain"
	"github.com/rfam/rfamops/internal/core/ports/driven"
	"github.com/rfam/rfamops/internal/core/ports/driving"
	"github.com/rfam/rfamops/internal/logger"
)

// Ensure GenomeDownloader implements the interface.
var _ driving.GenomeService = (*GenomeDownloader)(nil)

// DefaultWorkers is used when a non-positive worker count is configured.
const DefaultWorkers = 4

// GenomeDownloader expands assemblies and downloads their sequence entries,
// one destination directory per assembly.
type GenomeDownloader struct {
	fetcher  driven.ResourceFetcher
	catalog  driven.AssemblyCatalog
	outcomes driven.OutcomeStore
	workers  int
}

// NewGenomeDownloader creates a downloader.
// outcomes is optional; when nil, outcomes are not persisted.
func NewGenomeDownloader(
	fetcher driven.ResourceFetcher,
	catalog driven.AssemblyCatalog,
	outcomes driven.OutcomeStore,
	workers int,
) *GenomeDownloader {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &GenomeDownloader{
		fetcher:  fetcher,
		catalog:  catalog,
		outcomes: outcomes,
		workers:  workers,
	}
}

// DownloadGenomes processes every accession named by req.Input.
// Accessions are processed concurrently up to the worker limit; outcomes
// are returned in input order. A line that is not a valid accession fails
// on its own. A repeat of an earlier accession (compared unversioned) is
// skipped, since both would write the same directory.
func (g *GenomeDownloader) DownloadGenomes(ctx context.Context, req domain.DownloadRequest) (*domain.BatchSummary, error) {
	if req.DestDir == "" {
		return nil, fmt.Errorf("%w: destination directory required", domain.ErrInvalidInput)
	}
	lines, err := readAccessionInput(req.Input)
	if err != nil {
		return nil, err
	}

	summary := &domain.BatchSummary{
		RunID:    uuid.NewString(),
		Outcomes: make([]domain.FetchOutcome, len(lines)),
	}
	logger.Section("Download " + summary.RunID)
	logger.Info("Downloading %d assemblies into %s with %d workers", len(lines), req.DestDir, g.workers)

	var (
		mu   sync.Mutex
		done int
		eg   errgroup.Group
	)
	eg.SetLimit(g.workers)

	finish := func(i int, outcome domain.FetchOutcome) {
		outcome.RunID = summary.RunID
		summary.Outcomes[i] = outcome
		g.record(ctx, &outcome)

		mu.Lock()
		defer mu.Unlock()
		done++
		if req.Progress != nil {
			req.Progress(done, len(lines), outcome)
		}
	}

	seen := make(map[domain.Accession]domain.Accession, len(lines))
	for i, line := range lines {
		acc, perr := domain.ParseAccession(line)
		if perr != nil {
			finish(i, failOutcome(domain.FetchOutcome{
				Accession: domain.Accession(line),
				StartedAt: time.Now(),
			}, perr))
			continue
		}

		key := acc.Unversioned()
		if first, dup := seen[key]; dup {
			logger.Warn("Skipping %s: duplicate of %s", acc, first)
			now := time.Now()
			finish(i, domain.FetchOutcome{
				Accession: acc,
				Directory: filepath.Join(req.DestDir, key.String()),
				Status:    domain.OutcomeSkipped,
				Error:     "duplicate of " + first.String(),
				StartedAt: now,
				EndedAt:   now,
			})
			continue
		}
		seen[key] = acc

		if acc.Kind() == domain.KindProteome {
			logger.Warn("%s looks like a proteome accession; map it with 'proteome resolve' first", acc)
		}

		i := i // per-iteration copy (go1.21 loop-variable semantics)
		eg.Go(func() error {
			finish(i,g.processAccession(ctx, acc, req.DestDir))
			return nil
		})
	}
	_ = eg.Wait()

	logger.Info("Run %s: %d succeeded, %d empty, %d skipped, %d failed", summary.RunID,
		summary.Count(domain.OutcomeSucceeded), summary.Count(domain.OutcomeEmpty),
		summary.Count(domain.OutcomeSkipped), summary.Count(domain.OutcomeFailed))
	return summary, nil
}

// processAccession creates the accession's directory, expands it and
// downloads every entry. Errors are folded into the returned outcome.
func (g *GenomeDownloader) processAccession(ctx context.Context, acc domain.Accession, destDir string) domain.FetchOutcome {
	key := acc.Unversioned()
	outcome := domain.FetchOutcome{
		Accession: acc,
		Directory: filepath.Join(destDir, key.String()),
		StartedAt: time.Now(),
	}

	if err := ensureDir(outcome.Directory); err != nil {
		return failOutcome(outcome, err)
	}

	logger.Debug("Expanding %s", key)
	exp, err := g.Expand(ctx, key)
	if err != nil {
		return failOutcome(outcome, err)
	}

	return g.downloadEntries(ctx, outcome, exp)
}

// FetchGenome downloads the assembly descriptor into the accession's
// directory, expands it from the local copy and downloads every entry.
// The descriptor file is removed before returning in every case.
func (g *GenomeDownloader) FetchGenome(ctx context.Context, assembly domain.Accession, destDir string) domain.FetchOutcome {
	key := assembly.Unversioned()
	outcome := domain.FetchOutcome{
		RunID:     uuid.NewString(),
		Accession: assembly,
		Directory: filepath.Join(destDir, key.String()),
		StartedAt: time.Now(),
	}
	defer func() { g.record(ctx, &outcome) }()

	if err := ensureDir(outcome.Directory); err != nil {
		outcome = failOutcome(outcome, err)
		return outcome
	}

	descPath := filepath.Join(outcome.Directory, domain.DescriptorFileName(key))
	defer func() {
		if err := os.Remove(descPath); err != nil && !os.IsNotExist(err) {
			logger.Warn("Remove descriptor %s: %v", descPath, err)
		}
	}()

	if _, err := g.fetcher.Download(ctx, g.catalog.DescriptorURL(key), descPath); err != nil {
		outcome = failOutcome(outcome, fmt.Errorf("assembly descriptor for %s: %w", key, err))
		return outcome
	}

	desc, err := g.catalog.DecodeDescriptorFile(descPath)
	if err != nil {
		outcome = failOutcome(outcome, err)
		return outcome
	}

	exp, err := g.expandDescriptor(ctx, key, desc)
	if err != nil {
		outcome = failOutcome(outcome, err)
		return outcome
	}

	outcome = g.downloadEntries(ctx, outcome, exp)
	return outcome
}

// downloadEntries fetches every entry of exp as compressed FASTA.
// A failed entry does not stop the remaining ones.
func (g *GenomeDownloader) downloadEntries(ctx context.Context, outcome domain.FetchOutcome, exp *domain.Expansion) domain.FetchOutcome {
	outcome.Strategy = exp.Strategy
	outcome.Entries = len(exp.Entries)

	if exp.IsEmpty() {
		logger.Info("%s resolved with nothing to download", outcome.Accession)
		outcome.Status = domain.OutcomeEmpty
		outcome.EndedAt = time.Now()
		return outcome
	}

	var firstErr error
	for _, entry := range exp.Entries {
		path := filepath.Join(outcome.Directory, domain.EntryFileName(entry, domain.FormatFASTA))
		if _, err := g.fetcher.Download(ctx, g.catalog.EntryURL(entry, domain.FormatFASTA), path); err != nil {
			logger.Error("%s: entry %s: %v", outcome.Accession, entry, err)
			outcome.FailedEntries = append(outcome.FailedEntries, entry)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		outcome.Downloaded++
	}

	outcome.EndedAt = time.Now()
	if firstErr != nil {
		outcome.Status = domain.OutcomeFailed
		outcome.Error = fmt.Sprintf("%d of %d entries failed: %v", len(outcome.FailedEntries), outcome.Entries, firstErr)
		return outcome
	}

	logger.Info("%s: downloaded %d entries (%s)", outcome.Accession, outcome.Downloaded, outcome.Strategy)
	outcome.Status = domain.OutcomeSucceeded
	return outcome
}

// FetchEntry downloads a single sequence entry into dir.
func (g *GenomeDownloader) FetchEntry(
	ctx context.Context,
	entry domain.Accession,
	format domain.SequenceFormat,
	dir string,
) (string, error) {
	if !format.IsValid() {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
	if err := ensureDir(dir); err != nil {
		return "", err
	}

	path := filepath.Join(dir, domain.EntryFileName(entry, format))
	if _, err := g.fetcher.Download(ctx, g.catalog.EntryURL(entry, format), path); err != nil {
		return "", fmt.Errorf("entry %s: %w", entry, err)
	}
	return path, nil
}

// History returns up to limit recorded outcomes, most recent first.
func (g *GenomeDownloader) History(ctx context.Context, limit int) ([]domain.FetchOutcome, error) {
	if g.outcomes == nil {
		return nil, nil
	}
	return g.outcomes.ListRecent(ctx, limit)
}

func (g *GenomeDownloader) record(ctx context.Context, outcome *domain.FetchOutcome) {
	if g.outcomes == nil {
		return
	}
	if err := g.outcomes.Record(ctx, outcome); err != nil {
		logger.Warn("Record outcome for %s: %v", outcome.Accession, err)
	}
}

// ensureDir creates dir and its parents. An existing directory is not an error.
func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &domain.FilesystemError{Op: "mkdir", Path: dir, Err: err}
	}
	return nil
}

func failOutcome(outcome domain.FetchOutcome, err error) domain.FetchOutcome {
	logger.Error("%s: %v", outcome.Accession, err)
	outcome.Status = domain.OutcomeFailed
	outcome.Error = err.Error()
	outcome.EndedAt = time.Now()
	return outcome
}
