package services

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rfam/rfamops/internal/core/domain"
	"github.com/rfam/rfamops/internal/core/ports/driven"
	"github.com/rfam/rfamops/internal/core/ports/driving"
	"github.com/rfam/rfamops/internal/logger"
)

// Ensure FamilyExporter implements the interface.
var _ driving.ExportService = (*FamilyExporter)(nil)

// AllFamiliesLog is the skip log name used when exporting every family.
const AllFamiliesLog = "missing_seqs.log"

// FamilyExporter writes significant family regions as gzipped FASTA files.
// Subsequences are cut from a sequence database by the extractor; records
// that are empty or contain invalid characters are skipped and logged.
type FamilyExporter struct {
	regions   driven.RegionStore
	extractor driven.SequenceExtractor
	sinks     driven.FastaSinkFactory
}

// NewFamilyExporter creates an exporter.
func NewFamilyExporter(
	regions driven.RegionStore,
	extractor driven.SequenceExtractor,
	sinks driven.FastaSinkFactory,
) *FamilyExporter {
	return &FamilyExporter{
		regions:   regions,
		extractor: extractor,
		sinks:     sinks,
	}
}

// ExportFamily writes <outDir>/<family>.fa.gz and logs skipped records to
// <outDir>/<family>.log.
func (e *FamilyExporter) ExportFamily(ctx context.Context, seqFile, family, outDir string) (*domain.ExportReport, error) {
	family = strings.TrimSpace(family)
	if family == "" {
		return nil, fmt.Errorf("%w: family accession required", domain.ErrInvalidInput)
	}
	if err := ensureDir(outDir); err != nil {
		return nil, err
	}

	regions, err := e.regions.SignificantRegions(ctx, family)
	if err != nil {
		return nil, fmt.Errorf("regions for %s: %w", family, err)
	}

	skips, err := openSkipLog(filepath.Join(outDir, family+".log"))
	if err != nil {
		return nil, err
	}

	report, err := e.exportRegions(ctx, seqFile, family, outDir, regions, skips)
	if cerr := skips.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, err
	}
	return report, nil
}

// ExportAll writes one file per family with significant regions. Skipped
// records from every family share <outDir>/missing_seqs.log.
func (e *FamilyExporter) ExportAll(ctx context.Context, seqFile, outDir string) ([]domain.ExportReport, error) {
	if err := ensureDir(outDir); err != nil {
		return nil, err
	}

	regions, err := e.regions.SignificantRegions(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("regions: %w", err)
	}

	skips, err := openSkipLog(filepath.Join(outDir, AllFamiliesLog))
	if err != nil {
		return nil, err
	}

	var reports []domain.ExportReport
	for start := 0; start < len(regions); {
		end := start + 1
		for end < len(regions) && regions[end].Family == regions[start].Family {
			end++
		}

		report, ferr := e.exportRegions(ctx, seqFile, regions[start].Family, outDir, regions[start:end], skips)
		if ferr != nil {
			err = ferr
			break
		}
		reports = append(reports, *report)
		start = end
	}

	if cerr := skips.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return reports, err
	}
	logger.Info("Exported %d families", len(reports))
	return reports, nil
}

// exportRegions writes regions of one family to its own FASTA file.
// An extraction failure skips the region; a write failure aborts the family.
func (e *FamilyExporter) exportRegions(
	ctx context.Context,
	seqFile, family, outDir string,
	regions []domain.Region,
	skips *skipLog,
) (*domain.ExportReport, error) {
	report := &domain.ExportReport{
		Family: family,
		Path:   filepath.Join(outDir, family+domain.FormatFASTA.Extension()),
	}

	sink, err := e.sinks.Create(report.Path)
	if err != nil {
		return nil, err
	}

	for _, region := range regions {
		if err := ctx.Err(); err != nil {
			_ = sink.Close()
			return nil, err
		}

		id := region.RecordID()
		raw, err := e.extractor.Extract(ctx, region.Range(), seqFile)
		if err != nil {
			if errors.Is(err, domain.ErrExtractorUnavailable) {
				_ = sink.Close()
				return nil, err
			}
			skips.add(id, "extract: "+err.Error())
			report.Skipped = append(report.Skipped, id)
			continue
		}

		seq := domain.SequenceFromFASTA(raw)
		if !domain.ValidSequence(seq) {
			reason := "invalid sequence"
			if seq == "" {
				reason = "empty sequence"
			}
			skips.add(id, reason)
			report.Skipped = append(report.Skipped, id)
			continue
		}

		rec := domain.SequenceRecord{ID: id, Description: region.Description, Sequence: seq}
		if err := sink.WriteRecord(rec); err != nil {
			_ = sink.Close()
			return nil, fmt.Errorf("write %s: %w", id, err)
		}
		report.Written++
	}

	if err := sink.Close(); err != nil {
		return nil, err
	}

	logger.Debug("%s: wrote %d records, skipped %d", family, report.Written, len(report.Skipped))
	return report, nil
}

// skipLog records regions that were not exported, one per line.
type skipLog struct {
	path string
	f    *os.File
	w    *bufio.Writer
}

func openSkipLog(path string) (*skipLog, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, &domain.FilesystemError{Op: "create", Path: path, Err: err}
	}
	return &skipLog{path: path, f: f, w: bufio.NewWriter(f)}, nil
}

func (l *skipLog) add(id, reason string) {
	logger.Warn("Skipped %s: %s", id, reason)
	fmt.Fprintf(l.w, "%s\t%s\n", id, reason)
}

func (l *skipLog) Close() error {
	if err := l.w.Flush(); err != nil {
		_ = l.f.Close()
		return &domain.FilesystemError{Op: "write", Path: l.path, Err: err}
	}
	if err := l.f.Close(); err != nil {
		return &domain.FilesystemError{Op: "close", Path: l.path, Err: err}
	}
	return nil
}
