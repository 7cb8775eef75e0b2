package rfamdb

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "modernc.org/sqlite"             // SQLite driver

	"github.com/rfam/rfamops/internal/core/domain"
	"github.com/rfam/rfamops/internal/core/ports/driven"
)

// Ensure RegionStore implements the interface.
var _ driven.RegionStore = (*RegionStore)(nil)

const regionQuery = `
	SELECT fr.rfam_acc, fr.rfamseq_acc, fr.seq_start, fr.seq_end, rf.description
	FROM full_region fr, rfamseq rf
	WHERE fr.rfamseq_acc = rf.rfamseq_acc
	AND fr.is_significant = 1`

// RegionStore queries significant regions over database/sql.
type RegionStore struct {
	db *sql.DB
}

// Open connects to the region database. driver is "mysql" or "sqlite".
func Open(ctx context.Context, driver, dsn string) (*RegionStore, error) {
	switch driver {
	case "mysql", "sqlite":
	default:
		return nil, fmt.Errorf("%w: database driver %q", domain.ErrInvalidInput, driver)
	}
	if dsn == "" {
		return nil, fmt.Errorf("%w: database DSN not configured", domain.ErrInvalidInput)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to %s database: %w", driver, err)
	}
	return NewRegionStore(db), nil
}

// NewRegionStore wraps an open database handle.
func NewRegionStore(db *sql.DB) *RegionStore {
	return &RegionStore{db: db}
}

// SignificantRegions returns significant regions joined with sequence
// descriptions. An empty family returns every family ordered by accession.
func (s *RegionStore) SignificantRegions(ctx context.Context, family string) ([]domain.Region, error) {
	query := regionQuery
	var args []any
	if family != "" {
		query += "\n\tAND fr.rfam_acc = ?"
		args = append(args, family)
	}
	query += "\n\tORDER BY fr.rfam_acc"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying regions: %w", err)
	}
	defer rows.Close()

	var regions []domain.Region //nolint:prealloc // size unknown from query
	for rows.Next() {
		var (
			r    domain.Region
			desc sql.NullString
		)
		if err := rows.Scan(&r.Family, &r.SequenceAccession, &r.Start, &r.End, &desc); err != nil {
			return nil, fmt.Errorf("scanning region: %w", err)
		}
		r.Description = desc.String
		regions = append(regions, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating regions: %w", err)
	}
	return regions, nil
}

// Close closes the database connection.
func (s *RegionStore) Close() error {
	return s.db.Close()
}
