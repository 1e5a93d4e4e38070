package collector

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/oraguide/oraguide/pkg/errors"
	"github.com/oraguide/oraguide/pkg/metric"
	"github.com/oraguide/oraguide/pkg/snapshot"
)

// sampleTableName is the working table holding collected samples between
// the collect and report phases.
const sampleTableName = "ORAGUIDE_SAMPLES"

const (
	sampleTableExistsQuery = `
		SELECT COUNT(*) FROM user_tables WHERE table_name = :name`

	createSampleTableStmt = `
		CREATE TABLE ` + sampleTableName + ` (
			metric_name  VARCHAR2(64) NOT NULL,
			metric_value BINARY_DOUBLE NOT NULL,
			sampled_at   TIMESTAMP NOT NULL
		)`

	insertSampleStmt = `
		INSERT INTO ` + sampleTableName + ` (metric_name, metric_value, sampled_at)
		VALUES (:name, :value, :at)`

	loadSamplesQuery = `
		SELECT metric_name, metric_value, sampled_at
		FROM ` + sampleTableName + `
		ORDER BY sampled_at`

	dropSampleTableStmt = `DROP TABLE ` + sampleTableName
)

// Store persists samples in a working table in the diagnostic user's
// schema so a collection can be resumed or reported on later.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store over an open database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// EnsureTable creates the sample table if it does not already exist.
func (s *Store) EnsureTable(ctx context.Context) error {
	exists, err := s.tableExists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if _, err := s.db.ExecContext(ctx, createSampleTableStmt); err != nil {
		return errors.Wrap(errors.ErrCodeQuery, "failed to create sample table", err)
	}
	slog.Info("created sample table", slog.String("table", sampleTableName))
	return nil
}

// Save appends samples to the working table.
func (s *Store) Save(ctx context.Context, samples []snapshot.Sample) error {
	if len(samples) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(errors.ErrCodeQuery, "failed to begin sample insert", err)
	}
	for _, sample := range samples {
		if _, err := tx.ExecContext(ctx, insertSampleStmt,
			sql.Named("name", string(sample.Name)),
			sql.Named("value", sample.Value),
			sql.Named("at", sample.At)); err != nil {
			tx.Rollback()
			return errors.WrapWithContext(errors.ErrCodeQuery, "failed to insert sample", err,
				map[string]any{"metric": string(sample.Name)})
		}
	}
	if err := tx.Commit(); err != nil {
		return errors.Wrap(errors.ErrCodeQuery, "failed to commit samples", err)
	}
	return nil
}

// Load reads back all persisted samples in collection order. Rows with
// unknown metric names are skipped so schema drift does not poison a
// report.
func (s *Store) Load(ctx context.Context) ([]snapshot.Sample, error) {
	exists, err := s.tableExists(ctx)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.NewWithContext(errors.ErrCodeNotFound, "no collected samples found",
			map[string]any{"table": sampleTableName})
	}

	rows, err := s.db.QueryContext(ctx, loadSamplesQuery)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQuery, "failed to load samples", err)
	}
	defer rows.Close()

	var samples []snapshot.Sample
	skipped := 0
	for rows.Next() {
		var name string
		var sample snapshot.Sample
		if err := rows.Scan(&name, &sample.Value, &sample.At); err != nil {
			return nil, errors.Wrap(errors.ErrCodeQuery, "failed to scan sample row", err)
		}
		parsed, ok := metric.ParseName(name)
		if !ok {
			skipped++
			continue
		}
		sample.Name = parsed
		samples = append(samples, sample)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeQuery, "failed to read sample rows", err)
	}
	if skipped > 0 {
		slog.Warn("skipped samples with unknown metric names", slog.Int("count", skipped))
	}
	return samples, nil
}

// Drop removes the working table. Missing table is not an error so
// cleanup is safe to re-run.
func (s *Store) Drop(ctx context.Context) error {
	exists, err := s.tableExists(ctx)
	if err != nil {
		return err
	}
	if !exists {
		slog.Debug("sample table already absent", slog.String("table", sampleTableName))
		return nil
	}
	if _, err := s.db.ExecContext(ctx, dropSampleTableStmt); err != nil {
		return errors.Wrap(errors.ErrCodeQuery, "failed to drop sample table", err)
	}
	slog.Info("dropped sample table", slog.String("table", sampleTableName))
	return nil
}

func (s *Store) tableExists(ctx context.Context) (bool, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, sampleTableExistsQuery,
		sql.Named("name", sampleTableName)).Scan(&count); err != nil {
		return false, errors.Wrap(errors.ErrCodeQuery, "failed to check sample table", err)
	}
	return count > 0, nil
}
