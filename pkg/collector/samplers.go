package collector

import (
	"context"
	"database/sql"
	"time"

	"github.com/oraguide/oraguide/pkg/errors"
	"github.com/oraguide/oraguide/pkg/metric"
	"github.com/oraguide/oraguide/pkg/snapshot"
)

const (
	// Trailing-hour switch count from the log history. Each sample is
	// already denominated per hour.
	switchRateQuery = `
		SELECT COUNT(*) FROM v$log_history
		WHERE first_time > SYSDATE - 1/24`

	// Trailing-hour archived volume in GB.
	archiveRateQuery = `
		SELECT NVL(SUM(blocks * block_size), 0) / 1073741824
		FROM v$archived_log
		WHERE first_time > SYSDATE - 1/24`

	// Age in minutes of the oldest open transaction, and the open count.
	transactionQuery = `
		SELECT
			NVL(MAX((SYSDATE - TO_DATE(start_time, 'MM/DD/YY HH24:MI:SS')) * 1440), 0),
			COUNT(*)
		FROM v$transaction`

	// Hours of history still on disk, and the space it occupies.
	archiveWindowQuery = `
		SELECT
			NVL((MAX(first_time) - MIN(first_time)) * 24, 0),
			NVL(SUM(blocks * block_size), 0) / 1073741824
		FROM v$archived_log
		WHERE deleted = 'NO'`
)

// switchRateSampler reads the hourly log switch rate.
type switchRateSampler struct {
	db *sql.DB
}

func (s *switchRateSampler) Name() string { return "switch-rate" }

func (s *switchRateSampler) Sample(ctx context.Context) ([]snapshot.Sample, error) {
	var switches float64
	if err := s.db.QueryRowContext(ctx, switchRateQuery).Scan(&switches); err != nil {
		return nil, errors.Wrap(errors.ErrCodeQuery, "failed to sample log switch rate", err)
	}
	return []snapshot.Sample{
		{Name: metric.NameSwitchRate, Value: switches, At: time.Now().UTC()},
	}, nil
}

// archiveRateSampler reads the hourly archived redo volume.
type archiveRateSampler struct {
	db *sql.DB
}

func (s *archiveRateSampler) Name() string { return "archive-rate" }

func (s *archiveRateSampler) Sample(ctx context.Context) ([]snapshot.Sample, error) {
	var gbPerHour float64
	if err := s.db.QueryRowContext(ctx, archiveRateQuery).Scan(&gbPerHour); err != nil {
		return nil, errors.Wrap(errors.ErrCodeQuery, "failed to sample archive rate", err)
	}
	return []snapshot.Sample{
		{Name: metric.NameArchiveRate, Value: gbPerHour, At: time.Now().UTC()},
	}, nil
}

// transactionSampler reads the oldest open transaction age and the
// number of open transactions in one query.
type transactionSampler struct {
	db *sql.DB
}

func (s *transactionSampler) Name() string { return "transactions" }

func (s *transactionSampler) Sample(ctx context.Context) ([]snapshot.Sample, error) {
	var oldestMinutes float64
	var activeCount float64
	if err := s.db.QueryRowContext(ctx, transactionQuery).Scan(&oldestMinutes, &activeCount); err != nil {
		return nil, errors.Wrap(errors.ErrCodeQuery, "failed to sample open transactions", err)
	}
	now := time.Now().UTC()
	return []snapshot.Sample{
		{Name: metric.NameOldestTxnAge, Value: oldestMinutes, At: now},
		{Name: metric.NameActiveTxnCount, Value: activeCount, At: now},
	}, nil
}

// archiveWindowSampler reads how many hours of archived logs remain on
// disk and how much space they use.
type archiveWindowSampler struct {
	db *sql.DB
}

func (s *archiveWindowSampler) Name() string { return "archive-window" }

func (s *archiveWindowSampler) Sample(ctx context.Context) ([]snapshot.Sample, error) {
	var windowHours float64
	var diskUsedGb float64
	if err := s.db.QueryRowContext(ctx, archiveWindowQuery).Scan(&windowHours, &diskUsedGb); err != nil {
		return nil, errors.Wrap(errors.ErrCodeQuery, "failed to sample archive window", err)
	}
	now := time.Now().UTC()
	return []snapshot.Sample{
		{Name: metric.NameArchiveWindow, Value: windowHours, At: now},
		{Name: metric.NameArchiveDiskUsed, Value: diskUsedGb, At: now},
	}, nil
}
