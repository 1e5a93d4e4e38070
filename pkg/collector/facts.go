package collector

import (
	"context"
	"database/sql"
	"log/slog"
	"strconv"
	"strings"

	"github.com/oraguide/oraguide/pkg/errors"
	"github.com/oraguide/oraguide/pkg/snapshot"
)

const (
	redoLogQuery = `SELECT COUNT(*), NVL(MIN(bytes), 0) / 1073741824 FROM v$log`

	lobColumnsQuery = `
		SELECT table_name, column_name, data_type
		FROM all_tab_columns
		WHERE owner = :owner
		  AND table_name LIKE :pattern
		  AND data_type IN ('CLOB', 'NCLOB', 'BLOB')
		ORDER BY table_name, column_name`

	capturedTableCountQuery = `
		SELECT COUNT(*) FROM all_tables
		WHERE owner = :owner AND table_name LIKE :pattern`

	schemaTableCountQuery = `
		SELECT COUNT(*) FROM all_tables WHERE owner = :owner`

	supplementalLogQuery = `SELECT supplemental_log_data_min FROM v$database`

	parameterQuery = `SELECT value FROM v$parameter WHERE name = :name`

	avgArchiveFileSizeQuery = `
		SELECT NVL(AVG(blocks * block_size), 0) / 1073741824
		FROM v$archived_log
		WHERE first_time > SYSDATE - 7`
)

// CollectFacts gathers the point-in-time configuration facts that do not
// need repeated sampling: redo log layout, LOB columns, table counts,
// supplemental logging, and relevant instance parameters.
func CollectFacts(ctx context.Context, db *sql.DB, cfg *Config) (snapshot.Facts, error) {
	facts := snapshot.Facts{
		SchemaName:   strings.ToUpper(strings.TrimSpace(cfg.Schema)),
		TablePattern: cfg.TablePattern,
	}
	owner := facts.SchemaName
	pattern := strings.ToUpper(cfg.tablePatternOrAll())

	var groups int
	var sizeGb float64
	if err := db.QueryRowContext(ctx, redoLogQuery).Scan(&groups, &sizeGb); err != nil {
		return facts, errors.Wrap(errors.ErrCodeQuery, "failed to query redo log configuration", err)
	}
	facts.RedoLogConfigured = groups > 0
	facts.RedoLogGroups = groups
	facts.RedoLogSizeGb = sizeGb

	lobs, err := queryLobColumns(ctx, db, owner, pattern)
	if err != nil {
		return facts, err
	}
	facts.LobColumns = lobs

	if err := db.QueryRowContext(ctx, capturedTableCountQuery,
		sql.Named("owner", owner), sql.Named("pattern", pattern)).Scan(&facts.CapturedTableCount); err != nil {
		return facts, errors.Wrap(errors.ErrCodeQuery, "failed to count captured tables", err)
	}
	if err := db.QueryRowContext(ctx, schemaTableCountQuery,
		sql.Named("owner", owner)).Scan(&facts.SchemaTableCount); err != nil {
		return facts, errors.Wrap(errors.ErrCodeQuery, "failed to count schema tables", err)
	}

	if err := db.QueryRowContext(ctx, supplementalLogQuery).Scan(&facts.SupplementalLogMin); err != nil {
		return facts, errors.Wrap(errors.ErrCodeQuery, "failed to query supplemental logging status", err)
	}

	lagTarget, err := queryParameter(ctx, db, "archive_lag_target")
	if err != nil {
		return facts, err
	}
	facts.ForceSwitchSeconds = parseIntOrZero(lagTarget)

	maxStringSize, err := queryParameter(ctx, db, "max_string_size")
	if err != nil {
		return facts, err
	}
	facts.MaxStringSize = maxStringSize

	slog.Debug("collected static facts",
		slog.Int("redoLogGroups", facts.RedoLogGroups),
		slog.Int("lobColumns", len(facts.LobColumns)),
		slog.Int("capturedTables", facts.CapturedTableCount),
		slog.Int("schemaTables", facts.SchemaTableCount),
		slog.String("supplementalLog", facts.SupplementalLogMin))

	return facts, nil
}

// CollectAvgArchiveFileSizeGb measures the average archived log file size
// over the trailing week, used for mining time estimates.
func CollectAvgArchiveFileSizeGb(ctx context.Context, db *sql.DB) (float64, error) {
	var avgGb float64
	if err := db.QueryRowContext(ctx, avgArchiveFileSizeQuery).Scan(&avgGb); err != nil {
		return 0, errors.Wrap(errors.ErrCodeQuery, "failed to query average archive file size", err)
	}
	return avgGb, nil
}

func queryLobColumns(ctx context.Context, db *sql.DB, owner, pattern string) ([]snapshot.LobColumn, error) {
	rows, err := db.QueryContext(ctx, lobColumnsQuery,
		sql.Named("owner", owner), sql.Named("pattern", pattern))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQuery, "failed to query LOB columns", err)
	}
	defer rows.Close()

	var lobs []snapshot.LobColumn
	for rows.Next() {
		var lob snapshot.LobColumn
		if err := rows.Scan(&lob.Table, &lob.Column, &lob.DataType); err != nil {
			return nil, errors.Wrap(errors.ErrCodeQuery, "failed to scan LOB column row", err)
		}
		lobs = append(lobs, lob)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeQuery, "failed to read LOB column rows", err)
	}
	return lobs, nil
}

func queryParameter(ctx context.Context, db *sql.DB, name string) (string, error) {
	var value sql.NullString
	err := db.QueryRowContext(ctx, parameterQuery, sql.Named("name", name)).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", errors.WrapWithContext(errors.ErrCodeQuery, "failed to query instance parameter", err,
			map[string]any{"parameter": name})
	}
	return value.String, nil
}

func parseIntOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
