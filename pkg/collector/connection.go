package collector

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	_ "github.com/godror/godror" // Oracle driver

	"github.com/oraguide/oraguide/pkg/defaults"
	"github.com/oraguide/oraguide/pkg/errors"
)

// Connect opens a pooled connection to the source database and verifies
// it with a ping. The caller owns the returned handle and must Close it.
func Connect(ctx context.Context, cfg *Config) (*sql.DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Oracle format: user/password@host:port/service_name
	var connString strings.Builder
	fmt.Fprintf(&connString, "%s/%s@%s:%d/%s",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Service)

	db, err := sql.Open("godror", connString.String())
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeConnection, "failed to open database connection", err,
			map[string]any{"host": cfg.Host, "service": cfg.Service})
	}

	// Diagnostic queries are lightweight and sequential, the pool stays small.
	db.SetMaxOpenConns(defaults.PoolMaxOpenConns)
	db.SetMaxIdleConns(defaults.PoolMaxIdleConns)
	db.SetConnMaxLifetime(defaults.PoolConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, defaults.QueryTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, errors.WrapWithContext(errors.ErrCodeConnection, "failed to ping database", err,
			map[string]any{"host": cfg.Host, "service": cfg.Service})
	}

	slog.Debug("connected to source database",
		slog.String("host", cfg.Host),
		slog.String("service", cfg.Service),
		slog.String("schema", cfg.Schema))

	return db, nil
}
