// Package applier executes rendered INSERT statements against the production
// MySQL database, all inside one transaction. Either every row of the
// backfill lands or none do.
package applier

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/dmitrijs2005/forminator-backfill/internal/dbx"
	"github.com/dmitrijs2005/forminator-backfill/internal/logging"
)

// Applier owns the production database handle.
type Applier struct {
	db  *sql.DB
	log logging.Logger
}

// Open connects to the MySQL database at dsn. The connection is not probed
// here; call Ping before relying on it.
func Open(dsn string, log logging.Logger) (*Applier, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	return &Applier{db: db, log: log}, nil
}

// NewWithDB wraps an existing handle, mainly for tests.
func NewWithDB(db *sql.DB, log logging.Logger) *Applier {
	return &Applier{db: db, log: log}
}

func (a *Applier) Close() error {
	return a.db.Close()
}

// Ping verifies the connection before any statement is sent.
func (a *Applier) Ping(ctx context.Context) error {
	if err := a.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping mysql: %w", err)
	}
	return nil
}

// Apply executes the statements in one transaction and returns how many were
// run. Blank separator lines are skipped. Each INSERT must affect exactly one
// row; anything else aborts and rolls the transaction back.
func (a *Applier) Apply(ctx context.Context, statements []string) (int, error) {
	applied := 0
	err := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for i, stmt := range statements {
			if stmt == "" {
				continue
			}
			res, err := tx.ExecContext(ctx, stmt)
			if err != nil {
				return fmt.Errorf("statement %d: %w", i+1, err)
			}
			ra, err := res.RowsAffected()
			if err != nil {
				return fmt.Errorf("statement %d: rows affected: %w", i+1, err)
			}
			if ra != 1 {
				return fmt.Errorf("statement %d: wrong rows affected count: %d", i+1, ra)
			}
			applied++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	a.log.Info(ctx, "backfill applied", "statements", applied)
	return applied, nil
}

// WithPassword returns dsn with its password replaced. The prompted password
// never travels through config files or process listings this way.
func WithPassword(dsn, password string) (string, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("parse mysql dsn: %w", err)
	}
	cfg.Passwd = password
	return cfg.FormatDSN(), nil
}

// Describe names the target of dsn as addr/database for confirmation
// prompts, leaving credentials out.
func Describe(dsn string) (string, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("parse mysql dsn: %w", err)
	}
	return cfg.Addr + "/" + cfg.DBName, nil
}
