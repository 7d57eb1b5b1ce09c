// Package staging rehearses a backfill against a local SQLite copy of the
// plugin's meta table before anything touches production. Rows are inserted
// with bound parameters rather than the rendered MySQL text, since SQLite
// does not understand MySQL's backslash escapes; the rendered statements are
// what ships, the staging copy is what gets inspected.
package staging

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/forminator-backfill/internal/dbx"
	"github.com/dmitrijs2005/forminator-backfill/internal/forminator"
	"github.com/dmitrijs2005/forminator-backfill/internal/staging/migrations"
	"github.com/dmitrijs2005/forminator-backfill/internal/timex"
)

// MemoryDSN is the default staging target: a shared in-memory database that
// lives for the duration of the run.
const MemoryDSN = "file:staging?mode=memory&cache=shared"

// Store is a SQLite-backed rehearsal copy of the entry meta table.
type Store struct {
	db *sql.DB
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	return gooseUpContext(ctx, db, ".")
}

// Open connects to the SQLite database at dsn and migrates it to the current
// schema. An empty dsn selects the in-memory default.
func Open(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		dsn = MemoryDSN
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open staging db: %w", err)
	}
	// cache=shared in-memory databases vanish once the last conn closes
	db.SetMaxIdleConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate staging db: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// InsertRows stores the generated rows in one transaction. The meta id
// primary key makes a colliding id range fail the whole batch, which is
// exactly the collision the rehearsal exists to catch.
func (s *Store) InsertRows(ctx context.Context, rows []forminator.Row) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO wp_frmt_form_entry_meta
				(meta_id, entry_id, meta_key, meta_value, date_created, date_updated)
			VALUES (?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("prepare insert: %w", err)
		}
		defer stmt.Close()

		for _, r := range rows {
			_, err := stmt.ExecContext(ctx,
				r.MetaID, r.EntryID, r.Key, r.Value,
				timex.FormatDateTime(r.Created), forminator.ZeroDate)
			if err != nil {
				return fmt.Errorf("insert meta %d (entry %d, %s): %w", r.MetaID, r.EntryID, r.Key, err)
			}
		}
		return nil
	})
}
