package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/forminator-backfill/internal/applier"
	"github.com/dmitrijs2005/forminator-backfill/internal/common"
	"github.com/dmitrijs2005/forminator-backfill/internal/filex"
	"github.com/dmitrijs2005/forminator-backfill/internal/forminator"
	"github.com/dmitrijs2005/forminator-backfill/internal/logging"
	"github.com/dmitrijs2005/forminator-backfill/internal/s3x"
	"github.com/dmitrijs2005/forminator-backfill/internal/shared"
	"github.com/dmitrijs2005/forminator-backfill/internal/staging"
)

// Run executes the pipeline: load, generate, rehearse, write the artifact,
// then apply and upload when asked to. The first failing stage stops the run;
// nothing later is attempted.
func (a *App) Run(ctx context.Context) error {
	log := a.log.With("run_id", uuid.New().String())

	entries, err := forminator.LoadFile(a.config.InputPath)
	if err != nil {
		return err
	}
	log.Info(ctx, "batch loaded", "path", a.config.InputPath, "entries", len(entries))

	groups, err := a.generator.RowGroups(entries)
	if err != nil {
		return err
	}
	total := 0
	for _, g := range groups {
		total += len(g)
	}
	log.Debug(ctx, "rows generated", "rows", total)

	if a.config.Verify {
		if err := a.rehearse(ctx, log, groups); err != nil {
			return err
		}
	}

	artifact := BuildArtifact(groups, time.Now())
	if err := a.writeArtifact(ctx, log, artifact); err != nil {
		return err
	}

	if a.config.Apply {
		if err := a.apply(ctx, log, forminator.RenderStatements(groups), total); err != nil {
			return err
		}
	}

	if a.config.Upload {
		if err := a.upload(ctx, log, []byte(artifact)); err != nil {
			return err
		}
	}

	return nil
}

// rehearse inserts every generated row into the staging copy and fails the
// run on any finding. The staging file survives the run when a path was
// given, so the operator can poke at it with sqlite3.
func (a *App) rehearse(ctx context.Context, log logging.Logger, groups [][]forminator.Row) error {
	store, err := staging.Open(ctx, a.config.StagingPath)
	if err != nil {
		return err
	}
	defer store.Close()

	var flat []forminator.Row
	for _, g := range groups {
		flat = append(flat, g...)
	}

	if err := store.InsertRows(ctx, flat); err != nil {
		return fmt.Errorf("staging rehearsal: %w", err)
	}

	report, err := store.Verify(ctx)
	if err != nil {
		return fmt.Errorf("staging rehearsal: %w", err)
	}
	if !report.OK() {
		return fmt.Errorf("staging rehearsal: %s", report)
	}

	log.Info(ctx, "rehearsal passed", "rows", report.Rows, "entries", report.Entries)
	return nil
}

func (a *App) writeArtifact(ctx context.Context, log logging.Logger, artifact string) error {
	if err := filex.EnsureParentDir(a.config.OutputPath); err != nil {
		return err
	}
	if err := os.WriteFile(a.config.OutputPath, []byte(artifact), 0o660); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}
	log.Info(ctx, "artifact written", "path", a.config.OutputPath, "bytes", len(artifact))
	return nil
}

// apply runs the statements against the production database. The operator
// confirms first (unless -y), and the password prompt replaces whatever the
// DSN carried.
func (a *App) apply(ctx context.Context, log logging.Logger, statements []string, total int) error {
	if !a.config.Yes {
		target, err := applier.Describe(a.config.DatabaseDSN)
		if err != nil {
			return err
		}
		ok, err := Confirm(a.reader, fmt.Sprintf("Apply %d statements to %s?", total, target), a.out)
		if err != nil {
			return err
		}
		if !ok {
			log.Warn(ctx, "apply declined by operator")
			return common.ErrAborted
		}
	}

	dsn := a.config.DatabaseDSN
	if a.config.AskPassword {
		pw, err := GetPassword(a.out)
		if err != nil {
			return err
		}
		dsn, err = applier.WithPassword(dsn, string(pw))
		shared.WipeByteArray(pw)
		if err != nil {
			return err
		}
	}

	ap, err := applier.Open(dsn, log)
	if err != nil {
		return err
	}
	defer ap.Close()

	if a.config.ApplyTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.ApplyTimeout)
		defer cancel()
	}

	if err := ap.Ping(ctx); err != nil {
		return err
	}

	_, err = ap.Apply(ctx, statements)
	return err
}

func (a *App) upload(ctx context.Context, log logging.Logger, artifact []byte) error {
	uploader := s3x.NewUploader(s3x.Options{
		Bucket:       a.config.S3Bucket,
		Region:       a.config.S3Region,
		BaseEndpoint: a.config.S3BaseEndpoint,
		AccessKey:    a.config.S3AccessKey,
		SecretKey:    a.config.S3SecretKey,
	}, log)

	if _, err := uploader.Upload(ctx, s3x.ArtifactKey(), artifact); err != nil {
		return fmt.Errorf("upload artifact: %w", err)
	}
	return nil
}
