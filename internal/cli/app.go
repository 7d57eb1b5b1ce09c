// Package cli wires the pipeline together: load a batch, generate the rows,
// rehearse them in staging, write the artifact, then optionally apply to the
// production database and archive the artifact.
package cli

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/dmitrijs2005/forminator-backfill/internal/config"
	"github.com/dmitrijs2005/forminator-backfill/internal/forminator"
	"github.com/dmitrijs2005/forminator-backfill/internal/logging"
)

type App struct {
	config    *config.Config
	log       logging.Logger
	generator *forminator.Generator

	// prompt I/O, swappable in tests
	reader *bufio.Reader
	out    io.Writer
}

// NewApp validates the configuration and builds the pipeline. Remote targets
// must be fully specified up front; finding out mid-run that the bucket name
// is missing would leave a half-finished backfill.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	if c.InputPath == "" {
		return nil, errors.New("input batch file is required (-i)")
	}
	if c.Apply && c.DatabaseDSN == "" {
		return nil, errors.New("apply requested but no database DSN given (-d)")
	}
	if c.Upload && c.S3Bucket == "" {
		return nil, errors.New("upload requested but no bucket given (-b)")
	}

	return &App{
		config:    c,
		log:       log,
		generator: forminator.New(),
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}
