package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/forminator-backfill/internal/buildinfo"
	"github.com/dmitrijs2005/forminator-backfill/internal/cli"
	"github.com/dmitrijs2005/forminator-backfill/internal/config"
	"github.com/dmitrijs2005/forminator-backfill/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.Debug)
	app, err := cli.NewApp(cfg, logger)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "run failed", "error", err)
		os.Exit(1)
	}

}
