package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/forminator-backfill/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-i string   input batch file
//	-o string   output artifact path
//	-d string   destination MySQL DSN
//	-s string   staging database path
//	-a          apply to the destination database
//	-v          rehearse in staging first
//	-u          upload the artifact
//	-y          skip the confirmation prompt
//	-k          prompt for the database password
//	-x          debug logging
//	-t int      apply timeout, seconds
//	-b string   S3 bucket
//	-g string   S3 region
//	-e string   S3 base endpoint
//	-l string   S3 access key
//	-p string   S3 secret key
//
// The function filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with the -c/-config preflight.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-i", "-o", "-d", "-s", "-a", "-v", "-u", "-y", "-k", "-x", "-t", "-b", "-g", "-e", "-l", "-p",
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.InputPath, "i", config.InputPath, "input batch file (.json/.yaml)")
	fs.StringVar(&config.OutputPath, "o", config.OutputPath, "output artifact path")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "destination MySQL DSN")
	fs.StringVar(&config.StagingPath, "s", config.StagingPath, "staging database path (empty = in-memory)")

	fs.BoolVar(&config.Apply, "a", config.Apply, "apply statements to the destination database")
	fs.BoolVar(&config.Verify, "v", config.Verify, "rehearse rows in the staging database")
	fs.BoolVar(&config.Upload, "u", config.Upload, "upload the artifact to object storage")
	fs.BoolVar(&config.Yes, "y", config.Yes, "assume yes, skip the confirmation prompt")
	fs.BoolVar(&config.AskPassword, "k", config.AskPassword, "prompt for the database password")
	fs.BoolVar(&config.Debug, "x", config.Debug, "debug logging")

	applyTimeout := fs.Int("t", int(config.ApplyTimeout.Seconds()), "apply timeout (in seconds)")

	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.S3AccessKey, "l", config.S3AccessKey, "S3 access key")
	fs.StringVar(&config.S3SecretKey, "p", config.S3SecretKey, "S3 secret key")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.ApplyTimeout = time.Duration(*applyTimeout) * time.Second
}
