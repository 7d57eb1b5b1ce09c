// Package config loads runtime configuration for the backfill tool.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-i string   input batch file (.json, .yaml or .yml)
//	-o string   output artifact path
//	-d string   destination MySQL DSN (user:pass@tcp(host:port)/db)
//	-s string   staging database path (empty = in-memory)
//	-a          apply the statements to the destination database
//	-v          rehearse the rows in the staging database first
//	-u          upload the artifact to object storage
//	-y          assume yes, skip the confirmation prompt
//	-k          prompt for the database password instead of taking it from the DSN
//	-x          debug logging
//	-t int      apply timeout, seconds
//	-b string   S3 bucket
//	-g string   S3 region
//	-e string   S3 base endpoint (empty for AWS)
//	-l string   S3 access key
//	-p string   S3 secret key
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "5m" or integer nanoseconds:
//
//	{
//	  "input_path": "batch.yaml",
//	  "output_path": "backfill.sql",
//	  "database_dsn": "wp@tcp(db:3306)/wordpress",
//	  "apply": true,
//	  "apply_timeout": "5m"
//	}
//
// Fields absent from the JSON file keep their earlier values; the file does
// not have to be complete.
package config
