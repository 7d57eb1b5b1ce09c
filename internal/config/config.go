package config

import "time"

// Config holds runtime settings for one backfill run.
//
// Fields:
//   - InputPath: batch file with the entries to backfill.
//   - OutputPath: where the rendered .sql artifact is written.
//   - DatabaseDSN: destination MySQL DSN (go-sql-driver format).
//   - StagingPath: SQLite path for the rehearsal copy; empty = in-memory.
//   - Apply / Verify / Upload / Yes / AskPassword: pipeline switches.
//   - ApplyTimeout: upper bound on the whole apply transaction.
//   - S3*: object storage settings for the artifact archive.
type Config struct {
	InputPath   string
	OutputPath  string
	DatabaseDSN string
	StagingPath string

	Apply       bool
	Verify      bool
	Upload      bool
	Yes         bool
	AskPassword bool
	Debug       bool

	ApplyTimeout time.Duration

	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
	S3AccessKey    string
	S3SecretKey    string
}

// LoadDefaults populates Config with safe defaults: rehearse, write the
// artifact next to the binary, touch nothing remote.
func (c *Config) LoadDefaults() {
	c.OutputPath = "backfill.sql"
	c.Verify = true
	c.ApplyTimeout = 5 * time.Minute
	c.S3Region = "us-east-1"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
