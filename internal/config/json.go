package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/forminator-backfill/internal/flagx"
	"github.com/dmitrijs2005/forminator-backfill/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the timeout can be specified either as a string like
// "5m" or as integer nanoseconds.
type JsonConfig struct {
	InputPath   string `json:"input_path"`
	OutputPath  string `json:"output_path"`
	DatabaseDSN string `json:"database_dsn"`
	StagingPath string `json:"staging_path"`

	Apply       bool `json:"apply"`
	Verify      bool `json:"verify"`
	Upload      bool `json:"upload"`
	Yes         bool `json:"yes"`
	AskPassword bool `json:"ask_password"`
	Debug       bool `json:"debug"`

	ApplyTimeout timex.Duration `json:"apply_timeout"`

	S3Bucket       string `json:"s3_bucket"`
	S3Region       string `json:"s3_region"`
	S3BaseEndpoint string `json:"s3_base_endpoint"`
	S3AccessKey    string `json:"s3_access_key"`
	S3SecretKey    string `json:"s3_secret_key"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config.
// The DTO is prefilled from cfg before unmarshalling, so fields the file
// does not mention keep their current values. Panics on read or unmarshal
// errors; a broken config file should stop the run before anything happens.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	jc := JsonConfig{
		InputPath:      cfg.InputPath,
		OutputPath:     cfg.OutputPath,
		DatabaseDSN:    cfg.DatabaseDSN,
		StagingPath:    cfg.StagingPath,
		Apply:          cfg.Apply,
		Verify:         cfg.Verify,
		Upload:         cfg.Upload,
		Yes:            cfg.Yes,
		AskPassword:    cfg.AskPassword,
		Debug:          cfg.Debug,
		ApplyTimeout:   timex.Duration{Duration: cfg.ApplyTimeout},
		S3Bucket:       cfg.S3Bucket,
		S3Region:       cfg.S3Region,
		S3BaseEndpoint: cfg.S3BaseEndpoint,
		S3AccessKey:    cfg.S3AccessKey,
		S3SecretKey:    cfg.S3SecretKey,
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.InputPath = jc.InputPath
	cfg.OutputPath = jc.OutputPath
	cfg.DatabaseDSN = jc.DatabaseDSN
	cfg.StagingPath = jc.StagingPath
	cfg.Apply = jc.Apply
	cfg.Verify = jc.Verify
	cfg.Upload = jc.Upload
	cfg.Yes = jc.Yes
	cfg.AskPassword = jc.AskPassword
	cfg.Debug = jc.Debug
	cfg.ApplyTimeout = time.Duration(jc.ApplyTimeout.Duration)
	cfg.S3Bucket = jc.S3Bucket
	cfg.S3Region = jc.S3Region
	cfg.S3BaseEndpoint = jc.S3BaseEndpoint
	cfg.S3AccessKey = jc.S3AccessKey
	cfg.S3SecretKey = jc.S3SecretKey
}
