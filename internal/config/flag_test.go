package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "Test1 full pipeline run",
			args: []string{"cmd", "-i", "batch.yaml", "-o", "out/backfill.sql",
				"-d", "wp@tcp(db:3306)/wordpress", "-a", "-y", "-t", "120"},
			expectPanic: false,
			expected: &Config{
				InputPath:    "batch.yaml",
				OutputPath:   "out/backfill.sql",
				DatabaseDSN:  "wp@tcp(db:3306)/wordpress",
				Apply:        true,
				Yes:          true,
				ApplyTimeout: 120 * time.Second,
			},
		},
		{
			name:        "Test2 upload settings",
			args:        []string{"cmd", "-u", "-b", "backfills", "-g", "eu-west-1", "-e", "http://127.0.0.1:9000", "-l", "minioadmin", "-p", "minioadmin"},
			expectPanic: false,
			expected: &Config{
				Upload:         true,
				S3Bucket:       "backfills",
				S3Region:       "eu-west-1",
				S3BaseEndpoint: "http://127.0.0.1:9000",
				S3AccessKey:    "minioadmin",
				S3SecretKey:    "minioadmin",
			},
		},
		{
			name:        "Test3 verify can be switched off",
			args:        []string{"cmd", "-v=false", "-k", "-x"},
			expectPanic: false,
			expected:    &Config{Verify: false, AskPassword: true, Debug: true},
		},
		{
			name:        "Test4 incorrect timeout",
			args:        []string{"cmd", "-t", "abc"},
			expectPanic: true,
			expected:    &Config{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			origArgs := os.Args
			t.Cleanup(func() { os.Args = origArgs })
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
