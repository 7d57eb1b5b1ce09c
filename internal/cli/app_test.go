package cli

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/forminator-backfill/internal/config"
	"github.com/dmitrijs2005/forminator-backfill/internal/logging"
)

func testLogger() logging.Logger {
	return logging.New(io.Discard, false)
}

func TestNewApp_RequiresInput(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()

	_, err := NewApp(cfg, testLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-i")
}

func TestNewApp_ApplyNeedsDSN(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.InputPath = "batch.json"
	cfg.Apply = true

	_, err := NewApp(cfg, testLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DSN")
}

func TestNewApp_UploadNeedsBucket(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.InputPath = "batch.json"
	cfg.Upload = true

	_, err := NewApp(cfg, testLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket")
}

func TestNewApp_OK(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.InputPath = "batch.json"

	app, err := NewApp(cfg, testLogger())
	require.NoError(t, err)
	require.NotNil(t, app)
}
