package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir_CreatesNestedParents(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "out", "2025", "backfill.sql")

	require.NoError(t, EnsureParentDir(path))

	fi, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")
}

func TestEnsureParentDir_Idempotent(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "out", "backfill.sql")

	require.NoError(t, EnsureParentDir(path))
	require.NoError(t, EnsureParentDir(path))

	fi, err := os.Stat(filepath.Join(tmp, "out"))
	require.NoError(t, err)
	require.True(t, fi.IsDir())
}

func TestEnsureParentDir_BareNameIsNoop(t *testing.T) {
	require.NoError(t, EnsureParentDir("backfill.sql"))
}

func TestEnsureParentDir_FailsIfFileBlocksPath(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "out"), []byte("x"), 0o660))

	err := EnsureParentDir(filepath.Join(tmp, "out", "backfill.sql"))
	require.Error(t, err, "should fail when a file exists with the same name")
}
