package buildinfo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintBuildData_Defaults(t *testing.T) {
	var buf bytes.Buffer
	PrintBuildData(&buf)

	out := buf.String()
	assert.Contains(t, out, "Build version: N/A")
	assert.Contains(t, out, "Build date: N/A")
	assert.Contains(t, out, "Build commit: N/A")
}

func TestPrintBuildData_Stamped(t *testing.T) {
	origVersion, origDate, origCommit := BuildVersion, BuildDate, BuildCommit
	t.Cleanup(func() {
		BuildVersion, BuildDate, BuildCommit = origVersion, origDate, origCommit
	})

	BuildVersion = "v1.2.3"
	BuildDate = "2025-07-21"
	BuildCommit = "abc1234"

	var buf bytes.Buffer
	PrintBuildData(&buf)

	require.Equal(t, "Build version: v1.2.3\nBuild date: 2025-07-21\nBuild commit: abc1234\n", buf.String())
}
