package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbsim/lbsim/sim/workload"
)

func TestGenerateCmd_WritesReadableInput(t *testing.T) {
	// GIVEN a generate invocation with explicit parameters
	out := filepath.Join(t.TempDir(), "generated.txt")
	rootCmd.SetArgs([]string{"generate", out, "--ticks", "12", "--rate", "3", "--ttask", "5", "--umax", "3", "--idle-tail", "2"})
	rootCmd.SetOut(&bytes.Buffer{})
	defer rootCmd.SetArgs(nil)

	// WHEN executed
	require.NoError(t, rootCmd.Execute())

	// THEN the file parses back with the requested shape
	in, err := workload.LoadInputFile(out)
	require.NoError(t, err)
	assert.Equal(t, 5, in.TaskDuration)
	assert.Equal(t, 3, in.ServerCapacity)
	assert.Len(t, in.Arrivals, 14)
}

func TestValidateCmd_ReportsSummary(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetArgs([]string{"validate", givenExamplePath})
	rootCmd.SetOut(&out)
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "ok (ttask=4, umax=2, 6 batches, 6 tasks)")
}

func TestValidateInput_RejectsZeroDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("0\n2\n1\n"), 0o644))
	_, err := validateInput(path, "", "")
	assert.ErrorContains(t, err, "task duration")
}
