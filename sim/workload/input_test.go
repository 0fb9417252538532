package workload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbsim/lbsim/sim/internal/testutil"
)

func TestReadInput_GivenExample(t *testing.T) {
	in, err := LoadInputFile(testutil.TestdataPath(t, "input.txt"))
	require.NoError(t, err)
	assert.Equal(t, &Input{TaskDuration: 4, ServerCapacity: 2, Arrivals: []int{1, 3, 0, 1, 0, 1}}, in)
}

func TestReadInput_CRLFAndTrailingBlankLines(t *testing.T) {
	in, err := ReadInput(strings.NewReader("2\r\n3\r\n5\r\n0\r\n\r\n\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, in.TaskDuration)
	assert.Equal(t, 3, in.ServerCapacity)
	assert.Equal(t, []int{5, 0}, in.Arrivals)
}

func TestReadInput_NoArrivals(t *testing.T) {
	in, err := ReadInput(strings.NewReader("1\n1\n"))
	require.NoError(t, err)
	assert.Empty(t, in.Arrivals)
}

func TestReadInput_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"empty", "", "0 line(s)"},
		{"missing capacity", "4\n", "1 line(s)"},
		{"non-integer duration", "four\n2\n1\n", "line 1"},
		{"non-integer capacity", "4\n2.5\n1\n", "line 2"},
		{"non-integer arrival", "4\n2\n1\nx\n", "line 4"},
		{"blank line between arrivals", "4\n2\n1\n\n3\n", "line 4"},
		{"negative arrival", "4\n2\n-1\n", "non-negative"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadInput(strings.NewReader(tc.input))
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestLoadInputFile_MissingFile(t *testing.T) {
	_, err := LoadInputFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveInputFile_RoundTripsThroughReader(t *testing.T) {
	// GIVEN an input written to disk
	path := filepath.Join(t.TempDir(), "in.txt")
	want := &Input{TaskDuration: 10, ServerCapacity: 10, Arrivals: []int{5, 2, 6, 5, 10}}
	require.NoError(t, SaveInputFile(path, want))

	// WHEN it is loaded back
	got, err := LoadInputFile(path)

	// THEN nothing is lost
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
