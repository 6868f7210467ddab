package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pfeifer.dev/acc/acc"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewCommand()
	cmd.Writer = &out
	cmd.ErrWriter = &out
	argv := append([]string{"acc", "--params-dir", t.TempDir()}, args...)
	err := cmd.Run(context.Background(), argv)
	return out.String(), err
}

func TestStatusCommand(t *testing.T) {
	out, err := runCommand(t, "status", "--ego", "80", "--ahead", "70", "--distance", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "Current Speed: 80.0 km/h")
	assert.Contains(t, out, "Safe Distance: 44.4 m")
	assert.Contains(t, out, "Too close! Reduce speed to 70.0 km/h")
	assert.NotContains(t, out, "After speed adjustment:")
}

func TestStatusCommandAdjustAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "status.txt")
	out, err := runCommand(t, "status", "--ego", "70", "--ahead", "80", "--distance", "60", "--adjust", "--save", "--log-file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "After speed adjustment:")
	assert.Contains(t, out, "Current Speed: 72.0 km/h")
	assert.Contains(t, out, "Status saved to log file: "+path)

	records, err := acc.ReadRecordsFile(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 70.0, records[0].EgoSpeed)
	assert.Equal(t, 72.0, records[1].EgoSpeed)
}

func TestStatusCommandRejectsOutOfBounds(t *testing.T) {
	_, err := runCommand(t, "status", "--ego", "130", "--ahead", "70", "--distance", "20")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ego must be between 0 and 120")

	_, err = runCommand(t, "status", "--ego", "80", "--ahead", "70", "--distance", "250")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "distance must be between 0 and 200")
}

func TestStatusCommandRejectsNaN(t *testing.T) {
	_, err := runCommand(t, "status", "--ego", "NaN", "--ahead", "70", "--distance", "20")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ego must be between 0 and 120")
}

func TestStatusCommandReportsSaveFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "status.txt")
	out, err := runCommand(t, "status", "--ego", "60", "--ahead", "55", "--distance", "25", "--save", "--log-file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Error: Could not open log file for writing!")
	assert.Contains(t, out, "Current Speed: 60.0 km/h")
}

func TestDemoCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.txt")
	out, err := runCommand(t, "demo", "--log-file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Scenario 1: Vehicle too close")
	assert.Contains(t, out, "Demo completed. All scenarios have been logged to: "+path)

	records, err := acc.ReadRecordsFile(path)
	require.NoError(t, err)
	require.Len(t, records, 8)
	assert.Equal(t, 50.0, records[len(records)-1].EgoSpeed)
}

func TestViewCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "view.txt")
	c := acc.New(60, 55, 25, path)
	require.NoError(t, c.SaveStatus())
	c.AdjustSpeed()
	require.NoError(t, c.SaveStatus())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	out, err := runCommand(t, "view", path)
	require.NoError(t, err)
	assert.Contains(t, out, "=== Viewing Log File: "+path+" ===")
	assert.True(t, strings.HasSuffix(out, string(data)), "log must be dumped verbatim")

	out, err = runCommand(t, "view", "--last", "1", path)
	require.NoError(t, err)
	assert.Contains(t, out, "55.0")
	assert.Contains(t, out, "30.6")
	assert.NotContains(t, out, "33.3")
}

func TestViewCommandMissingFile(t *testing.T) {
	out, err := runCommand(t, "view", filepath.Join(t.TempDir(), "nope.txt"))
	require.NoError(t, err)
	assert.Contains(t, out, "No log file found or file is empty.")
}
