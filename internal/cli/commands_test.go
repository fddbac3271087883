package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTopology = `
[[template]]
name = "asphalt"

[[node]]
id = 1
position = [0.0, 0.0, 0.0]

[[node]]
id = 2
position = [30.0, 0.0, 0.0]

[[node]]
id = 3
position = [30.0, 30.0, 0.0]

[[edge]]
start = 1
end = 2
template = "asphalt"
start_type = ["end_cap"]

[[edge]]
start = 2
end = 3
template = "asphalt"
end_type = ["end_cap"]
`

func writeTopology(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "topology.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleTopology), 0o644))
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := rootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestBuildCommand(t *testing.T) {
	out, err := runCommand(t, "build", writeTopology(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Built 1 networks")
	assert.Contains(t, out, "asphalt")
	assert.Contains(t, out, "2 end caps")
}

func TestExportCommand(t *testing.T) {
	input := writeTopology(t)
	for _, format := range []string{formatCSV, formatGeoJSON, formatDOT} {
		t.Run(format, func(t *testing.T) {
			output := filepath.Join(t.TempDir(), "networks."+format)
			out, err := runCommand(t, "export", input, "-f", format, "-o", output)
			require.NoError(t, err)
			assert.Contains(t, out, output)

			data, err := os.ReadFile(output)
			require.NoError(t, err)
			assert.NotEmpty(t, data)
		})
	}
}

func TestExportCommandErrors(t *testing.T) {
	input := writeTopology(t)
	_, err := runCommand(t, "export", input, "-f", "shp", "-o", filepath.Join(t.TempDir(), "networks.shp"))
	assert.ErrorContains(t, err, "unknown format")

	badInput := filepath.Join(t.TempDir(), "topology.json")
	require.NoError(t, os.WriteFile(badInput, []byte("{}"), 0o644))
	_, err = runCommand(t, "build", badInput)
	assert.ErrorContains(t, err, "unsupported input extension")

	_, err = runCommand(t, "build")
	assert.Error(t, err)
}
