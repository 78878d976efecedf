package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonboard/internal/cli"
	"github.com/rshade/carbonboard/internal/config"
)

// setupCLITest isolates the config home and silences logging.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvSeed, "")
	t.Setenv(config.EnvOutputFormat, "")
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

func executeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestReport_TablePlain(t *testing.T) {
	setupCLITest(t)

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"report"}, "CAMPUS OVERVIEW"},
		{[]string{"report", "overview"}, "CAMPUS OVERVIEW"},
		{[]string{"report", "electricity"}, "MONTHLY ELECTRICITY"},
		{[]string{"report", "water"}, "MONTHLY WATER"},
		{[]string{"report", "gas"}, "MONTHLY NATURAL GAS"},
		{[]string{"report", "carbon"}, "MONTHLY CARBON"},
		{[]string{"report", "buildings"}, "BUILDING EMISSIONS RANKING"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := executeCmd(t, append(tt.args, "--seed", "1")...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
			assert.NotContains(t, out, "\x1b[")
		})
	}
}

func TestReport_JSONSeedReproduces(t *testing.T) {
	setupCLITest(t)

	decode := func(out string) map[string]any {
		var doc map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &doc))
		return doc
	}

	first, err := executeCmd(t, "report", "buildings", "--output", "json", "--seed", "42")
	require.NoError(t, err)
	second, err := executeCmd(t, "report", "buildings", "-o", "json", "--seed", "42")
	require.NoError(t, err)

	a, b := decode(first), decode(second)
	assert.Equal(t, "buildings", a["view"])
	assert.InDelta(t, 42, a["seed"], 0)
	assert.Equal(t, a["buildings"], b["buildings"])
	assert.Len(t, a["buildings"], 10)
	assert.Len(t, a["reduction_plan"], 3)
	assert.NotEqual(t, a["snapshot_id"], b["snapshot_id"])
}

func TestReport_NDJSONPrediction(t *testing.T) {
	setupCLITest(t)

	out, err := executeCmd(t, "report", "water", "-o", "ndjson", "--predict-months", "3", "--seed", "5")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 15)

	var last map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[14]), &last))
	assert.Equal(t, true, last["is_prediction"])
	assert.Equal(t, "Mar", last["month"])
}

func TestReport_CSVHistoryOnly(t *testing.T) {
	setupCLITest(t)

	out, err := executeCmd(t, "report", "carbon", "--no-prediction", "-o", "csv", "--seed", "5")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 13)
	assert.True(t, strings.HasPrefix(lines[0], "month,"))
	assert.True(t, strings.HasPrefix(lines[1], "Jan,"))
}

func TestReport_CSVSources(t *testing.T) {
	setupCLITest(t)

	out, err := executeCmd(t, "report", "overview", "-o", "csv", "--seed", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "name,value,percentage")
	assert.Contains(t, out, "Natural Gas,")
}

func TestReport_Errors(t *testing.T) {
	setupCLITest(t)

	_, err := executeCmd(t, "report", "water", "--predict-months", "13")
	require.ErrorIs(t, err, config.ErrInvalidValue)

	_, err = executeCmd(t, "report", "-o", "xml")
	require.ErrorIs(t, err, config.ErrInvalidValue)

	_, err = executeCmd(t, "report", "charts")
	require.Error(t, err)

	_, err = executeCmd(t, "report", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestReport_ConfigOverlayAndEnv(t *testing.T) {
	setupCLITest(t)

	overlay := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(overlay, []byte("output:\n  default_format: json\n  precision: 2\n"), 0600))

	out, err := executeCmd(t, "report", "gas", "--config", overlay)
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)), "overlay switches output to json")

	t.Setenv(config.EnvSeed, "77")
	out, err = executeCmd(t, "report", "overview", "--config", overlay)
	require.NoError(t, err)
	assert.Contains(t, out, `"seed": 77`)
}

func TestConfigPrecedence_EnvOverridesOverlay(t *testing.T) {
	setupCLITest(t)

	overlay := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(overlay, []byte("output:\n  default_format: csv\n"), 0600))

	out, err := executeCmd(t, "config", "get", "output.default_format", "--config", overlay)
	require.NoError(t, err)
	assert.Equal(t, "csv", strings.TrimSpace(out))

	t.Setenv(config.EnvOutputFormat, "json")
	out, err = executeCmd(t, "config", "get", "output.default_format", "--config", overlay)
	require.NoError(t, err)
	assert.Equal(t, "json", strings.TrimSpace(out))

	out, err = executeCmd(t, "config", "get", "output.default_format", "--config", overlay, "--output", "ndjson")
	require.NoError(t, err)
	assert.Equal(t, "ndjson", strings.TrimSpace(out), "flags win over environment")
}

func TestMalformedUserConfig(t *testing.T) {
	home := setupCLITest(t)
	path := filepath.Join(home, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: [this is: not valid"), 0600))

	tests := [][]string{
		{"config", "validate"},
		{"config", "show"},
		{"report", "overview", "--seed", "1"},
		{"export", "--dir", filepath.Join(t.TempDir(), "out")},
	}
	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			out, err := executeCmd(t, args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "parsing config")
			assert.NotContains(t, out, "Configuration is valid")
		})
	}

	// init --force replaces the broken file.
	_, err := executeCmd(t, "config", "init", "--force")
	require.NoError(t, err)
	out, err := executeCmd(t, "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
}

func TestExport(t *testing.T) {
	setupCLITest(t)
	dir := filepath.Join(t.TempDir(), "out")

	out, err := executeCmd(t, "export", "--dir", dir, "--format", "json", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 5 files")

	for _, name := range []string{"historical", "projection", "buildings", "sources", "yearly"} {
		assert.FileExists(t, filepath.Join(dir, name+".json"))
	}

	_, err = executeCmd(t, "export")
	require.Error(t, err, "--dir is required")

	_, err = executeCmd(t, "export", "--dir", dir, "--format", "parquet")
	require.Error(t, err)
}

func TestConfigCommands(t *testing.T) {
	home := setupCLITest(t)

	out, err := executeCmd(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized successfully")
	assert.FileExists(t, filepath.Join(home, "config.yaml"))

	_, err = executeCmd(t, "config", "init")
	require.Error(t, err, "existing file is not overwritten without --force")
	_, err = executeCmd(t, "config", "init", "--force")
	require.NoError(t, err)

	out, err = executeCmd(t, "config", "set", "output.default_format", "ndjson")
	require.NoError(t, err)
	assert.Contains(t, out, "Set output.default_format = ndjson")

	out, err = executeCmd(t, "config", "get", "output.default_format")
	require.NoError(t, err)
	assert.Equal(t, "ndjson", strings.TrimSpace(out))

	_, err = executeCmd(t, "config", "set", "output.precision", "9")
	require.ErrorIs(t, err, config.ErrInvalidValue)

	_, err = executeCmd(t, "config", "get", "nope")
	require.ErrorIs(t, err, config.ErrUnknownKey)

	out, err = executeCmd(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "default_format: ndjson")

	out, err = executeCmd(t, "config", "validate", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
	assert.Contains(t, out, "Output format: ndjson")
}

func TestConfigValidate_Invalid(t *testing.T) {
	setupCLITest(t)
	t.Setenv(config.EnvOutputFormat, "xml")

	_, err := executeCmd(t, "config", "validate")
	require.ErrorIs(t, err, config.ErrInvalidValue)
}

func TestVersion(t *testing.T) {
	setupCLITest(t)

	out, err := executeCmd(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "carbonboard test")
}
