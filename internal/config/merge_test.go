package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestShallowMergeYAML_ReplacesWholeSections(t *testing.T) {
	target := Default()
	target.Campus.Name = "Main"

	path := writeOverlay(t, "campus:\n  population: 300\nunknown_key: 1\n")
	require.NoError(t, ShallowMergeYAML(target, path))

	// The campus section is replaced, so the name falls back to zero.
	assert.Equal(t, 300, target.Campus.Population)
	assert.Empty(t, target.Campus.Name)
	// Untouched sections keep their values.
	assert.Equal(t, FormatTable, target.Output.DefaultFormat)
}

func TestShallowMergeYAML_Seed(t *testing.T) {
	target := Default()
	require.NoError(t, ShallowMergeYAML(target, writeOverlay(t, "generation:\n  seed: 17\n")))
	require.NotNil(t, target.Generation.Seed)
	assert.Equal(t, uint64(17), *target.Generation.Seed)
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	assert.Error(t, ShallowMergeYAML(nil, "x"))
	assert.Error(t, ShallowMergeYAML(Default(), filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, ShallowMergeYAML(Default(), writeOverlay(t, "output: [")))
	assert.Error(t, ShallowMergeYAML(Default(), writeOverlay(t, "output:\n  precision: high\n")))
}

func TestShallowMergeYAML_EmptyFile(t *testing.T) {
	target := Default()
	require.NoError(t, ShallowMergeYAML(target, writeOverlay(t, "# nothing\n")))
	assert.Equal(t, Default(), target)
}
