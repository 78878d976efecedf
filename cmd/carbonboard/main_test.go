package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonboard/internal/cli"
	"github.com/rshade/carbonboard/internal/config"
	"github.com/rshade/carbonboard/pkg/version"
)

func TestRun(t *testing.T) {
	t.Setenv(config.EnvHome, t.TempDir())
	t.Setenv(config.EnvLogLevel, "error")
	t.Cleanup(config.ResetGlobalConfigForTest)

	require.NoError(t, run(context.Background(), []string{"version"}))
	assert.Error(t, run(context.Background(), []string{"report", "charts"}))
}

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		assert.NotEmpty(t, version.GetVersion())
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		require.NotNil(t, root)
		assert.Equal(t, "carbonboard", root.Use)
	})
}
