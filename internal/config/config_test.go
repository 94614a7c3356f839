package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String(LogLevel, defaultLogLevel, "")
	cmd.Flags().String(Input, "", "")
	cmd.Flags().String(Format, defaultFormat, "")
	cmd.Flags().Bool(Strict, false, "")
	cmd.Flags().Float64(MaxTotal, defaultMaxTotal, "")
	cmd.Flags().StringSlice(Blocked, nil, "")
	return cmd
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newCmd(), "", nil)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.Format)
	assert.False(t, cfg.Strict)
	assert.Equal(t, defaultMaxTotal, cfg.MaxTotal)
	assert.Empty(t, cfg.Blocked)
}

func TestLoad_FileThenFlags(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "fpkit.yaml")
	require.NoError(t, os.WriteFile(file, []byte("strict: true\nmax-total: 50\nblocked:\n  - evil\nformat: yaml\n"), 0o600))

	cmd := newCmd()
	require.NoError(t, cmd.Flags().Set(MaxTotal, "75"))
	require.NoError(t, cmd.Flags().Set(Blocked, "bad,worse"))

	cfg, err := Load(cmd, file, nil)
	require.NoError(t, err)

	assert.True(t, cfg.Strict)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, 75.0, cfg.MaxTotal)
	assert.Equal(t, []string{"bad", "worse"}, cfg.Blocked)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("FPKIT_LOG_LEVEL", "debug")

	cfg, err := Load(newCmd(), "", nil)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(newCmd(), filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestLoad_BlockedEnvIsCommaSeparated(t *testing.T) {
	t.Setenv("FPKIT_BLOCKED", "acme, evil,,bad")

	cfg, err := Load(newCmd(), "", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"acme", "evil", "bad"}, cfg.Blocked)
}

func TestLoad_LogsConfigFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "fpkit.yaml")
	require.NoError(t, os.WriteFile(file, []byte("strict: true\n"), 0o600))

	core, logs := observer.New(zapcore.InfoLevel)
	_, err := Load(newCmd(), file, zap.New(core))
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("using config file: "+file).Len())

	_, err = Load(newCmd(), filepath.Join(t.TempDir(), "missing.yaml"), zap.New(core))
	require.Error(t, err)
	assert.Equal(t, 1, logs.FilterMessage("cannot read config file").Len())
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, "yaml", formatFromPath("orders.yml"))
	assert.Equal(t, "yaml", formatFromPath("orders.yaml"))
	assert.Equal(t, "json", formatFromPath("orders.json"))
}
