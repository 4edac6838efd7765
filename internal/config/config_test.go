package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevinxiao27/revlist/internal/command"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("REVLIST_SEPARATOR", "comma")
	t.Setenv("REVLIST_LOG_LEVEL", "debug")
	t.Setenv("REVLIST_COLOR", "false")

	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, command.SeparatorComma, cfg.Separator)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.False(t, cfg.Color)
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("REVLIST_SEPARATOR", "comma")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--separator=space", "--debug", "--prompt=$ "}))

	v := New()
	require.NoError(t, BindFlags(v, fs))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, command.SeparatorSpace, cfg.Separator)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "$ ", cfg.Prompt)
}

func TestUnsetFlagsKeepEnv(t *testing.T) {
	t.Setenv("REVLIST_SEPARATOR", "comma")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(nil))

	v := New()
	require.NoError(t, BindFlags(v, fs))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, command.SeparatorComma, cfg.Separator)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "revlist.yaml")
	require.NoError(t, os.WriteFile(path, []byte("separator: space\nlog-level: error\nhistory-file: /tmp/h\n"), 0o644))

	v := New()
	require.NoError(t, ReadFile(v, path))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, command.SeparatorSpace, cfg.Separator)
	assert.Equal(t, slog.LevelError, cfg.LogLevel)
	assert.Equal(t, "/tmp/h", cfg.HistoryFile)
}

func TestReadFileMissing(t *testing.T) {
	assert.NoError(t, ReadFile(New(), ""))
	assert.Error(t, ReadFile(New(), filepath.Join(t.TempDir(), "nope.yaml")))
}

func TestLoadRejectsBadValues(t *testing.T) {
	v := New()
	v.Set(KeySeparator, "tab")
	_, err := Load(v)
	assert.ErrorIs(t, err, command.ErrBadSeparator)

	v = New()
	v.Set(KeyLogLevel, "loud")
	_, err = Load(v)
	assert.Error(t, err)
}
