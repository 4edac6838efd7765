// Package config loads shell settings from flags, REVLIST_* environment
// variables and an optional config file, in that order of precedence.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/kevinxiao27/revlist/internal/command"
)

const EnvPrefix = "REVLIST"

// Keys understood by Load.
const (
	KeyPrompt      = "prompt"
	KeySeparator   = "separator"
	KeyColor       = "color"
	KeyLogLevel    = "log-level"
	KeyDebug       = "debug"
	KeyHistoryFile = "history-file"
)

type Config struct {
	Prompt    string
	Separator command.Separator
	Color     bool
	LogLevel  slog.Level
	// Debug dumps the current snapshot after every edit.
	Debug bool
	// HistoryFile keeps readline's line history between runs. Empty disables it.
	HistoryFile string
}

func Default() Config {
	return Config{
		Prompt:    "> ",
		Separator: command.SeparatorAny,
		Color:     true,
		LogLevel:  slog.LevelWarn,
	}
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	d := Default()

	v.SetDefault(KeyPrompt, d.Prompt)
	v.SetDefault(KeySeparator, string(d.Separator))
	v.SetDefault(KeyColor, d.Color)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyDebug, d.Debug)
	v.SetDefault(KeyHistoryFile, d.HistoryFile)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// RegisterFlags declares one flag per key.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String(KeyPrompt, d.Prompt, "input prompt")
	fs.String(KeySeparator, string(d.Separator), "insert shortcut separator: any, space or comma")
	fs.Bool(KeyColor, d.Color, "colour output")
	fs.String(KeyLogLevel, "warn", "log level: debug, info, warn or error")
	fs.Bool(KeyDebug, d.Debug, "dump the current state after every edit")
	fs.String(KeyHistoryFile, d.HistoryFile, "file for input line history")
}

// BindFlags makes explicitly set flags override environment and file values.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for _, key := range []string{KeyPrompt, KeySeparator, KeyColor, KeyLogLevel, KeyDebug, KeyHistoryFile} {
		if f := fs.Lookup(key); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind flag %s: %w", key, err)
			}
		}
	}
	return nil
}

// ReadFile merges a config file into v. The format follows the extension.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

// Load validates the settings held by v.
func Load(v *viper.Viper) (Config, error) {
	sep, err := command.ParseSeparator(v.GetString(KeySeparator))
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", KeySeparator, err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString(KeyLogLevel))); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", KeyLogLevel, err)
	}

	return Config{
		Prompt:      v.GetString(KeyPrompt),
		Separator:   sep,
		Color:       v.GetBool(KeyColor),
		LogLevel:    level,
		Debug:       v.GetBool(KeyDebug),
		HistoryFile: v.GetString(KeyHistoryFile),
	}, nil
}
