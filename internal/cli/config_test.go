package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/hasbyte1/go-underbar/internal/cli"
)

func flagSet() *pflag.FlagSet {
	def := cli.DefaultConfig()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.Int("indent", def.Indent, "")
	fs.String("log-level", def.LogLevel.String(), "")
	fs.Uint64("seed", def.Seed, "")
	return fs
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := cli.LoadConfig(viper.New(), flagSet())
		require.NoError(t, err)
		assert.Equal(t, cli.DefaultConfig(), cfg)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("UNDERBAR_INDENT", "4")
		t.Setenv("UNDERBAR_LOG_LEVEL", "debug")
		t.Setenv("UNDERBAR_SEED", "42")

		cfg, err := cli.LoadConfig(viper.New(), flagSet())
		require.NoError(t, err)
		assert.Equal(t, cli.Config{Indent: 4, LogLevel: zapcore.DebugLevel, Seed: 42}, cfg)
	})

	t.Run("flags override environment", func(t *testing.T) {
		t.Setenv("UNDERBAR_INDENT", "4")
		fs := flagSet()
		require.NoError(t, fs.Parse([]string{"--indent", "1"}))

		cfg, err := cli.LoadConfig(viper.New(), fs)
		require.NoError(t, err)
		assert.Equal(t, 1, cfg.Indent)
	})

	t.Run("config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "underbar.yaml")
		require.NoError(t, os.WriteFile(path, []byte("indent: 3\nseed: 9\n"), 0o600))
		fs := flagSet()
		require.NoError(t, fs.Parse([]string{"--config", path}))

		cfg, err := cli.LoadConfig(viper.New(), fs)
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Indent)
		assert.Equal(t, uint64(9), cfg.Seed)
		assert.Equal(t, zapcore.WarnLevel, cfg.LogLevel)
	})

	t.Run("missing config file", func(t *testing.T) {
		fs := flagSet()
		require.NoError(t, fs.Parse([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml")}))
		_, err := cli.LoadConfig(viper.New(), fs)
		assert.Error(t, err)
	})

	t.Run("unknown log level", func(t *testing.T) {
		t.Setenv("UNDERBAR_LOG_LEVEL", "chatty")
		_, err := cli.LoadConfig(viper.New(), flagSet())
		assert.ErrorIs(t, err, cli.ErrInvalidConfig)
	})

	t.Run("negative indent", func(t *testing.T) {
		t.Setenv("UNDERBAR_INDENT", "-1")
		_, err := cli.LoadConfig(viper.New(), flagSet())
		assert.ErrorIs(t, err, cli.ErrInvalidConfig)
	})

	t.Run("without flags", func(t *testing.T) {
		cfg, err := cli.LoadConfig(viper.New(), nil)
		require.NoError(t, err)
		assert.Equal(t, cli.DefaultConfig(), cfg)
	})
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := cli.NewLogger(zapcore.InfoLevel, &buf)
	log.Debug("hidden")
	log.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}
