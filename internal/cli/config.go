package cli

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix prefixes every environment variable the CLI reads, e.g.
// UNDERBAR_LOG_LEVEL.
const EnvPrefix = "UNDERBAR"

// Config holds the settings shared by every command.
type Config struct {
	// Indent is the number of spaces used to indent output JSON.
	// Zero writes compact, single-line documents.
	Indent int `mapstructure:"indent"`

	// LogLevel is decoded from a zap level name: debug, info, warn or error.
	LogLevel zapcore.Level `mapstructure:"log-level"`

	// Seed makes shuffle reproducible. Zero draws from the global source.
	Seed uint64 `mapstructure:"seed"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Indent:   0,
		LogLevel: zapcore.WarnLevel,
		Seed:     0,
	}
}

// LoadConfig resolves a Config from, in decreasing priority, explicitly set
// flags, UNDERBAR_* environment variables, the file named by the "config"
// flag, and [DefaultConfig].
func LoadConfig(v *viper.Viper, flags *pflag.FlagSet) (Config, error) {
	def := DefaultConfig()
	v.SetDefault("indent", def.Indent)
	v.SetDefault("log-level", def.LogLevel.String())
	v.SetDefault("seed", def.Seed)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("cli: bind flags: %w", err)
		}
		if path, _ := flags.GetString("config"); path != "" {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("cli: read config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if cfg.Indent < 0 {
		return Config{}, fmt.Errorf("%w: indent must not be negative, got %d", ErrInvalidConfig, cfg.Indent)
	}
	return cfg, nil
}
