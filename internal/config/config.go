// Package config loads asc2tikz settings from defaults, an optional config
// file, ASC2TIKZ_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// Config is the resolved configuration.
type Config struct {
	Output OutputConfig `mapstructure:"output"`
	Log    LogConfig    `mapstructure:"log"`
}

// OutputConfig controls the generated file.
type OutputConfig struct {
	Extension string `mapstructure:"extension"`
	Center    bool   `mapstructure:"center"`
}

// LogConfig controls diagnostics on stderr.
type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// EnvPrefix is the prefix of environment overrides, e.g. ASC2TIKZ_LOG_LEVEL.
const EnvPrefix = "ASC2TIKZ"

// SetDefaults configures default values for all options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output.extension", ".tex")
	v.SetDefault("output.center", true)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.json", false)
}

// New returns a Viper instance with defaults and environment binding.
// If configFile is empty, asc2tikz.{toml,yaml,json} is looked up in the
// working directory and then in $HOME/.config/asc2tikz; a missing file is
// not an error.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", configFile)
		}
		return v, nil
	}

	v.SetConfigName("asc2tikz")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "asc2tikz"))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "failed to read config file")
		}
	}
	return v, nil
}

// Load unmarshals the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &cfg, nil
}
