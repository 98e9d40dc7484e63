package main

import (
	"errors"

	"github.com/spf13/viper"
)

// Config seeds the block the CLI operates on.
type Config struct {
	Text     string `mapstructure:"text"`
	X        int    `mapstructure:"x"`
	Y        int    `mapstructure:"y"`
	Z        int    `mapstructure:"z"`
	LogLevel string `mapstructure:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{LogLevel: "info"}
}

// LoadConfig merges defaults, the config file, TEXTBLOCK_* environment
// variables and overrides, lowest precedence first. An empty path searches
// for textblock.yaml in the working directory and $HOME/.textblock; a
// missing file is only an error when path is explicit.
func LoadConfig(v *viper.Viper, path string, overrides map[string]any) (*Config, error) {
	def := DefaultConfig()
	v.SetDefault("text", def.Text)
	v.SetDefault("x", def.X)
	v.SetDefault("y", def.Y)
	v.SetDefault("z", def.Z)
	v.SetDefault("log_level", def.LogLevel)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("textblock")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.textblock")
	}
	v.SetEnvPrefix("TEXTBLOCK")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	for k, val := range overrides {
		v.Set(k, val)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
