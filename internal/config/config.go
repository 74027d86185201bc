// Package config loads the optional msgtool defaults file and
// environment overrides. Flags always take precedence because commands
// install these values as flag defaults.
package config

import (
	"errors"
	"strings"

	"github.com/loopcontext/msgtool"
	"github.com/spf13/viper"
)

// ConfigFileName is the defaults file (without extension) looked up in
// the working directory.
const ConfigFileName = "msgtool"

// EnvPrefix namespaces environment overrides, e.g. MSGTOOL_LOCALE.
const EnvPrefix = "MSGTOOL"

// Defaults carries the per-command documented defaults after merging
// built-ins, the config file, and the environment.
type Defaults struct {
	FunctionName string `mapstructure:"function_name"`
	GenerateID   string `mapstructure:"generate_id"`
	Locale       string `mapstructure:"locale"`
	Filename     string `mapstructure:"filename"`
}

// Builtin returns the documented defaults with no file or env applied.
func Builtin() Defaults {
	return Defaults{
		FunctionName: msgtool.DefaultFunctionName,
		GenerateID:   msgtool.DefaultKeyType,
		Locale:       msgtool.DefaultLocale,
		Filename:     msgtool.DefaultStdinName,
	}
}

// Load merges the built-in defaults with msgtool.yaml (when present in
// the working directory) and MSGTOOL_* environment variables. A missing
// config file is not an error; a malformed one is.
func Load() (Defaults, error) {
	v := viper.New()
	v.SetConfigName(ConfigFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	builtin := Builtin()
	v.SetDefault("function_name", builtin.FunctionName)
	v.SetDefault("generate_id", builtin.GenerateID)
	v.SetDefault("locale", builtin.Locale)
	v.SetDefault("filename", builtin.Filename)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return builtin, err
		}
	}

	var defaults Defaults
	if err := v.Unmarshal(&defaults); err != nil {
		return builtin, err
	}
	return defaults, nil
}
