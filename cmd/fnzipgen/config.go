package main

import (
	"errors"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/rogpeppe/fnzip/internal/gen"
)

// loadConfig resolves the generator configuration from the flags bound
// to v, the environment and the configuration file. When file is empty,
// .fnzipgen.yaml in the current directory is read if it exists.
func loadConfig(v *viper.Viper, file string) (gen.Config, error) {
	v.SetEnvPrefix("FNZIPGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(".fnzipgen")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return gen.Config{}, err
		}
	}

	cfg := gen.DefaultConfig()
	if err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.TextUnmarshallerHookFunc())); err != nil {
		return gen.Config{}, err
	}
	return cfg, nil
}
