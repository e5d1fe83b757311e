package main

import (
	"fmt"
	"strings"

	"github.com/lomoval/otus-golang/topwords/internal/dinosaur"
	"github.com/lomoval/otus-golang/topwords/internal/logger"
	"github.com/lomoval/otus-golang/topwords/internal/validator"
	"github.com/spf13/viper"
)

const envConfigPrefix = "$env:"

type Config struct {
	Logger   logger.Config
	Dinosaur dinosaur.Config `validate:"nested"`
}

func NewConfig(configFile string) (Config, error) {
	config := Config{}
	v := viper.New()

	v.SetDefault("logger.level", "WARN")
	v.SetDefault("dinosaur.gravity", dinosaur.Gravity)
	v.SetDefault("dinosaur.stance", dinosaur.Bipedal)
	v.SetDefault("dinosaur.top", 0)
	v.SetDefault("dinosaur.sampleDir", ".")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return config, fmt.Errorf("failed to read config %q: %w", configFile, err)
		}
	}
	for _, key := range v.AllKeys() {
		env := v.GetString(key)
		if strings.HasPrefix(env, envConfigPrefix) {
			if err := v.BindEnv(key, env[len(envConfigPrefix):]); err != nil {
				return config, fmt.Errorf("failed to prepare config: %w", err)
			}
		}
	}

	if err := v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("unable to decode into config struct: %w", err)
	}
	if err := validator.Validate(config); err != nil {
		return config, fmt.Errorf("incorrect config: %w", err)
	}
	return config, nil
}
