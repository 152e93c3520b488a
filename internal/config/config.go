package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Port         string `mapstructure:"PORT"`
	DatabasePath string `mapstructure:"DATABASE_PATH"`
	SeedDemoData bool   `mapstructure:"SEED_DEMO_DATA"`
	LogLevel     string `mapstructure:"LOG_LEVEL"`
}

func LoadConfig() *Config {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_PATH", "planner.db")
	viper.SetDefault("SEED_DEMO_DATA", true)
	viper.SetDefault("LOG_LEVEL", "info")

	viper.BindEnv("PORT")
	viper.BindEnv("DATABASE_PATH")
	viper.BindEnv("SEED_DEMO_DATA")
	viper.BindEnv("LOG_LEVEL")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatal().Err(err).Msg("Unable to decode config into struct")
	}

	return &config
}
