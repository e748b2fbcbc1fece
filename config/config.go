package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ServerAddr     string        `mapstructure:"SERVER_ADDR"`
	CarsDatabase   string        `mapstructure:"CARS_DATABASE"`
	RedisAddr      string        `mapstructure:"REDIS_ADDR"`
	QuoteCacheTTL  time.Duration `mapstructure:"QUOTE_CACHE_TTL"`
	RateLimitRPS   float64       `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int           `mapstructure:"RATE_LIMIT_BURST"`
	ReadTimeout    time.Duration `mapstructure:"READ_TIMEOUT"`
	WriteTimeout   time.Duration `mapstructure:"WRITE_TIMEOUT"`
	IdleTimeout    time.Duration `mapstructure:"IDLE_TIMEOUT"`
}

func Load() (Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_ADDR", ":8080")
	viper.SetDefault("CARS_DATABASE", "database/cars.json")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("QUOTE_CACHE_TTL", "10m")
	viper.SetDefault("RATE_LIMIT_RPS", 5.0)
	viper.SetDefault("RATE_LIMIT_BURST", 5)
	viper.SetDefault("READ_TIMEOUT", "15s")
	viper.SetDefault("WRITE_TIMEOUT", "15s")
	viper.SetDefault("IDLE_TIMEOUT", "60s")

	// A .env file is optional; env vars and defaults cover the rest.
	_ = viper.ReadInConfig()

	var cfg Config
	err := viper.Unmarshal(&cfg)
	return cfg, err
}
