package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	DB    DBConfig
	Redis RedisConfig
	JWT   JWTConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// LoadConfig reads HMS_-prefixed settings from .env and the environment.
// Real environment variables win over the file.
func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("HMS_APP_PORT", "8080")
	viper.SetDefault("HMS_APP_ENV", "development")
	viper.SetDefault("HMS_DB_SSLMODE", "disable")
	viper.SetDefault("HMS_REDIS_DB", 0)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("HMS_JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("HMS_JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("HMS_APP_PORT"),
			Env:  viper.GetString("HMS_APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("HMS_DB_HOST"),
			Port:     viper.GetString("HMS_DB_PORT"),
			User:     viper.GetString("HMS_DB_USER"),
			Password: viper.GetString("HMS_DB_PASSWORD"),
			Name:     viper.GetString("HMS_DB_NAME"),
			SSLMode:  viper.GetString("HMS_DB_SSLMODE"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("HMS_REDIS_HOST"),
			Port:     viper.GetString("HMS_REDIS_PORT"),
			Password: viper.GetString("HMS_REDIS_PASSWORD"),
			DB:       viper.GetInt("HMS_REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("HMS_JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
	}

	return config, nil
}
