package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Reports  ReportsConfig
}

type ServerConfig struct {
	Port      string
	JWTSecret string
	TokenTTL  time.Duration
}

type DatabaseConfig struct {
	URL string
}

type RedisConfig struct {
	Addr string
}

// ReportsConfig pins the calendar used by every dashboard window.
// "today" boundaries depend on it, so it is explicit config, never an
// ambient server default.
type ReportsConfig struct {
	Timezone string
}

var AppConfig *Config

// JwtKey is the HMAC key used to sign and verify auth tokens.
var JwtKey []byte

// Location is the resolved reporting timezone from ReportsConfig.
var Location *time.Location

func LoadConfig() {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		slog.Warn(".env file not found, falling back to environment variables", "error", err)
	}

	viper.AutomaticEnv()
	viper.BindEnv("SERVER_PORT", "PORT")
	viper.BindEnv("DATABASE_URL", "DB_URL")

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("TIMEZONE", "UTC")
	viper.SetDefault("JWT_TTL_HOURS", 24)

	AppConfig = &Config{
		Server: ServerConfig{
			Port:      viper.GetString("SERVER_PORT"),
			JWTSecret: viper.GetString("JWT_SECRET"),
			TokenTTL:  time.Duration(viper.GetInt("JWT_TTL_HOURS")) * time.Hour,
		},
		Database: DatabaseConfig{
			URL: viper.GetString("DATABASE_URL"),
		},
		Redis: RedisConfig{
			Addr: viper.GetString("REDIS_ADDR"),
		},
		Reports: ReportsConfig{
			Timezone: viper.GetString("TIMEZONE"),
		},
	}

	if AppConfig.Server.JWTSecret == "" {
		slog.Error("JWT_SECRET is not set")
		os.Exit(1)
	}
	JwtKey = []byte(AppConfig.Server.JWTSecret)

	loc, err := time.LoadLocation(AppConfig.Reports.Timezone)
	if err != nil {
		slog.Error("Invalid TIMEZONE value", "timezone", AppConfig.Reports.Timezone, "error", err)
		os.Exit(1)
	}
	Location = loc

	slog.Info("Configuration loaded",
		"port", AppConfig.Server.Port,
		"timezone", AppConfig.Reports.Timezone,
		"redis", AppConfig.Redis.Addr != "")
}
