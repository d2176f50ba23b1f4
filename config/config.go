package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port           string
		LogLevel       string
		AllowedOrigins []string
	}
	Redis struct {
		Addr     string
		Password string
		DB       int
	}
	Postgres struct {
		DSN string
	}
	JWT struct {
		Secret     string
		TTLMinutes int
	}
	Account struct {
		Backend    string // "memory" or "postgres"
		BcryptCost int
	}
	RateLimit struct {
		LoginMax            int
		LoginWindowMinutes  int
		SignupMax           int
		SignupWindowMinutes int
	}
}

var C Config

func Load() {
	viper.SetConfigFile("config/config.yaml")
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Failed to read config: %v", err)
	}
	if err := viper.Unmarshal(&C); err != nil {
		log.Fatalf("Failed to parse config: %v", err)
	}
}
