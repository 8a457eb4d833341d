package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr   string
	JWTSecret    string
	LogLevel     string
	KafkaBrokers []string
	KafkaTopic   string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		ListenAddr: getDefault("LISTEN_ADDR", ":8000"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		LogLevel:   getDefault("LOG_LEVEL", "info"),
		KafkaTopic: getDefault("KAFKA_TOPIC", "audit_events"),
	}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		config.KafkaBrokers = strings.Split(brokers, ",")
	}

	MustNonEmpty(config.JWTSecret, "JWT_SECRET")

	return config, nil
}

func getDefault(envName, def string) string {
	if v := os.Getenv(envName); v != "" {
		return v
	}
	return def
}

func MustNonEmpty(value, envName string) {
	if value == "" {
		log.Fatalf("missing required env %s", envName)
	}
}
