package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	JWTSecret        string
	DBPath           string
	OwnerAddress     string
	PriceFeedURL     string
	PriceFeedTimeout time.Duration
	KeeperEnabled    bool
	KeeperInterval   time.Duration
}

var (
	AppConfig Config
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	AppConfig = Config{
		Port:             getEnvOrDefault("PORT", "3000"),
		JWTSecret:        mustGetEnv("JWT_SECRET"),
		DBPath:           getEnvOrDefault("DB_PATH", "defisalary.db"),
		OwnerAddress:     mustGetEnv("OWNER_ADDRESS"),
		PriceFeedURL:     getEnvOrDefault("PRICE_FEED_URL", "http://localhost:8547/feeds/eth-usd"),
		PriceFeedTimeout: getEnvDuration("PRICE_FEED_TIMEOUT", 10*time.Second),
		KeeperEnabled:    getEnvBool("KEEPER_ENABLED", false),
		KeeperInterval:   getEnvDuration("KEEPER_INTERVAL", time.Minute),
	}
}

func mustGetEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Environment variable %s is required", key)
	}
	return value
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Environment variable %s is not a valid duration: %v", key, err)
	}
	return d
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Fatalf("Environment variable %s is not a valid bool: %v", key, err)
	}
	return b
}
