package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultPort             = "8080"
	DefaultTokenExpiryHours = 24
)

type Config struct {
	Env              string
	Port             string
	DBURL            string
	JWTSecret        string
	TokenExpiryHours int
}

// Load reads config/.env.dev or config/.env.prod depending on ENV, then the
// process environment. Real environment variables take precedence over file
// values. The file is read into a map rather than exported, so Load never
// mutates the process environment.
func Load() *Config {
	env := getEnv("ENV", "development")

	envFile := "config/.env.dev"
	if env == "production" {
		envFile = "config/.env.prod"
	}
	fileVals, err := godotenv.Read(envFile)
	if err != nil {
		log.Printf("No env file loaded from %s: %v", envFile, err)
	}

	return &Config{
		Env:              env,
		Port:             lookup(fileVals, "PORT", DefaultPort),
		DBURL:            mustLookup(fileVals, "DB_URL"),
		JWTSecret:        mustLookup(fileVals, "JWT_SECRET"),
		TokenExpiryHours: lookupInt(fileVals, "TOKEN_EXPIRY_HOURS", DefaultTokenExpiryHours),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func lookup(fileVals map[string]string, key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if value := fileVals[key]; value != "" {
		return value
	}
	return defaultVal
}

func mustLookup(fileVals map[string]string, key string) string {
	if value := lookup(fileVals, key, ""); value != "" {
		return value
	}
	log.Fatalf("Missing required config: %s", key)
	return ""
}

func lookupInt(fileVals map[string]string, key string, defaultVal int) int {
	valStr := lookup(fileVals, key, "")
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
