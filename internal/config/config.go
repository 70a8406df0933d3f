// Package config collects the environment-backed settings for the server
// and terminal binaries.
package config

import "os"

// Backend selects where collections are stored.
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

type Config struct {
	ServerPort     string
	DataDir        string
	DataBackend    string // "file" (default) or "postgres"
	DatabaseURL    string // required when DataBackend is "postgres"
	AllowedOrigins string

	// LINE messaging channel. With an empty access token, replies are
	// logged instead of delivered; with an empty secret, the webhook
	// endpoint is not mounted at all.
	LineChannelSecret string
	LineChannelToken  string
}

// Load reads configuration from environment variables with defaults suitable
// for local development. Callers load .env via godotenv before calling this.
func Load() Config {
	return Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		DataDir:           getEnv("DATA_DIR", "data"),
		DataBackend:       getEnv("DATA_BACKEND", BackendFile),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		AllowedOrigins:    os.Getenv("ALLOWED_ORIGINS"),
		LineChannelSecret: os.Getenv("LINE_CHANNEL_SECRET"),
		LineChannelToken:  os.Getenv("LINE_CHANNEL_ACCESS_TOKEN"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
