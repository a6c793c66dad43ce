package config

import "os"

// Config collects the runtime settings of the service.
type Config struct {
	Port       string
	CodeLength int
	Database   Database
}

// Database holds the PostgreSQL connection settings.
type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// Load reads the configuration from environment variables, falling back
// to defaults. Variables are typically provided via a .env file loaded at
// startup.
func Load() *Config {
	return &Config{
		Port:       getEnv("PORT", "8080"),
		CodeLength: 6,
		Database: Database{
			Host:     getEnv("DATABASE_HOST", "localhost"),
			Port:     getEnv("DATABASE_PORT", "5432"),
			User:     getEnv("DATABASE_USER", "postgres"),
			Password: getEnv("DATABASE_PASSWORD", "postgres"),
			Name:     getEnv("DATABASE_NAME", "shortlink"),
			SSLMode:  getEnv("DATABASE_SSLMODE", "require"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}
