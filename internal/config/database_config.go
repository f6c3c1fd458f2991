package config

import "fmt"

type DatabaseConfig interface {
	GetDatabaseURL() string
}

type Database struct{}

var _ DatabaseConfig = Database{}

// GetDatabaseURL returns the Postgres DSN. DATABASE_URL wins; otherwise the
// DSN is assembled from the individual POSTGRES_* variables.
func (Database) GetDatabaseURL() string {
	if url := GetEnv("DATABASE_URL", ""); url != "" {
		return url
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		GetEnv("POSTGRES_HOST", "localhost"),
		GetEnv("POSTGRES_USER", "postgres"),
		GetEnv("POSTGRES_PASSWORD", "postgres"),
		GetEnv("POSTGRES_DB", "musiccatalog"),
		GetEnv("POSTGRES_PORT", "5432"),
	)
}
