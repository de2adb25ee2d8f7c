// Package config loads process configuration from the environment.
package config

import "os"

// Backend selects the backing store implementation. The choice is made
// once at process start; nothing branches on it afterwards.
type Backend string

const (
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
	BackendMemory   Backend = "memory"
)

// Config carries everything needed to open the store.
type Config struct {
	Backend     Backend
	SQLitePath  string
	PostgresDSN string
}

// Load reads the environment, falling back to the embedded SQLite file a
// desktop installation uses.
func Load() Config {
	cfg := Config{
		Backend:     BackendSQLite,
		SQLitePath:  "gyneco.db",
		PostgresDSN: os.Getenv("GYNECO_DB_DSN"),
	}
	if backend := os.Getenv("GYNECO_DB_BACKEND"); backend != "" {
		cfg.Backend = Backend(backend)
	}
	if path := os.Getenv("GYNECO_DB_PATH"); path != "" {
		cfg.SQLitePath = path
	}
	return cfg
}
