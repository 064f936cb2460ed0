package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/hotel-reservations/internal/storage"
)

const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

type Config struct {
	// Backend selects the document store implementation.
	Backend string

	// DataDir holds the per-collection JSON files for the file backend.
	DataDir string

	// DatabaseURL is required for the postgres backend only.
	DatabaseURL string
}

func FromEnv() (Config, error) {
	cfg := Config{
		Backend:     getenv("STORE_BACKEND", BackendFile),
		DataDir:     getenv("DATA_DIR", "data"),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
	}

	switch cfg.Backend {
	case BackendFile:
	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("DATABASE_URL is required when STORE_BACKEND=postgres")
		}
	default:
		return Config{}, fmt.Errorf("invalid STORE_BACKEND %q (want %q or %q)", cfg.Backend, BackendFile, BackendPostgres)
	}

	return cfg, nil
}

// CollectionPaths enumerates where each collection lives on disk for the
// file backend.
func (c Config) CollectionPaths() map[string]string {
	return map[string]string{
		storage.Customers:    filepath.Join(c.DataDir, "customers.json"),
		storage.Hotels:       filepath.Join(c.DataDir, "hotels.json"),
		storage.Reservations: filepath.Join(c.DataDir, "reservations.json"),
	}
}

func getenv(k, def string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	return v
}
