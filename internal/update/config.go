package update

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bryanjenningz/todotui/internal/storage"
)

type RuntimeConfig struct {
	StorageBackend string
	DBPath         string
	SnapshotPath   string
	IDBuffer       int
	InitialFilter  string
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		StorageBackend: "sqlite",
		DBPath:         "todotui.db",
		SnapshotPath:   "todos.json",
		IDBuffer:       1,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("TODOTUI_STORAGE_BACKEND"); ok {
		cfg.StorageBackend = strings.ToLower(v)
	}
	if v, ok := getEnvString("TODOTUI_DB_PATH"); ok {
		cfg.DBPath = v
	}
	if v, ok := getEnvString("TODOTUI_SNAPSHOT_PATH"); ok {
		cfg.SnapshotPath = v
	}
	if v, ok := getEnvInt("TODOTUI_ID_BUFFER"); ok && v > 0 {
		cfg.IDBuffer = v
	}
	if v, ok := getEnvString("TODOTUI_FILTER"); ok {
		cfg.InitialFilter = v
	}
	return cfg
}

// OpenStore builds the snapshot store the config selects.
func OpenStore(cfg RuntimeConfig) (storage.Store, error) {
	switch cfg.StorageBackend {
	case "sqlite", "":
		return storage.OpenSQLite(cfg.DBPath)
	case "file":
		return storage.NewFileStore(cfg.SnapshotPath)
	default:
		return nil, fmt.Errorf("update: unknown storage backend %q", cfg.StorageBackend)
	}
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
