package kvstore

import (
	"context"

	"household-app-go/pkg/logger"
)

// Store is the persistence contract the local repository engine runs on.
// Implementations must be safe for concurrent use; the engine itself does
// no locking around read-modify-write cycles.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Keys(ctx context.Context) ([]string, error)
}

type Config struct {
	Path      string
	Namespace string
}

// Open returns the sqlite-backed store at cfg.Path, falling back to an
// in-memory store when the file cannot be opened. Data in the fallback
// does not survive the process.
func Open(cfg Config, log logger.Logger) Store {
	store, err := OpenSQLite(cfg.Path, cfg.Namespace)
	if err != nil {
		log.Warn("kvstore: persistent store unavailable, using in-memory fallback", "path", cfg.Path, "err", err)
		return NewMemory()
	}
	log.Info("kvstore: using sqlite store", "path", cfg.Path, "namespace", cfg.Namespace)
	return store
}
