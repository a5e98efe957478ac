package cache

import (
	"github.com/charmbracelet/log"
)

// Open returns the Store for the configured cache path.
//
// An empty path disables caching. An open failure is logged and degrades to
// the [NullStore]; the service runs uncached rather than failing to start.
func Open(path string, logger *log.Logger) Store {
	if path == "" {
		logger.Info("cache disabled")
		return NewNullStore()
	}

	store, err := NewBoltStore(path)
	if err != nil {
		logger.Warn("cache init failed, running uncached", "path", path, "error", err)
		return NewNullStore()
	}

	return store
}
