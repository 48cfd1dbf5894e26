package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when CachedResult format changes
const resultCacheSchemaVersion uint16 = 1

// ResultCache хранит итоги проверок по дайджесту содержимого файла на диске.
// Thread-safe for concurrent access.
type ResultCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedResult stores the outcome of one vector-file run for fast re-runs.
type CachedResult struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	Total  int
	Failed int
}

// OpenResultCache initializes and returns a result cache at the standard
// location.
func OpenResultCache(app string) (*ResultCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ResultCache{dir: dir}, nil
}

func (c *ResultCache) pathFor(key [32]byte) string {
	hexKey := hex.EncodeToString(key[:])
	// Подкаталог "runs" — для удобства читаемости/очистки.
	return filepath.Join(c.dir, "runs", hexKey+".mp")
}

// Put serializes and writes a result to the cache.
func (c *ResultCache) Put(key [32]byte, result *CachedResult) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	result.Schema = resultCacheSchemaVersion
	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err := os.Remove(f.Name()); err != nil && !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "failed to remove temp file: %v\n", err)
		}
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(result); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a result from the cache.
func (c *ResultCache) Get(key [32]byte) (*CachedResult, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		return nil, false
	}
	defer func() {
		_ = f.Close()
	}()
	var out CachedResult
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&out); err != nil {
		return nil, false
	}
	if out.Schema != resultCacheSchemaVersion {
		return nil, false
	}
	return &out, true
}

// DropAll invalidates the cache, useful after format changes.
func (c *ResultCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "runs"))
}
