package translate

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when payload format changes.
const cacheSchemaVersion uint16 = 1

// errNoCache is returned by Key when no cache is configured.
var errNoCache = errors.New("translation cache disabled")

// Cache stores translator output on disk keyed by header content and
// argument list, so repeated repair runs over an unchanged header skip
// the translator invocation entirely. Thread-safe for concurrent access.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// payload is the msgpack-encoded cache entry.
type payload struct {
	Schema    uint16
	Output    string
	CreatedAt time.Time
}

// OpenCache initializes a disk cache at the standard location for app
// (XDG cache dir, falling back to ~/.cache).
func OpenCache(app string) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		base = filepath.Join(home, ".cache")
	}

	return OpenCacheDir(filepath.Join(base, app))
}

// OpenCacheDir initializes a disk cache rooted at dir.
func OpenCacheDir(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	return &Cache{dir: dir}, nil
}

// Key derives the cache key for a header and argument list from the
// header's contents, so edits invalidate entries without mtime games.
// A nil cache yields an error, which callers treat as a miss.
func (c *Cache) Key(header string, args []string) (string, error) {
	if c == nil {
		return "", errNoCache
	}

	data, err := os.ReadFile(header)
	if err != nil {
		return "", err
	}

	h := sha256.New()
	h.Write(data)

	for _, a := range args {
		h.Write([]byte{0})
		h.Write([]byte(a))
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

func (c *Cache) pathFor(key string) string {
	return filepath.Join(c.dir, "translated", key+".mp")
}

// Get reads the cached output for key. Returns false on any miss,
// including schema mismatches and unreadable entries.
func (c *Cache) Get(key string) (string, bool) {
	if c == nil {
		return "", false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		return "", false
	}
	defer f.Close()

	var p payload

	if err := msgpack.NewDecoder(f).Decode(&p); err != nil {
		return "", false
	}

	if p.Schema != cacheSchemaVersion {
		return "", false
	}

	return p.Output, true
}

// Put serializes and writes translator output under key, atomically via
// temp file and rename.
func (c *Cache) Put(key, output string) error {
	if c == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	path := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.CreateTemp(filepath.Dir(path), "tmp-*")
	if err != nil {
		return err
	}

	defer os.Remove(f.Name())

	p := payload{
		Schema:    cacheSchemaVersion,
		Output:    output,
		CreatedAt: time.Now(),
	}

	if err := msgpack.NewEncoder(f).Encode(&p); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(f.Name(), path)
}
