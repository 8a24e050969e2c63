package graph

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"maps"
	"sync"
	"time"

	"go.trai.ch/i18nhtml/internal/core/domain"
	"go.trai.ch/i18nhtml/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FingerprintCache = (*fileCache)(nil)

// fileCache is the fingerprint cache of one target backed by the graph's store.
type fileCache struct {
	graph  *Graph
	target string

	mu       sync.Mutex
	loaded   bool
	recorded map[string]domain.Fingerprint
	entries  map[string]domain.Fingerprint
}

func newFileCache(g *Graph, target string) *fileCache {
	return &fileCache{graph: g, target: target, entries: make(map[string]domain.Fingerprint)}
}

func (c *fileCache) load() error {
	if c.loaded {
		return nil
	}
	record, err := c.graph.store.Get(c.graph.cacheDir, c.target)
	switch {
	case errors.Is(err, domain.ErrStoreUnmarshalFailed):
		// The next Save overwrites the unreadable record.
		c.graph.logger.Warn(fmt.Sprintf("ignoring unreadable fingerprint record of %s", c.target))
		record = nil
	case err != nil:
		return err
	}
	if record != nil {
		c.recorded = record.Entries
	}
	c.loaded = true
	return nil
}

// NeedRebuildFile reports whether path differs from the fingerprint recorded under label.
func (c *fileCache) NeedRebuildFile(label, path string) (bool, error) {
	if c.graph.opts.Force {
		return true, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.load(); err != nil {
		return false, err
	}
	recorded, ok := c.recorded[label]
	if !ok {
		return true, nil
	}

	current, err := c.graph.hasher.Fingerprint(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return true, nil
		}
		return false, zerr.With(err, "label", label)
	}
	return !recorded.Matches(current), nil
}

// CacheFileInfo records the current fingerprint of path under label.
func (c *fileCache) CacheFileInfo(label, path string) error {
	fp, err := c.graph.hasher.Fingerprint(path)
	if err != nil {
		return zerr.With(err, "label", label)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[label] = fp
	return nil
}

// Save persists the recorded fingerprints as the record of the target.
func (c *fileCache) Save() error {
	c.mu.Lock()
	entries := maps.Clone(c.entries)
	c.mu.Unlock()

	return c.graph.store.Put(c.graph.cacheDir, domain.FingerprintRecord{
		Target:    c.target,
		Entries:   entries,
		Timestamp: time.Now(),
	})
}
