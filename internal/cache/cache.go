// Package cache provides caching for structure snapshots and query
// results.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"time"

	"github.com/allegro/bigcache/v3"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Config contains cache configuration.
type Config struct {
	SnapshotCacheSizeMB int
	SnapshotTTL         time.Duration
	QueryCacheSize      int
}

// Manager manages snapshot and query caches.
type Manager struct {
	snapshotCache *bigcache.BigCache
	queryCache    *lru.Cache[string, []byte]
}

// NewManager creates a new cache manager.
func NewManager(cfg Config) (*Manager, error) {
	snapshotConfig := bigcache.Config{
		Shards:             256,
		LifeWindow:         cfg.SnapshotTTL,
		CleanWindow:        cfg.SnapshotTTL / 2,
		MaxEntriesInWindow: 10000,
		MaxEntrySize:       256 * 1024, // 256KB per snapshot
		HardMaxCacheSize:   cfg.SnapshotCacheSizeMB,
		Verbose:            false,
	}

	snapshotCache, err := bigcache.New(context.Background(), snapshotConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshot cache: %w", err)
	}

	queryCache, err := lru.New[string, []byte](cfg.QueryCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create query cache: %w", err)
	}

	return &Manager{
		snapshotCache: snapshotCache,
		queryCache:    queryCache,
	}, nil
}

// GetSnapshot retrieves a rendered snapshot from cache.
func (m *Manager) GetSnapshot(key string) ([]byte, bool) {
	data, err := m.snapshotCache.Get(key)
	if err != nil {
		return nil, false
	}
	return data, true
}

// SetSnapshot stores a rendered snapshot in cache.
func (m *Manager) SetSnapshot(key string, data []byte) error {
	return m.snapshotCache.Set(key, data)
}

// GetQuery retrieves a query result from cache.
func (m *Manager) GetQuery(key string) ([]byte, bool) {
	return m.queryCache.Get(key)
}

// SetQuery stores a query result in cache.
func (m *Manager) SetQuery(key string, data []byte) {
	m.queryCache.Add(key, data)
}

// SnapshotKey generates a cache key for a structure snapshot. The
// selection string encodes the selected mutation ("" for none); regions
// are order-insensitive.
func SnapshotKey(symbol, selection string, regions []string) string {
	base := fmt.Sprintf("snap:%s:%s", symbol, selection)
	if len(regions) == 0 {
		return base
	}
	sorted := make([]string, len(regions))
	copy(sorted, regions)
	sort.Strings(sorted)

	h := sha256.New()
	h.Write([]byte(base))
	for _, r := range sorted {
		h.Write([]byte(r))
	}
	return base + ":" + hex.EncodeToString(h.Sum(nil))[:16]
}

// QueryKey generates a cache key for a query result over named params.
func QueryKey(symbol, op string, params map[string]string) string {
	base := fmt.Sprintf("query:%s:%s", symbol, op)
	if len(params) == 0 {
		return base
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h := sha256.New()
	h.Write([]byte(base))
	for _, k := range keys {
		h.Write([]byte(fmt.Sprintf("%s=%s", k, params[k])))
	}
	return base + ":" + hex.EncodeToString(h.Sum(nil))[:16]
}

// Stats returns cache statistics.
func (m *Manager) Stats() map[string]interface{} {
	return map[string]interface{}{
		"snapshot_cache_len": m.snapshotCache.Len(),
		"snapshot_cache_cap": m.snapshotCache.Capacity(),
		"query_cache_len":    m.queryCache.Len(),
	}
}

// Close closes the cache manager.
func (m *Manager) Close() error {
	return m.snapshotCache.Close()
}
