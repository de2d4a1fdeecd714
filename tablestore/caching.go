package tablestore

import (
	"context"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// CachingStore wraps a Store and keeps fetched tables in memory so repeated
// reads of the same beam table skip the backend. Entries are held
// lz4-block-compressed; beam tables are small and decompress in
// microseconds, so the cache trades a little CPU for a much smaller
// footprint when many cubes are open.
type CachingStore struct {
	inner Store

	mu      sync.RWMutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	data    []byte // lz4 block, or raw when compression did not help
	rawSize int
	packed  bool
}

// NewCachingStore creates a read-through cache over inner.
func NewCachingStore(inner Store) *CachingStore {
	return &CachingStore{
		inner:   inner,
		entries: make(map[string]cacheEntry),
	}
}

// Open returns the cached table if present, otherwise fetches the whole
// blob from the backend and caches it.
func (s *CachingStore) Open(ctx context.Context, name string) (Blob, error) {
	s.mu.RLock()
	entry, ok := s.entries[name]
	s.mu.RUnlock()
	if ok {
		data, err := entry.unpack()
		if err != nil {
			return nil, err
		}
		return &memoryBlob{data: data}, nil
	}

	b, err := s.inner.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer b.Close()

	data, err := ReadAll(ctx, b)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.entries[name] = pack(data)
	s.mu.Unlock()

	return &memoryBlob{data: data}, nil
}

// Put invalidates the cache entry and writes through to the backend.
func (s *CachingStore) Put(ctx context.Context, name string, data []byte) error {
	s.mu.Lock()
	delete(s.entries, name)
	s.mu.Unlock()
	return s.inner.Put(ctx, name, data)
}

// Delete invalidates the cache entry and deletes from the backend.
func (s *CachingStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	delete(s.entries, name)
	s.mu.Unlock()
	return s.inner.Delete(ctx, name)
}

// List is a pass-through to the backend.
func (s *CachingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

// pack lz4-compresses a table, falling back to the raw bytes when the
// compressed form is not smaller (already-compressed .fits.gz input).
func pack(data []byte) cacheEntry {
	bound := lz4.CompressBlockBound(len(data))
	compressed := make([]byte, bound)
	n, err := lz4.CompressBlock(data, compressed, nil)
	if err != nil || n == 0 || n >= len(data) {
		raw := make([]byte, len(data))
		copy(raw, data)
		return cacheEntry{data: raw, rawSize: len(data)}
	}
	return cacheEntry{data: compressed[:n], rawSize: len(data), packed: true}
}

func (e cacheEntry) unpack() ([]byte, error) {
	if !e.packed {
		out := make([]byte, len(e.data))
		copy(out, e.data)
		return out, nil
	}
	out := make([]byte, e.rawSize)
	n, err := lz4.UncompressBlock(e.data, out)
	if err != nil {
		return nil, fmt.Errorf("tablestore: corrupt cache entry: %w", err)
	}
	return out[:n], nil
}
