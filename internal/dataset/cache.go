package dataset

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
)

type cacheKey struct {
	URL    string
	Format Format
}

// CachedLoader memoizes successful loads keyed by (url, format). Errors are
// never cached. Invalidation is caller-controlled; there is no TTL.
type CachedLoader struct {
	loader *Loader
	cache  *lru.Cache[cacheKey, Dataset]
}

func NewCachedLoader(loader *Loader, size int) (*CachedLoader, error) {
	if size <= 0 {
		size = 128
	}
	cache, err := lru.New[cacheKey, Dataset](size)
	if err != nil {
		return nil, err
	}
	return &CachedLoader{loader: loader, cache: cache}, nil
}

func (c *CachedLoader) Load(ctx context.Context, url string, format Format) (Dataset, error) {
	key := normalizeKey(url, format)
	if ds, ok := c.cache.Get(key); ok {
		return ds, nil
	}
	ds, err := c.loader.Load(ctx, url, format)
	if err != nil {
		return Dataset{}, err
	}
	c.cache.Add(key, ds)
	return ds, nil
}

// Invalidate drops the cached entry for (url, format), if any.
func (c *CachedLoader) Invalidate(url string, format Format) {
	c.cache.Remove(normalizeKey(url, format))
}

// Clear drops every cached entry.
func (c *CachedLoader) Clear() {
	c.cache.Purge()
}

func normalizeKey(url string, format Format) cacheKey {
	if format == "" {
		format = FormatCSV
	}
	return cacheKey{URL: url, Format: format}
}
