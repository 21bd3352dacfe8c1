package docwrite

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// TemplateCache loads document templates from disk at most once and hands
// out deep copies, so callers can mutate their copy freely while the cached
// original stays pristine.
type TemplateCache struct {
	cache *lru.Cache[string, *Document]
}

// NewTemplateCache creates a cache holding up to size templates.
func NewTemplateCache(size int) (*TemplateCache, error) {
	cache, err := lru.New[string, *Document](size)
	if err != nil {
		return nil, err
	}
	return &TemplateCache{cache: cache}, nil
}

// Get returns a deep copy of the template at path, loading and caching it on
// first use.
func (tc *TemplateCache) Get(path string) (*Document, error) {
	if doc, ok := tc.cache.Get(path); ok {
		return doc.Clone(), nil
	}
	doc, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	tc.cache.Add(path, doc)
	return doc.Clone(), nil
}

// Len reports how many templates are currently cached.
func (tc *TemplateCache) Len() int {
	return tc.cache.Len()
}
