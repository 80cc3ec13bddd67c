package storage

import (
	"context"
	"sync"

	"github.com/golang/groupcache/lru"

	"svw.info/mutant/internal/domain"
)

// Cached fronts a Store with an LRU of recently seen records.
type Cached struct {
	next Store

	mu    sync.Mutex
	cache *lru.Cache
}

func NewCached(next Store, size int) *Cached {
	return &Cached{next: next, cache: lru.New(size)}
}

func (c *Cached) Find(ctx context.Context, key string) (*domain.Record, error) {
	c.mu.Lock()
	v, ok := c.cache.Get(key)
	c.mu.Unlock()
	if ok {
		r := v.(domain.Record)
		return &r, nil
	}
	r, err := c.next.Find(ctx, key)
	if err != nil {
		return nil, err
	}
	c.remember(r)
	return r, nil
}

func (c *Cached) Save(ctx context.Context, r *domain.Record) error {
	if err := c.next.Save(ctx, r); err != nil {
		return err
	}
	// The backend keeps the first write; cache whatever it holds.
	stored, err := c.next.Find(ctx, r.DNA)
	if err != nil {
		return nil
	}
	c.remember(stored)
	return nil
}

func (c *Cached) Stats(ctx context.Context) (domain.Stats, error) { return c.next.Stats(ctx) }

func (c *Cached) Close() error { return c.next.Close() }

// Len reports how many records are cached.
func (c *Cached) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Len()
}

func (c *Cached) remember(r *domain.Record) {
	c.mu.Lock()
	c.cache.Add(r.DNA, *r)
	c.mu.Unlock()
}
