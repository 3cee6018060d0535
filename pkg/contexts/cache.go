// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package contexts

import (
	"context"
	"time"

	cachelib "github.com/eko/gocache/lib/v4/cache"
	gocache_store "github.com/eko/gocache/store/go_cache/v4"
	gocache "github.com/patrickmn/go-cache"

	"github.com/canonical/tenant-context-service/internal/types"
)

var _ CacheInterface = (*ContextCache)(nil)

// ContextCache keeps an in-process copy of recently resolved contexts so
// the resolver can keep answering when the tenant store is unavailable.
type ContextCache struct {
	cache cachelib.SetterCacheInterface[*types.ActiveContext]
}

func NewContextCache(ttl time.Duration) *ContextCache {
	client := gocache.New(ttl, 2*ttl)
	store := gocache_store.NewGoCache(client)

	return &ContextCache{
		cache: cachelib.New[*types.ActiveContext](store),
	}
}

func (c *ContextCache) Get(ctx context.Context, accountID string) (*types.ActiveContext, error) {
	return c.cache.Get(ctx, accountID)
}

func (c *ContextCache) Set(ctx context.Context, accountID string, ac *types.ActiveContext) error {
	return c.cache.Set(ctx, accountID, ac)
}

func (c *ContextCache) Delete(ctx context.Context, accountID string) error {
	return c.cache.Delete(ctx, accountID)
}
