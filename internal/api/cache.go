package api

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/spacesedan/textlens/internal/clients"
	"github.com/spacesedan/textlens/internal/languages"
)

const resultKeyPrefix = "textlens:result:"

// ResultCache stores encoded analysis results. Implementations swallow
// their own errors: a cache failure only costs a recomputation.
type ResultCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
}

func cacheKey(endpoint string, p params) string {
	p.ToLang = languages.ToCode(p.ToLang)
	payload, _ := json.Marshal(p)
	sum := sha256.Sum256(append([]byte(endpoint+"\n"), payload...))
	return resultKeyPrefix + hex.EncodeToString(sum[:])
}

type ValkeyResultCache struct {
	client *clients.ValkeyClient
	ttl    time.Duration
}

func NewValkeyResultCache(client *clients.ValkeyClient, ttl time.Duration) *ValkeyResultCache {
	return &ValkeyResultCache{client: client, ttl: ttl}
}

func (c *ValkeyResultCache) Get(ctx context.Context, key string) ([]byte, bool) {
	value, found, err := c.client.Get(ctx, key)
	if err != nil {
		slog.Warn("[ResultCache] Lookup failed",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return nil, false
	}
	if !found {
		return nil, false
	}
	return []byte(value), true
}

func (c *ValkeyResultCache) Set(ctx context.Context, key string, value []byte) {
	if err := c.client.SetWithTTL(ctx, key, string(value), c.ttl); err != nil {
		slog.Warn("[ResultCache] Store failed",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}
}
