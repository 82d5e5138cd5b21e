package cache

import (
	"fmt"

	"tradequotes/internal/quote"

	"github.com/dgraph-io/ristretto"
)

type RistrettoPairCache struct {
	cache *ristretto.Cache
}

func NewPairCache(maxItems int64) (*RistrettoPairCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create pair cache failed: %w", err)
	}
	return &RistrettoPairCache{cache: c}, nil
}

func (c *RistrettoPairCache) Get(spec string) (quote.BotPair, bool) {
	if v, ok := c.cache.Get(spec); ok {
		pair, ok := v.(quote.BotPair)
		return pair, ok
	}
	return quote.BotPair{}, false
}

func (c *RistrettoPairCache) Set(spec string, pair quote.BotPair) {
	c.cache.Set(spec, pair, 1)
}

func (c *RistrettoPairCache) Del(spec string) { c.cache.Del(spec) }

func (c *RistrettoPairCache) Close() { c.cache.Close() }
