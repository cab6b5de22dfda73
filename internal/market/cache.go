package market

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/farmverse/farmverse/internal/domain"
)

const priceCacheKey = "prices"

// priceCache holds the full price list between simulator ticks so the hot
// read path stays off the store. Entries expire on their own; a tick
// invalidates eagerly so readers never see the previous tick's prices.
type priceCache struct {
	lru *expirable.LRU[string, []domain.MarketPrice]
}

func newPriceCache(size int, ttl time.Duration) *priceCache {
	return &priceCache{
		lru: expirable.NewLRU[string, []domain.MarketPrice](size, nil, ttl),
	}
}

func (c *priceCache) Get() ([]domain.MarketPrice, bool) {
	return c.lru.Get(priceCacheKey)
}

func (c *priceCache) Set(prices []domain.MarketPrice) {
	c.lru.Add(priceCacheKey, prices)
}

func (c *priceCache) Invalidate() {
	c.lru.Remove(priceCacheKey)
}
