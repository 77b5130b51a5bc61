// Package counter tracks quote volume in Redis. Counters are best effort:
// an unreachable cache loses counts but never fails a quote.
package counter

import (
	"context"
	"strconv"

	"github.com/connectedautocare/quoteapi/internal/pkg/cache"
)

const quotesIssuedKey = "quotes:counters:issued"

// AddQuote increments the issued-quote counter for a product kind
// ("vsc", "hero", "vin_decode").
func AddQuote(kind string) error {
	ctx := context.Background()
	return cache.GetClient().HIncrBy(ctx, quotesIssuedKey, kind, 1).Err()
}

// Totals returns the issued-quote counts per product kind. An unavailable
// cache returns an empty map rather than an error so analytics views degrade
// instead of failing.
func Totals() map[string]int64 {
	ctx := context.Background()
	data, err := cache.GetClient().HGetAll(ctx, quotesIssuedKey).Result()
	if err != nil {
		return map[string]int64{}
	}

	totals := make(map[string]int64, len(data))
	for kind, raw := range data {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		totals[kind] = n
	}
	return totals
}

// Reset drops all counters, for tests and manual maintenance.
func Reset() error {
	ctx := context.Background()
	return cache.GetClient().Del(ctx, quotesIssuedKey).Err()
}
