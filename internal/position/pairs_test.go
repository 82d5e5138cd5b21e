package position

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tradequotes/internal/quote"
)

func TestPairs_ResolveCachesAndAppliesPrecisions(t *testing.T) {
	cache := newMapPairCache()
	pairs := NewPairs(cache, quote.PrecisionTable{Fiat: 2, Stablecoin: 4, Crypto: 6})

	p, err := pairs.Resolve(" eth / usdc ")
	require.NoError(t, err)
	require.Equal(t, "ETH/USDC", p.String())
	require.Equal(t, int32(4), p.CreateQuoteAsset(d("1")).Precision())
	require.Equal(t, int32(6), p.CreateBaseAsset(d("1")).Precision())

	cached, ok := cache.Get("ETH/USDC")
	require.True(t, ok)
	require.Equal(t, "ETH/USDC", cached.String())

	_, err = pairs.Resolve("ETH")
	require.ErrorIs(t, err, quote.ErrValidation)
}
