package quote

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	require.Equal(t, ClassFiat, Classify("USD"))
	require.Equal(t, ClassFiat, Classify("eur"))
	require.Equal(t, ClassStablecoin, Classify("USDT"))
	require.Equal(t, ClassStablecoin, Classify("DAI"))
	require.Equal(t, ClassCrypto, Classify("BTC"))

	require.True(t, IsFiat("USD"))
	require.True(t, IsStablecoin("USD"))
	require.True(t, IsQuoteLike("USDC"))
	require.True(t, IsQuoteLike("JPY"))
	require.False(t, IsQuoteLike("ETH"))

	require.Equal(t, "stablecoin", ClassStablecoin.String())
}

func TestPrecisionTable_For(t *testing.T) {
	require.Equal(t, int32(2), DefaultPrecisions.For("USD"))
	require.Equal(t, int32(2), DefaultPrecisions.For("USDC"))
	require.Equal(t, int32(8), DefaultPrecisions.For("BTC"))

	custom := PrecisionTable{Fiat: 4, Stablecoin: 6, Crypto: 5}
	require.Equal(t, int32(4), custom.For("EUR"))
	require.Equal(t, int32(6), custom.For("USDT"))
	require.Equal(t, int32(5), custom.For("SOL"))
}

func TestPrecisionTable_Validate(t *testing.T) {
	require.NoError(t, DefaultPrecisions.Validate())
	require.ErrorIs(t, PrecisionTable{Fiat: -1}.Validate(), ErrValidation)
}
