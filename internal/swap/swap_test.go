package swap

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"tradequotes/internal/quote"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestNewRequest_Direction(t *testing.T) {
	cases := []struct {
		from, to string
		want     Direction
	}{
		{from: "usdc", to: "btc", want: DirectionBuy},
		{from: "BTC", to: "USDC", want: DirectionSell},
		{from: "ETH", to: "BTC", want: DirectionSwap},
		{from: "USDT", to: "EUR", want: DirectionSwap},
	}

	for _, tc := range cases {
		t.Run(tc.from+"->"+tc.to, func(t *testing.T) {
			r, err := NewRequest(tc.from, tc.to, d("1"), TypeMarket)
			require.NoError(t, err)
			require.Equal(t, tc.want, r.Direction)
		})
	}
}

func TestNewRequest(t *testing.T) {
	r, err := NewRequest(" usdc ", "btc", d("100.5"), "")
	require.NoError(t, err)
	require.Equal(t, "USDC", r.From)
	require.Equal(t, "BTC", r.To)
	require.Equal(t, "USDC/BTC", r.Pair)
	require.Equal(t, "BTC/USDC", r.ReversePair)
	require.Equal(t, TypeMarket, r.Type)
	require.True(t, r.IsBuy())
	require.False(t, r.IsSell())
	require.False(t, r.IsSwap())

	_, err = NewRequest("", "BTC", d("1"), TypeLimit)
	require.ErrorIs(t, err, quote.ErrValidation)

	_, err = NewRequest("USDC", "BTC", d("-1"), TypeLimit)
	require.ErrorIs(t, err, quote.ErrValidation)

	_, err = NewRequest("USDC", "BTC", d("1"), Type("iceberg"))
	require.ErrorIs(t, err, quote.ErrValidation)
}

func TestRequest_JSONKeepsDecimalsAsStrings(t *testing.T) {
	r, err := NewRequest("BTC", "USDC", d("0.30000000"), TypeTWAP)
	require.NoError(t, err)

	data, err := json.Marshal(r)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"from_symbol": "BTC",
		"to_symbol": "USDC",
		"amount": "0.3",
		"swap_type": "twap",
		"pair": "BTC/USDC",
		"reverse_pair": "USDC/BTC",
		"direction": "sell"
	}`, string(data))
}

func TestQuote_EstimateOutput(t *testing.T) {
	q, err := NewQuote(d("20000"), "btc", "usdc", d("0.001"), d("0.005"), decimal.NullDecimal{})
	require.NoError(t, err)
	require.Equal(t, "BTC", q.From)

	// 0.5 * 20000 * 0.999 * 0.995
	got := q.EstimateOutput(d("0.5"))
	require.True(t, d("9940.05").Equal(got), "got %s", got)

	free, err := NewQuote(d("2"), "ETH", "BTC", decimal.Zero, decimal.Zero, decimal.NewNullDecimal(d("0.002")))
	require.NoError(t, err)
	require.True(t, d("6").Equal(free.EstimateOutput(d("3"))))
	require.True(t, free.GasEstimate.Valid)
}

func TestNewQuote_Validation(t *testing.T) {
	_, err := NewQuote(d("-1"), "BTC", "USDC", decimal.Zero, decimal.Zero, decimal.NullDecimal{})
	require.ErrorIs(t, err, quote.ErrValidation)

	_, err = NewQuote(d("1"), "BTC", "USDC", d("-0.1"), decimal.Zero, decimal.NullDecimal{})
	require.ErrorIs(t, err, quote.ErrValidation)

	_, err = NewQuote(d("1"), "BTC", " ", decimal.Zero, decimal.Zero, decimal.NullDecimal{})
	require.ErrorIs(t, err, quote.ErrValidation)
}

func TestNewResult_Slippage(t *testing.T) {
	req, err := NewRequest("USDC", "BTC", d("10000"), TypeMarket)
	require.NoError(t, err)

	res, err := NewResult(req, Execution{
		Rate:          d("0.00005"),
		FromAmount:    d("10000"),
		ToAmount:      d("0.49"),
		FeesPaid:      d("10"),
		TransactionID: "tx-1",
		ExecutedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	})
	require.NoError(t, err)

	require.True(t, d("0.000049").Equal(res.ExpectedRate), "got %s", res.ExpectedRate)
	// |0.000049 - 0.00005| / 0.00005
	require.True(t, d("0.02").Equal(res.Slippage), "got %s", res.Slippage)
	require.Equal(t, "tx-1", res.TransactionID)
}

func TestNewResult_ZeroAmounts(t *testing.T) {
	req, err := NewRequest("USDC", "BTC", decimal.Zero, TypeMarket)
	require.NoError(t, err)

	res, err := NewResult(req, Execution{Rate: d("1")})
	require.NoError(t, err)
	require.True(t, res.ExpectedRate.IsZero())
	require.True(t, res.Slippage.IsZero())

	_, err = NewResult(req, Execution{Rate: d("1"), ToAmount: d("-1")})
	require.ErrorIs(t, err, quote.ErrValidation)
}

func TestValidation_ReportsFirstInvalidFieldInOrder(t *testing.T) {
	req, err := NewRequest("USDC", "BTC", d("1"), TypeMarket)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		_, err = NewResult(req, Execution{Rate: d("1"), FromAmount: d("-1"), ToAmount: d("-1"), FeesPaid: d("-1")})
		require.ErrorIs(t, err, quote.ErrValidation)
		require.Contains(t, err.Error(), "from amount")

		_, err = NewQuote(d("-1"), "BTC", "USDC", d("-1"), d("-1"), decimal.NullDecimal{})
		require.ErrorIs(t, err, quote.ErrValidation)
		require.Contains(t, err.Error(), "rate must be")
	}
}
