package position

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"tradequotes/internal/quote"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func mustPair(t *testing.T, spec string) quote.BotPair {
	t.Helper()
	p, err := quote.NewBotPair(spec)
	require.NoError(t, err)
	return p
}

func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, d(want).Equal(got), "want %s, got %s", want, got)
}

var openedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestPosition(t *testing.T, pair quote.BotPair, purchase, tokens string) Position {
	t.Helper()
	pos, err := New(uuid.New(), pair, Params{
		PurchasePrice:     d(purchase),
		NumberOfTokens:    d(tokens),
		ExpectedSalePrice: d("52000"),
		NextPurchasePrice: d("48000"),
		Variations:        map[string]decimal.Decimal{"buy": d("0.02"), "sell": d("0.02")},
	}, openedAt)
	require.NoError(t, err)
	return pos
}

func TestNew_Defaults(t *testing.T) {
	pos := newTestPosition(t, mustPair(t, "BTC/USDT"), "50000", "0.1")

	require.Equal(t, DefaultStrategyTag, pos.StrategyTag)
	require.Equal(t, "BTC", pos.NumberOfTokens.Symbol())
	require.Equal(t, "BTC/USDT", pos.PurchasePrice.Pair())
	require.Equal(t, openedAt, pos.OpenedAt)
	requireDecimal(t, "0.02", pos.Variations["buy"])
}

func TestNew_Validation(t *testing.T) {
	pair := mustPair(t, "BTC/USDT")
	cases := []struct {
		name   string
		params Params
	}{
		{name: "zero purchase price", params: Params{PurchasePrice: decimal.Zero, NumberOfTokens: d("1")}},
		{name: "negative tokens", params: Params{PurchasePrice: d("1"), NumberOfTokens: d("-1")}},
		{name: "negative target", params: Params{PurchasePrice: d("1"), NumberOfTokens: d("1"), ExpectedSalePrice: d("-1")}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(uuid.New(), pair, tc.params, openedAt)
			require.ErrorIs(t, err, quote.ErrValidation)
		})
	}
}

func TestPosition_Valuation(t *testing.T) {
	pair := mustPair(t, "BTC/USDT")
	pos := newTestPosition(t, pair, "50000", "0.1")
	sale := pair.CreatePrice(d("51000"))

	roi, err := pos.ROI(sale)
	require.NoError(t, err)
	requireDecimal(t, "2", roi)

	profit, err := pos.Profit(sale)
	require.NoError(t, err)
	require.Equal(t, "USDT", profit.Symbol())
	requireDecimal(t, "100", profit.Amount())

	gross, err := pos.GrossValue(sale)
	require.NoError(t, err)
	requireDecimal(t, "5100", gross.Amount())

	cost, err := pos.CostBasis()
	require.NoError(t, err)
	requireDecimal(t, "5000", cost.Amount())

	potential, err := pos.PotentialProfit()
	require.NoError(t, err)
	requireDecimal(t, "200", potential.Amount())

	potentialROI, err := pos.PotentialROI()
	require.NoError(t, err)
	requireDecimal(t, "4", potentialROI)
}

func TestPosition_Rules(t *testing.T) {
	pair := mustPair(t, "BTC/USDT")
	pos := newTestPosition(t, pair, "50000", "0.1")

	cases := []struct {
		name  string
		check func(quote.Price) (bool, error)
		price string
		want  bool
	}{
		{name: "sell at target", check: pos.ShouldSellAt, price: "52000", want: true},
		{name: "hold below target", check: pos.ShouldSellAt, price: "51999.99", want: false},
		{name: "dca at next purchase", check: pos.ShouldBuyDCAAt, price: "48000", want: true},
		{name: "no dca above", check: pos.ShouldBuyDCAAt, price: "48000.01", want: false},
		{name: "profitable above purchase", check: pos.IsProfitableAt, price: "50000.01", want: true},
		{name: "not profitable at purchase", check: pos.IsProfitableAt, price: "50000", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.check(pair.CreatePrice(d(tc.price)))
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}

	_, err := pos.ShouldSellAt(mustPair(t, "ETH/USDT").CreatePrice(d("1")))
	require.ErrorIs(t, err, quote.ErrCurrencyMismatch)
}

func TestPosition_ApplyTrailingStop(t *testing.T) {
	pair := mustPair(t, "BTC/USDT")
	pos := newTestPosition(t, pair, "50000", "0.1")

	moved, raised, err := pos.ApplyTrailingStop(pair.CreatePrice(d("55000")), d("0.02"))
	require.NoError(t, err)
	require.True(t, raised)
	requireDecimal(t, "53900", moved.ExpectedSalePrice.Value())
	requireDecimal(t, "52000", pos.ExpectedSalePrice.Value())
	require.Equal(t, pos.ID, moved.ID)

	same, raised, err := pos.ApplyTrailingStop(pair.CreatePrice(d("53000")), d("0.02"))
	require.NoError(t, err)
	require.False(t, raised)
	requireDecimal(t, "52000", same.ExpectedSalePrice.Value())
}

func TestPosition_RecordRoundTrip(t *testing.T) {
	pair := mustPair(t, "BTC/USDT")
	pos := newTestPosition(t, pair, "50000", "0.12345678")
	pos.ShortID = 7
	pos.Notes = "first entry"

	rec := pos.Record()
	require.Equal(t, "BTC/USDT", rec.Pair)
	requireDecimal(t, "0.12345678", rec.NumberOfTokens)

	back, err := FromRecord(pair, rec)
	require.NoError(t, err)
	require.Equal(t, pos.ID, back.ID)
	require.Equal(t, int64(7), back.ShortID)
	require.Equal(t, "first entry", back.Notes)
	requireDecimal(t, "50000", back.PurchasePrice.Value())

	_, err = FromRecord(mustPair(t, "ETH/USDT"), rec)
	require.ErrorIs(t, err, quote.ErrCurrencyMismatch)
}

func TestPosition_WithExpectedSalePriceCopies(t *testing.T) {
	pair := mustPair(t, "BTC/USDT")
	pos := newTestPosition(t, pair, "50000", "0.1")

	next := pos.WithExpectedSalePrice(pair.CreatePrice(d("60000")))
	next.Variations["buy"] = d("0.5")

	requireDecimal(t, "52000", pos.ExpectedSalePrice.Value())
	requireDecimal(t, "0.02", pos.Variations["buy"])
}
