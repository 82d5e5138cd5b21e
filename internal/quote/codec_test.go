package quote

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestAsset_JSON(t *testing.T) {
	p := mustPair(t, "BTC/USD")
	a := p.CreateBaseAsset(d("0.123456789012345"))

	data, err := json.Marshal(a)
	require.NoError(t, err)
	require.JSONEq(t, `{"amount":"0.12345678","precision":8,"symbol":"BTC"}`, string(data))

	var decoded Asset
	require.NoError(t, json.Unmarshal(data, &decoded))
	eq, err := decoded.Equal(a)
	require.NoError(t, err)
	require.True(t, eq)
	require.Equal(t, int32(8), decoded.Precision())
}

func TestAsset_JSONKeepsExactSum(t *testing.T) {
	p := mustPair(t, "BTC/USD")
	sum, err := p.CreateBaseAsset(d("0.1")).Add(p.CreateBaseAsset(d("0.2")))
	require.NoError(t, err)

	data, err := json.Marshal(sum)
	require.NoError(t, err)
	require.JSONEq(t, `{"amount":"0.30000000","precision":8,"symbol":"BTC"}`, string(data))
}

func TestAssetFromRecord(t *testing.T) {
	a, err := AssetFromRecord(AssetRecord{Amount: "1.123456789", Precision: 8, Symbol: " eth "})
	require.NoError(t, err)
	require.Equal(t, "ETH", a.Symbol())
	requireAmount(t, "1.12345678", a)

	cases := []struct {
		name   string
		record AssetRecord
	}{
		{name: "bad amount", record: AssetRecord{Amount: "abc", Precision: 8, Symbol: "BTC"}},
		{name: "negative precision", record: AssetRecord{Amount: "1", Precision: -1, Symbol: "BTC"}},
		{name: "empty symbol", record: AssetRecord{Amount: "1", Precision: 2, Symbol: ""}},
		{name: "precision below class", record: AssetRecord{Amount: "1.5", Precision: 0, Symbol: "ETH"}},
		{name: "precision above class", record: AssetRecord{Amount: "1.5", Precision: 4, Symbol: "USDC"}},
		{name: "huge precision", record: AssetRecord{Amount: "1", Precision: 2000000000, Symbol: "BTC"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := AssetFromRecord(tc.record)
			require.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestAsset_UnmarshalJSON_RejectsForeignPrecision(t *testing.T) {
	var a Asset
	err := json.Unmarshal([]byte(`{"amount":"1.5","precision":0,"symbol":"ETH"}`), &a)
	require.ErrorIs(t, err, ErrValidation)

	err = msgpack.Unmarshal(mustMsgpack(t, AssetRecord{Amount: "1.5", Precision: 0, Symbol: "ETH"}), &a)
	require.ErrorIs(t, err, ErrValidation)
}

func mustMsgpack(t *testing.T, v any) []byte {
	t.Helper()
	data, err := msgpack.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestAsset_AddCommutesAfterJSONRoundTrip(t *testing.T) {
	pair := mustPair(t, "ETH/USDC")
	native := pair.CreateBaseAsset(d("0.12345678"))

	data, err := json.Marshal(pair.CreateBaseAsset(d("1.5")))
	require.NoError(t, err)
	var decoded Asset
	require.NoError(t, json.Unmarshal(data, &decoded))

	left, err := native.Add(decoded)
	require.NoError(t, err)
	right, err := decoded.Add(native)
	require.NoError(t, err)
	requireAmount(t, "1.62345678", left)
	requireAmount(t, "1.62345678", right)
	require.Equal(t, left.Precision(), right.Precision())
}

func TestBotPair_AssetFromRecord(t *testing.T) {
	pair := mustPair(t, "ETH/USDC", WithPrecisions(PrecisionTable{Fiat: 2, Stablecoin: 4, Crypto: 6}))

	usdc, err := pair.AssetFromRecord(AssetRecord{Amount: "10.123456", Precision: 4, Symbol: "usdc"})
	require.NoError(t, err)
	requireAmount(t, "10.1234", usdc)

	eth, err := pair.AssetFromRecord(pair.CreateBaseAsset(d("2.123456789")).Record())
	require.NoError(t, err)
	requireAmount(t, "2.123456", eth)
	sum, err := eth.Add(pair.CreateBaseAsset(d("1")))
	require.NoError(t, err)
	requireAmount(t, "3.123456", sum)

	_, err = pair.AssetFromRecord(AssetRecord{Amount: "1", Precision: 2, Symbol: "USDC"})
	require.ErrorIs(t, err, ErrValidation)

	_, err = pair.AssetFromRecord(AssetRecord{Amount: "1", Precision: 6, Symbol: "BTC"})
	require.ErrorIs(t, err, ErrCurrencyMismatch)
}

func TestAsset_UnmarshalJSON_InvalidAmount(t *testing.T) {
	var a Asset
	err := json.Unmarshal([]byte(`{"amount":"abc","precision":8,"symbol":"BTC"}`), &a)
	require.ErrorIs(t, err, ErrValidation)
}

func TestPrice_JSON(t *testing.T) {
	p := mustPair(t, "BTC/USD").CreatePrice(d("20000.123456789"))

	data, err := json.Marshal(p)
	require.NoError(t, err)
	require.JSONEq(t, `{"price":"20000.123456789","base_symbol":"BTC","quote_symbol":"USD"}`, string(data))

	var decoded Price
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, "BTC/USD", decoded.Pair())
	requireValue(t, "20000.123456789", decoded)
}

func TestPrice_UnmarshalJSON_Invalid(t *testing.T) {
	var p Price
	err := json.Unmarshal([]byte(`{"price":"1","base_symbol":"","quote_symbol":"USD"}`), &p)
	require.ErrorIs(t, err, ErrValidation)

	err = json.Unmarshal([]byte(`{"price":"x","base_symbol":"BTC","quote_symbol":"USD"}`), &p)
	require.ErrorIs(t, err, ErrValidation)
}

func TestMsgpack_RoundTrip(t *testing.T) {
	pair := mustPair(t, "ETH/USDC")
	a := pair.CreateQuoteAsset(d("1234.567"))
	p := pair.CreatePrice(d("3000.5"))

	data, err := msgpack.Marshal(a)
	require.NoError(t, err)
	var decodedAsset Asset
	require.NoError(t, msgpack.Unmarshal(data, &decodedAsset))
	require.Equal(t, "USDC", decodedAsset.Symbol())
	requireAmount(t, "1234.56", decodedAsset)

	data, err = msgpack.Marshal(p)
	require.NoError(t, err)
	var decodedPrice Price
	require.NoError(t, msgpack.Unmarshal(data, &decodedPrice))
	require.Equal(t, "ETH/USDC", decodedPrice.Pair())
	requireValue(t, "3000.5", decodedPrice)
}

func TestMarshal_ZeroValue(t *testing.T) {
	_, err := json.Marshal(Asset{})
	require.ErrorIs(t, err, ErrConstructionDiscipline)

	_, err = json.Marshal(Price{})
	require.ErrorIs(t, err, ErrConstructionDiscipline)

	_, err = msgpack.Marshal(Asset{})
	require.ErrorIs(t, err, ErrConstructionDiscipline)
}
