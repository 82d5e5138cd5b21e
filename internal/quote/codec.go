package quote

import (
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// AssetRecord is the wire form of an Asset. Amount is an exact decimal string.
type AssetRecord struct {
	Amount    string `json:"amount" msgpack:"amount"`
	Precision int32  `json:"precision" msgpack:"precision"`
	Symbol    string `json:"symbol" msgpack:"symbol"`
}

// PriceRecord is the wire form of a Price. Value is an exact decimal string.
type PriceRecord struct {
	Price       string `json:"price" msgpack:"price"`
	BaseSymbol  string `json:"base_symbol" msgpack:"base_symbol"`
	QuoteSymbol string `json:"quote_symbol" msgpack:"quote_symbol"`
}

func (a Asset) Record() AssetRecord {
	return AssetRecord{
		Amount:    a.amount.StringFixed(a.precision),
		Precision: a.precision,
		Symbol:    a.symbol,
	}
}

// AssetFromRecord rebuilds an Asset under the default precision table.
// The recorded precision must match the symbol's class.
func AssetFromRecord(r AssetRecord) (Asset, error) {
	return assetFromRecord(r, DefaultPrecisions)
}

// AssetFromRecord rebuilds an Asset of the pair's base or quote symbol under
// the pair's precision table.
func (p BotPair) AssetFromRecord(r AssetRecord) (Asset, error) {
	a, err := assetFromRecord(r, p.precisions)
	if err != nil {
		return Asset{}, err
	}
	if a.symbol != p.base && a.symbol != p.quote {
		return Asset{}, currencyMismatch("decode", a.symbol, p.String())
	}
	return a, nil
}

func assetFromRecord(r AssetRecord, table PrecisionTable) (Asset, error) {
	symbol, err := normalizeSymbol(r.Symbol)
	if err != nil {
		return Asset{}, err
	}
	if want := table.For(symbol); r.Precision != want {
		return Asset{}, validationError("precision of %s must be %d, got %d", symbol, want, r.Precision)
	}
	amount, err := ParseDecimal(r.Amount)
	if err != nil {
		return Asset{}, err
	}
	return newAsset(amount, symbol, table), nil
}

func (p Price) Record() PriceRecord {
	return PriceRecord{
		Price:       p.value.String(),
		BaseSymbol:  p.base,
		QuoteSymbol: p.quote,
	}
}

func PriceFromRecord(r PriceRecord) (Price, error) {
	pair, err := NewBotPair(r.BaseSymbol + "/" + r.QuoteSymbol)
	if err != nil {
		return Price{}, err
	}
	return pair.ParsePrice(r.Price)
}

func (a Asset) MarshalJSON() ([]byte, error) {
	if err := a.check(); err != nil {
		return nil, err
	}
	return json.Marshal(a.Record())
}

func (a *Asset) UnmarshalJSON(data []byte) error {
	var r AssetRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return fmt.Errorf("decode asset: %w", err)
	}
	decoded, err := AssetFromRecord(r)
	if err != nil {
		return err
	}
	*a = decoded
	return nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	if err := p.check(); err != nil {
		return nil, err
	}
	return json.Marshal(p.Record())
}

func (p *Price) UnmarshalJSON(data []byte) error {
	var r PriceRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return fmt.Errorf("decode price: %w", err)
	}
	decoded, err := PriceFromRecord(r)
	if err != nil {
		return err
	}
	*p = decoded
	return nil
}

var (
	_ msgpack.CustomEncoder = Asset{}
	_ msgpack.CustomDecoder = (*Asset)(nil)
	_ msgpack.CustomEncoder = Price{}
	_ msgpack.CustomDecoder = (*Price)(nil)
)

func (a Asset) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := a.check(); err != nil {
		return err
	}
	return enc.Encode(a.Record())
}

func (a *Asset) DecodeMsgpack(dec *msgpack.Decoder) error {
	var r AssetRecord
	if err := dec.Decode(&r); err != nil {
		return fmt.Errorf("decode asset: %w", err)
	}
	decoded, err := AssetFromRecord(r)
	if err != nil {
		return err
	}
	*a = decoded
	return nil
}

func (p Price) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := p.check(); err != nil {
		return err
	}
	return enc.Encode(p.Record())
}

func (p *Price) DecodeMsgpack(dec *msgpack.Decoder) error {
	var r PriceRecord
	if err := dec.Decode(&r); err != nil {
		return fmt.Errorf("decode price: %w", err)
	}
	decoded, err := PriceFromRecord(r)
	if err != nil {
		return err
	}
	*p = decoded
	return nil
}
