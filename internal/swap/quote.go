package swap

import "github.com/shopspring/decimal"

// Quote is a venue's offer for a swap. Rate is To units per From unit; Fees
// and Slippage are fractions of the gross output.
type Quote struct {
	Rate        decimal.Decimal     `json:"rate" msgpack:"rate"`
	From        string              `json:"from_symbol" msgpack:"from_symbol"`
	To          string              `json:"to_symbol" msgpack:"to_symbol"`
	Fees        decimal.Decimal     `json:"fees" msgpack:"fees"`
	Slippage    decimal.Decimal     `json:"slippage" msgpack:"slippage"`
	GasEstimate decimal.NullDecimal `json:"gas_estimate" msgpack:"gas_estimate"`
}

func NewQuote(rate decimal.Decimal, from, to string, fees, slippage decimal.Decimal, gas decimal.NullDecimal) (Quote, error) {
	from, err := normalizeSymbol("from symbol", from)
	if err != nil {
		return Quote{}, err
	}
	to, err = normalizeSymbol("to symbol", to)
	if err != nil {
		return Quote{}, err
	}
	if err = nonNegative("rate", rate); err != nil {
		return Quote{}, err
	}
	if err = nonNegative("fees", fees); err != nil {
		return Quote{}, err
	}
	if err = nonNegative("slippage", slippage); err != nil {
		return Quote{}, err
	}

	return Quote{
		Rate:        rate,
		From:        from,
		To:          to,
		Fees:        fees,
		Slippage:    slippage,
		GasEstimate: gas,
	}, nil
}

// EstimateOutput is input * rate * (1 - fees) * (1 - slippage), exact.
func (q Quote) EstimateOutput(input decimal.Decimal) decimal.Decimal {
	return input.Mul(q.Rate).Mul(one.Sub(q.Fees)).Mul(one.Sub(q.Slippage))
}
