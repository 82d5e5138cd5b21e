package swap

import "github.com/shopspring/decimal"

// Request asks to exchange Amount of From into To.
type Request struct {
	From        string          `json:"from_symbol" msgpack:"from_symbol"`
	To          string          `json:"to_symbol" msgpack:"to_symbol"`
	Amount      decimal.Decimal `json:"amount" msgpack:"amount"`
	Type        Type            `json:"swap_type" msgpack:"swap_type"`
	Pair        string          `json:"pair" msgpack:"pair"`
	ReversePair string          `json:"reverse_pair" msgpack:"reverse_pair"`
	Direction   Direction       `json:"direction" msgpack:"direction"`
}

// NewRequest validates the symbols and amount and derives the pair names and
// the direction. An empty type means market.
func NewRequest(from, to string, amount decimal.Decimal, typ Type) (Request, error) {
	from, err := normalizeSymbol("from symbol", from)
	if err != nil {
		return Request{}, err
	}
	to, err = normalizeSymbol("to symbol", to)
	if err != nil {
		return Request{}, err
	}
	if err = nonNegative("amount", amount); err != nil {
		return Request{}, err
	}
	if typ == "" {
		typ = TypeMarket
	}
	if !typ.Valid() {
		return Request{}, invalid("unknown swap type %q", typ)
	}

	return Request{
		From:        from,
		To:          to,
		Amount:      amount,
		Type:        typ,
		Pair:        from + "/" + to,
		ReversePair: to + "/" + from,
		Direction:   DirectionOf(from, to),
	}, nil
}

func (r Request) IsBuy() bool  { return r.Direction == DirectionBuy }
func (r Request) IsSell() bool { return r.Direction == DirectionSell }
func (r Request) IsSwap() bool { return r.Direction == DirectionSwap }
