package position

import (
	"strings"

	"tradequotes/internal/adapters"
	"tradequotes/internal/quote"
)

// Pairs hands out pair factories built with the deployment's precision table,
// reusing cached ones.
type Pairs struct {
	cache      adapters.PairCache
	precisions quote.PrecisionTable
}

func NewPairs(cache adapters.PairCache, precisions quote.PrecisionTable) *Pairs {
	return &Pairs{cache: cache, precisions: precisions}
}

// Resolve parses a "BASE/QUOTE" spec.
func (p *Pairs) Resolve(spec string) (quote.BotPair, error) {
	key := strings.ToUpper(strings.ReplaceAll(spec, " ", ""))
	if pair, ok := p.cache.Get(key); ok {
		return pair, nil
	}
	pair, err := quote.NewBotPair(spec, quote.WithPrecisions(p.precisions))
	if err != nil {
		return quote.BotPair{}, err
	}
	p.cache.Set(key, pair)
	return pair, nil
}

func (p *Pairs) Precisions() quote.PrecisionTable { return p.precisions }
