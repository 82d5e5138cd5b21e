package quote

import (
	"strings"
)

// Class is the closed set of symbol classes that decide an Asset's precision.
type Class int

const (
	ClassCrypto Class = iota
	ClassFiat
	ClassStablecoin
)

func (c Class) String() string {
	switch c {
	case ClassFiat:
		return "fiat"
	case ClassStablecoin:
		return "stablecoin"
	default:
		return "crypto"
	}
}

var (
	fiatSymbols = map[string]struct{}{
		"USD": {}, "EUR": {}, "GBP": {}, "JPY": {}, "CHF": {}, "CAD": {}, "AUD": {},
	}
	stablecoinSymbols = map[string]struct{}{
		"USD": {}, "USDC": {}, "USDT": {}, "DAI": {}, "BUSD": {}, "TUSD": {}, "USDP": {},
	}
)

func IsFiat(symbol string) bool {
	_, ok := fiatSymbols[strings.ToUpper(symbol)]
	return ok
}

func IsStablecoin(symbol string) bool {
	_, ok := stablecoinSymbols[strings.ToUpper(symbol)]
	return ok
}

// IsQuoteLike reports whether the symbol is fiat or a stablecoin.
func IsQuoteLike(symbol string) bool {
	return IsFiat(symbol) || IsStablecoin(symbol)
}

// Classify returns the class of a symbol. USD is listed as both fiat and
// stablecoin and classifies as fiat.
func Classify(symbol string) Class {
	switch {
	case IsFiat(symbol):
		return ClassFiat
	case IsStablecoin(symbol):
		return ClassStablecoin
	default:
		return ClassCrypto
	}
}

// PrecisionTable maps each symbol class to the number of decimal digits kept
// by Assets of that class.
type PrecisionTable struct {
	Fiat       int32 `mapstructure:"fiat" json:"fiat"`
	Stablecoin int32 `mapstructure:"stablecoin" json:"stablecoin"`
	Crypto     int32 `mapstructure:"crypto" json:"crypto"`
}

var DefaultPrecisions = PrecisionTable{Fiat: 2, Stablecoin: 2, Crypto: 8}

func (t PrecisionTable) For(symbol string) int32 {
	switch Classify(symbol) {
	case ClassFiat:
		return t.Fiat
	case ClassStablecoin:
		return t.Stablecoin
	default:
		return t.Crypto
	}
}

func (t PrecisionTable) Validate() error {
	if t.Fiat < 0 || t.Stablecoin < 0 || t.Crypto < 0 {
		return validationError("precisions must be non-negative, got %+v", t)
	}
	return nil
}

func normalizeSymbol(symbol string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if s == "" {
		return "", validationError("symbol must be a non-empty string")
	}
	if strings.Contains(s, "/") {
		return "", validationError("symbol %q must not contain '/'", symbol)
	}
	return s, nil
}
