package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"tradequotes/internal/quote"
)

type GetSymbolResponse struct {
	Symbol       string `json:"symbol" msgpack:"symbol" example:"USDT"`
	Class        string `json:"class" msgpack:"class" example:"stablecoin"`
	Precision    int32  `json:"precision" msgpack:"precision" example:"2"`
	IsFiat       bool   `json:"is_fiat" msgpack:"is_fiat" example:"false"`
	IsStablecoin bool   `json:"is_stablecoin" msgpack:"is_stablecoin" example:"true"`
	IsQuoteLike  bool   `json:"is_quote_like" msgpack:"is_quote_like" example:"true"`
}

// GetSymbol godoc
// @Summary Classify a symbol
// @Description Get the class of a symbol and the precision its quantities are truncated to
// @Tags Symbols
// @Produce json
// @Param symbol path string true "Symbol" example(BTC)
// @Success 200 {object} GetSymbolResponse
// @Failure 400 {object} errorResponse
// @Router /symbols/{symbol} [get]
func (h *Handler) GetSymbol(w http.ResponseWriter, r *http.Request) {
	symbol := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "symbol")))
	if symbol == "" || strings.Contains(symbol, "/") {
		writeError(w, http.StatusBadRequest, "symbol is required")
		return
	}

	writeResponse(w, r, http.StatusOK, GetSymbolResponse{
		Symbol:       symbol,
		Class:        quote.Classify(symbol).String(),
		Precision:    h.pairs.Precisions().For(symbol),
		IsFiat:       quote.IsFiat(symbol),
		IsStablecoin: quote.IsStablecoin(symbol),
		IsQuoteLike:  quote.IsQuoteLike(symbol),
	})
}
