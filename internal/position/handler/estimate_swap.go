package handler

import (
	"net/http"

	"github.com/shopspring/decimal"

	"tradequotes/internal/swap"
)

type EstimateSwapRequest struct {
	From        string              `json:"from_symbol" example:"USDT"`
	To          string              `json:"to_symbol" example:"BTC"`
	Amount      decimal.Decimal     `json:"amount" swaggertype:"string" example:"1000"`
	Type        swap.Type           `json:"swap_type" swaggertype:"string" example:"market"`
	Rate        decimal.Decimal     `json:"rate" swaggertype:"string" example:"0.00002"`
	Fees        decimal.Decimal     `json:"fees" swaggertype:"string" example:"0.001"`
	Slippage    decimal.Decimal     `json:"slippage" swaggertype:"string" example:"0.005"`
	GasEstimate decimal.NullDecimal `json:"gas_estimate" swaggertype:"string"`
}

type EstimateSwapResponse struct {
	Pair            string `json:"pair" msgpack:"pair" example:"USDT/BTC"`
	ReversePair     string `json:"reverse_pair" msgpack:"reverse_pair" example:"BTC/USDT"`
	Direction       string `json:"direction" msgpack:"direction" example:"buy"`
	SwapType        string `json:"swap_type" msgpack:"swap_type" example:"market"`
	Amount          string `json:"amount" msgpack:"amount" example:"1000"`
	Rate            string `json:"rate" msgpack:"rate" example:"0.00002"`
	EstimatedOutput string `json:"estimated_output" msgpack:"estimated_output" example:"0.01989"`
	GasEstimate     string `json:"gas_estimate,omitempty" msgpack:"gas_estimate,omitempty"`
}

// EstimateSwap godoc
// @Summary Estimate a swap
// @Description Estimate the output of a swap as amount * rate * (1 - fees) * (1 - slippage)
// @Tags Swaps
// @Accept json
// @Produce json
// @Param request body EstimateSwapRequest true "Swap request and venue quote"
// @Success 200 {object} EstimateSwapResponse
// @Failure 400 {object} errorResponse
// @Router /swaps/estimate [post]
func (h *Handler) EstimateSwap(w http.ResponseWriter, r *http.Request) {
	var body EstimateSwapRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, err := swap.NewRequest(body.From, body.To, body.Amount, body.Type)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	q, err := swap.NewQuote(body.Rate, req.From, req.To, body.Fees, body.Slippage, body.GasEstimate)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res := EstimateSwapResponse{
		Pair:            req.Pair,
		ReversePair:     req.ReversePair,
		Direction:       string(req.Direction),
		SwapType:        string(req.Type),
		Amount:          req.Amount.String(),
		Rate:            q.Rate.String(),
		EstimatedOutput: q.EstimateOutput(req.Amount).String(),
	}
	if q.GasEstimate.Valid {
		res.GasEstimate = q.GasEstimate.Decimal.String()
	}
	writeResponse(w, r, http.StatusOK, res)
}
