package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"tradequotes/internal/quote"
)

type GetSummaryResponse struct {
	Pair                 string            `json:"pair" msgpack:"pair" example:"BTC/USDT"`
	Price                string            `json:"price" msgpack:"price" example:"51000"`
	Count                int               `json:"count" msgpack:"count" example:"2"`
	TotalValue           quote.AssetRecord `json:"total_value" msgpack:"total_value"`
	TotalCostBasis       quote.AssetRecord `json:"total_cost_basis" msgpack:"total_cost_basis"`
	WeightedAveragePrice *string           `json:"weighted_average_price,omitempty" msgpack:"weighted_average_price,omitempty" example:"50000"`
	AggregateROI         string            `json:"aggregate_roi" msgpack:"aggregate_roi" example:"2"`
}

// GetSummary godoc
// @Summary Summarize positions of a pair
// @Description Value every open position of the pair at the given price
// @Tags Positions
// @Produce json
// @Param base path string true "Base symbol" example(BTC)
// @Param quote path string true "Quote symbol" example(USDT)
// @Param price query string true "Price to value positions at" example(51000)
// @Success 200 {object} GetSummaryResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /pairs/{base}/{quote}/positions [get]
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	spec := pairSpec(chi.URLParam(r, "base"), chi.URLParam(r, "quote"))
	rawPrice := strings.TrimSpace(r.URL.Query().Get("price"))
	if rawPrice == "" {
		writeError(w, http.StatusBadRequest, "price query parameter is required")
		return
	}
	price, err := quote.ParseDecimal(rawPrice)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if price.IsNegative() {
		writeError(w, http.StatusBadRequest, "price must be non-negative")
		return
	}

	sum, err := h.service.Summary(r.Context(), spec, price)
	if err != nil {
		if status, ok := clientStatus(err); ok {
			writeError(w, status, err.Error())
			return
		}
		msg := "ups, couldn't summarize positions this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetSummary", "pair": spec}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	res := GetSummaryResponse{
		Pair:           sum.Pair,
		Price:          sum.Price.Value().String(),
		Count:          sum.Count,
		TotalValue:     sum.TotalValue.Record(),
		TotalCostBasis: sum.TotalCostBasis.Record(),
		AggregateROI:   sum.AggregateROI.String(),
	}
	if sum.WeightedAveragePrice != nil {
		avg := sum.WeightedAveragePrice.Value().String()
		res.WeightedAveragePrice = &avg
	}
	writeResponse(w, r, http.StatusOK, res)
}
