package handler

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"tradequotes/internal/position"
)

type OpenPositionRequest struct {
	Pair              string                     `json:"pair" example:"BTC/USDT"`
	PurchasePrice     decimal.Decimal            `json:"purchase_price" swaggertype:"string" example:"50000"`
	NumberOfTokens    decimal.Decimal            `json:"number_of_tokens" swaggertype:"string" example:"0.5"`
	ExpectedSalePrice decimal.Decimal            `json:"expected_sale_price" swaggertype:"string" example:"52000"`
	NextPurchasePrice decimal.Decimal            `json:"next_purchase_price" swaggertype:"string" example:"48000"`
	Variations        map[string]decimal.Decimal `json:"variations" swaggertype:"object,string"`
	StrategyTag       string                     `json:"strategy_tag" example:"default"`
	Notes             string                     `json:"notes"`
}

// OpenPosition godoc
// @Summary Open position
// @Description Open a trading position on a pair
// @Tags Positions
// @Accept json
// @Produce json
// @Param request body OpenPositionRequest true "Position"
// @Success 201 {object} PositionResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /positions [post]
func (h *Handler) OpenPosition(w http.ResponseWriter, r *http.Request) {
	var req OpenPositionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pos, err := h.service.Open(r.Context(), req.Pair, position.Params{
		PurchasePrice:     req.PurchasePrice,
		NumberOfTokens:    req.NumberOfTokens,
		ExpectedSalePrice: req.ExpectedSalePrice,
		NextPurchasePrice: req.NextPurchasePrice,
		Variations:        req.Variations,
		StrategyTag:       req.StrategyTag,
		Notes:             req.Notes,
	})
	if err != nil {
		if status, ok := clientStatus(err); ok {
			writeError(w, status, err.Error())
			return
		}
		msg := "ups, couldn't open position this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "OpenPosition", "pair": req.Pair}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	res, err := newPositionResponse(pos)
	if err != nil {
		msg := "ups, couldn't value position this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "OpenPosition", "position_id": pos.ID}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	writeResponse(w, r, http.StatusCreated, res)
}
