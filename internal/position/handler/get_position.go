package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"tradequotes/internal/domain"
	"tradequotes/internal/position"
	"tradequotes/internal/quote"
)

type PositionResponse struct {
	ID                string            `json:"id" msgpack:"id" example:"77b5d9f5-0569-47e3-aee2-f659d59fbd97"`
	ShortID           int64             `json:"short_id" msgpack:"short_id" example:"1"`
	Pair              string            `json:"pair" msgpack:"pair" example:"BTC/USDT"`
	PurchasePrice     string            `json:"purchase_price" msgpack:"purchase_price" example:"50000"`
	NumberOfTokens    quote.AssetRecord `json:"number_of_tokens" msgpack:"number_of_tokens"`
	ExpectedSalePrice string            `json:"expected_sale_price" msgpack:"expected_sale_price" example:"52000"`
	NextPurchasePrice string            `json:"next_purchase_price" msgpack:"next_purchase_price" example:"48000"`
	CostBasis         quote.AssetRecord `json:"cost_basis" msgpack:"cost_basis"`
	PotentialProfit   quote.AssetRecord `json:"potential_profit" msgpack:"potential_profit"`
	PotentialROI      string            `json:"potential_roi" msgpack:"potential_roi" example:"4"`
	Variations        map[string]string `json:"variations" msgpack:"variations"`
	StrategyTag       string            `json:"strategy_tag" msgpack:"strategy_tag" example:"default"`
	Notes             string            `json:"notes" msgpack:"notes"`
	OpenedAt          time.Time         `json:"opened_at" msgpack:"opened_at" example:"2025-01-02T15:04:05Z"`
}

func newPositionResponse(p position.Position) (PositionResponse, error) {
	cost, err := p.CostBasis()
	if err != nil {
		return PositionResponse{}, err
	}
	profit, err := p.PotentialProfit()
	if err != nil {
		return PositionResponse{}, err
	}
	roi, err := p.PotentialROI()
	if err != nil {
		return PositionResponse{}, err
	}
	variations := make(map[string]string, len(p.Variations))
	for k, v := range p.Variations {
		variations[k] = v.String()
	}

	return PositionResponse{
		ID:                p.ID.String(),
		ShortID:           p.ShortID,
		Pair:              p.Pair.String(),
		PurchasePrice:     p.PurchasePrice.Value().String(),
		NumberOfTokens:    p.NumberOfTokens.Record(),
		ExpectedSalePrice: p.ExpectedSalePrice.Value().String(),
		NextPurchasePrice: p.NextPurchasePrice.Value().String(),
		CostBasis:         cost.Record(),
		PotentialProfit:   profit.Record(),
		PotentialROI:      roi.String(),
		Variations:        variations,
		StrategyTag:       p.StrategyTag,
		Notes:             p.Notes,
		OpenedAt:          p.OpenedAt,
	}, nil
}

// GetPosition godoc
// @Summary Get position
// @Description Get an open position with its cost basis and potential profit
// @Tags Positions
// @Produce json
// @Param id path string true "Position ID"
// @Success 200 {object} PositionResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /positions/{id} [get]
func (h *Handler) GetPosition(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid position ID format")
		return
	}

	pos, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPositionNotFound) {
			writeError(w, http.StatusNotFound, "position not found")
			return
		}
		msg := "ups, couldn't get position this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetPosition", "position_id": id}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	res, err := newPositionResponse(pos)
	if err != nil {
		msg := "ups, couldn't value position this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetPosition", "position_id": id}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	writeResponse(w, r, http.StatusOK, res)
}
