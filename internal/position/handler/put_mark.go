package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"tradequotes/internal/quote"
)

type PutMarkRequest struct {
	Price decimal.Decimal `json:"price" swaggertype:"string" example:"51000"`
}

type PutMarkResponse struct {
	Mark       quote.PriceRecord `json:"mark" msgpack:"mark"`
	RecordedAt time.Time         `json:"recorded_at" msgpack:"recorded_at" example:"2025-01-02T15:04:05Z"`
}

// PutMark godoc
// @Summary Record mark price
// @Description Store the latest price of a pair. The trailing-stop job raises expected sale prices from it.
// @Tags Marks
// @Accept json
// @Produce json
// @Param base path string true "Base symbol" example(BTC)
// @Param quote path string true "Quote symbol" example(USDT)
// @Param request body PutMarkRequest true "Mark"
// @Success 200 {object} PutMarkResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /pairs/{base}/{quote}/mark [put]
func (h *Handler) PutMark(w http.ResponseWriter, r *http.Request) {
	spec := pairSpec(chi.URLParam(r, "base"), chi.URLParam(r, "quote"))

	var req PutMarkRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	mark, err := h.service.RecordMark(r.Context(), spec, req.Price)
	if err != nil {
		if status, ok := clientStatus(err); ok {
			writeError(w, status, err.Error())
			return
		}
		msg := "ups, couldn't record mark this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "PutMark", "pair": spec}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeResponse(w, r, http.StatusOK, PutMarkResponse{Mark: mark.Record(), RecordedAt: time.Now().UTC()})
}
