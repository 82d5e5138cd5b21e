package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"tradequotes/internal/domain"
)

// ClosePosition godoc
// @Summary Close position
// @Description Remove an open position
// @Tags Positions
// @Param id path string true "Position ID"
// @Success 204
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /positions/{id} [delete]
func (h *Handler) ClosePosition(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid position ID format")
		return
	}

	if err = h.service.Close(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrPositionNotFound) {
			writeError(w, http.StatusNotFound, "position not found")
			return
		}
		msg := "ups, couldn't close position this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "ClosePosition", "position_id": id}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
