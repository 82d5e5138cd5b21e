package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vmihailenco/msgpack/v5"

	"tradequotes/internal/domain"
	"tradequotes/internal/position"
	"tradequotes/internal/quote"
)

const msgpackContentType = "application/msgpack"

type PositionService interface {
	Open(ctx context.Context, pairSpec string, params position.Params) (position.Position, error)
	Get(ctx context.Context, id uuid.UUID) (position.Position, error)
	Close(ctx context.Context, id uuid.UUID) error
	Summary(ctx context.Context, pairSpec string, price decimal.Decimal) (position.Summary, error)
	RecordMark(ctx context.Context, pairSpec string, price decimal.Decimal) (quote.Price, error)
}

type PairResolver interface {
	Resolve(spec string) (quote.BotPair, error)
	Precisions() quote.PrecisionTable
}

type Handler struct {
	service PositionService
	pairs   PairResolver
}

func NewPositionHandler(service PositionService, pairs PairResolver) *Handler {
	return &Handler{service: service, pairs: pairs}
}

type errorResponse struct {
	Error string `json:"error" msgpack:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: errorMsg,
	})
}

// writeResponse encodes res as msgpack when the client asks for it, JSON otherwise.
func writeResponse(w http.ResponseWriter, r *http.Request, statusCode int, res any) {
	if strings.Contains(r.Header.Get("Accept"), msgpackContentType) {
		w.Header().Set("Content-Type", msgpackContentType)
		w.WriteHeader(statusCode)
		_ = msgpack.NewEncoder(w).Encode(res)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(res)
}

func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// pairSpec joins the {base} and {quote} route params into "BASE/QUOTE".
func pairSpec(base, quote string) string {
	return strings.ToUpper(strings.TrimSpace(base)) + "/" + strings.ToUpper(strings.TrimSpace(quote))
}

// clientStatus maps algebra and store errors to a status code. ok is false
// for errors the client did not cause.
func clientStatus(err error) (int, bool) {
	switch {
	case errors.Is(err, quote.ErrDivisionByZero):
		return http.StatusUnprocessableEntity, true
	case errors.Is(err, quote.ErrValidation),
		errors.Is(err, quote.ErrTypeMismatch),
		errors.Is(err, quote.ErrCurrencyMismatch),
		errors.Is(err, quote.ErrConstructionDiscipline):
		return http.StatusBadRequest, true
	case errors.Is(err, domain.ErrPositionNotFound),
		errors.Is(err, domain.ErrMarkNotFound):
		return http.StatusNotFound, true
	}
	return http.StatusInternalServerError, false
}
