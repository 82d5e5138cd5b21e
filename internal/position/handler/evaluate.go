package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"tradequotes/internal/quote"
)

type OperandInput struct {
	Kind  string          `json:"kind" example:"base" enums:"scalar,base,quote,price"`
	Value decimal.Decimal `json:"value" swaggertype:"string" example:"0.5"`
}

type EvaluateRequest struct {
	Left  OperandInput `json:"left"`
	Op    string       `json:"op" example:"mul" enums:"add,sub,mul,div,compare"`
	Right OperandInput `json:"right"`
}

// OperandResponse is a scalar, an asset or a price. Symbol and Precision are
// set for assets, BaseSymbol and QuoteSymbol for prices.
type OperandResponse struct {
	Kind        string `json:"kind" msgpack:"kind" example:"asset"`
	Value       string `json:"value" msgpack:"value" example:"25000.00"`
	Symbol      string `json:"symbol,omitempty" msgpack:"symbol,omitempty" example:"USDT"`
	Precision   *int32 `json:"precision,omitempty" msgpack:"precision,omitempty" example:"2"`
	BaseSymbol  string `json:"base_symbol,omitempty" msgpack:"base_symbol,omitempty"`
	QuoteSymbol string `json:"quote_symbol,omitempty" msgpack:"quote_symbol,omitempty"`
}

// Evaluate godoc
// @Summary Evaluate an expression on a pair
// @Description Apply add, sub, mul, div or compare to two operands bound to the pair. Base and quote operands are truncated to their symbol's precision.
// @Tags Algebra
// @Accept json
// @Produce json
// @Param base path string true "Base symbol" example(BTC)
// @Param quote path string true "Quote symbol" example(USDT)
// @Param request body EvaluateRequest true "Expression"
// @Success 200 {object} OperandResponse
// @Failure 400 {object} errorResponse "validation, type or currency mismatch"
// @Failure 422 {object} errorResponse "division by zero"
// @Router /pairs/{base}/{quote}/evaluate [post]
func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	pair, err := h.pairs.Resolve(pairSpec(chi.URLParam(r, "base"), chi.URLParam(r, "quote")))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req EvaluateRequest
	if err = decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	left, err := buildOperand(pair, req.Left)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	right, err := buildOperand(pair, req.Right)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := apply(req.Op, left, right)
	if err != nil {
		if status, ok := clientStatus(err); ok {
			writeError(w, status, err.Error())
			return
		}
		msg := "ups, couldn't evaluate expression this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "Evaluate", "pair": pair.String(), "op": req.Op}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeResponse(w, r, http.StatusOK, newOperandResponse(result))
}

func buildOperand(pair quote.BotPair, in OperandInput) (quote.Operand, error) {
	switch in.Kind {
	case "scalar":
		return quote.NewScalar(in.Value), nil
	case "base":
		return pair.CreateBaseAsset(in.Value), nil
	case "quote":
		return pair.CreateQuoteAsset(in.Value), nil
	case "price":
		return pair.CreatePrice(in.Value), nil
	}
	return nil, fmt.Errorf("%w: unknown operand kind %q", quote.ErrValidation, in.Kind)
}

func apply(op string, left, right quote.Operand) (quote.Operand, error) {
	switch op {
	case "add":
		return quote.Add(left, right)
	case "sub":
		return quote.Sub(left, right)
	case "mul":
		return quote.Mul(left, right)
	case "div":
		return quote.Div(left, right)
	case "compare":
		c, err := quote.Compare(left, right)
		if err != nil {
			return nil, err
		}
		return quote.NewScalar(decimal.NewFromInt(int64(c))), nil
	}
	return nil, fmt.Errorf("%w: unknown operation %q", quote.ErrValidation, op)
}

func newOperandResponse(o quote.Operand) OperandResponse {
	switch v := o.(type) {
	case quote.Asset:
		rec := v.Record()
		return OperandResponse{Kind: v.Kind().String(), Value: rec.Amount, Symbol: rec.Symbol, Precision: &rec.Precision}
	case quote.Price:
		rec := v.Record()
		return OperandResponse{Kind: v.Kind().String(), Value: rec.Price, BaseSymbol: rec.BaseSymbol, QuoteSymbol: rec.QuoteSymbol}
	case quote.Scalar:
		return OperandResponse{Kind: v.Kind().String(), Value: v.String()}
	}
	return OperandResponse{}
}
