package http

import (
	"net/http"

	"opeec-backend/internal/domain"
	"opeec-backend/internal/service"
)

type PricingHandler struct {
	svc service.PricingService
}

func NewPricingHandler(svc service.PricingService) *PricingHandler {
	return &PricingHandler{svc: svc}
}

func (h *PricingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var in domain.FeeInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	fees, err := h.svc.Quote(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, fees)
}
