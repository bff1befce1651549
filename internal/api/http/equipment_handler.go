package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"opeec-backend/internal/domain"
	"opeec-backend/internal/service"
)

type EquipmentHandler struct {
	svc service.EquipmentService
}

func NewEquipmentHandler(svc service.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{svc: svc}
}

type equipmentResponse struct {
	*domain.Equipment
	ResolvedDurations *domain.EquipmentDurations `json:"resolved_durations,omitempty"`
}

func (h *EquipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in domain.EquipmentInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	equipment, err := h.svc.CreateEquipment(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, equipmentResponse{Equipment: equipment})
}

func (h *EquipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	equipment, durations, err := h.svc.GetEquipment(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, equipmentResponse{Equipment: equipment, ResolvedDurations: durations})
}

func (h *EquipmentHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	var location domain.GeoPoint
	if err := decodeJSON(r, &location); err != nil {
		writeError(w, r, err)
		return
	}
	equipment, err := h.svc.UpdateLocation(r.Context(), mux.Vars(r)["id"], location)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, equipmentResponse{Equipment: equipment})
}
