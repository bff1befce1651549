package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"opeec-backend/internal/domain"
	"opeec-backend/internal/service"
)

type CatalogHandler struct {
	svc service.CatalogService
}

func NewCatalogHandler(svc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.ListCatalogEntries(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if entries == nil {
		entries = []domain.DurationCatalogEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := domain.CatalogName(mux.Vars(r)["name"])
	entry, err := h.svc.GetCatalogEntry(r.Context(), name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// Upsert applies a batch. The status reflects the batch outcome: 200 when
// every entry applied, 207 when some did, 400 when none did.
func (h *CatalogHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var inputs []domain.CatalogEntryInput
	if err := decodeJSON(r, &inputs); err != nil {
		writeError(w, r, err)
		return
	}
	result, err := h.svc.UpsertCatalogEntries(r.Context(), inputs)
	if err != nil {
		writeError(w, r, err)
		return
	}

	status := http.StatusOK
	switch {
	case len(result.Failed) > 0 && len(result.Applied) == 0:
		status = http.StatusBadRequest
	case len(result.Failed) > 0:
		status = http.StatusMultiStatus
	}
	writeJSON(w, status, result)
}
