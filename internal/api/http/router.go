package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"opeec-backend/internal/service"

	ierr "opeec-backend/internal/errors"
)

// Services are the dependencies the HTTP API is built on.
type Services struct {
	Settings  service.SettingsService
	Catalog   service.CatalogService
	Pricing   service.PricingService
	Equipment service.EquipmentService
	Orders    service.OrderService
}

// NewRouter builds the /api/v1 router.
func NewRouter(svc Services) *mux.Router {
	router := mux.NewRouter()
	router.Use(recoverer, requestLogger)
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: errorDetail{Code: ierr.ErrCodeNotFound, Message: "route not found"}})
	})

	api := router.PathPrefix("/api/v1").Subrouter()

	settings := NewSettingsHandler(svc.Settings)
	api.HandleFunc("/settings/percentages", settings.Get).Methods(http.MethodGet)
	api.HandleFunc("/settings/percentages", settings.Upsert).Methods(http.MethodPut)

	catalog := NewCatalogHandler(svc.Catalog)
	api.HandleFunc("/catalog/durations", catalog.List).Methods(http.MethodGet)
	api.HandleFunc("/catalog/durations", catalog.Upsert).Methods(http.MethodPut)
	api.HandleFunc("/catalog/durations/{name}", catalog.Get).Methods(http.MethodGet)

	pricing := NewPricingHandler(svc.Pricing)
	api.HandleFunc("/pricing/quote", pricing.Quote).Methods(http.MethodPost)

	equipment := NewEquipmentHandler(svc.Equipment)
	api.HandleFunc("/equipment", equipment.Create).Methods(http.MethodPost)
	api.HandleFunc("/equipment/{id}", equipment.Get).Methods(http.MethodGet)
	api.HandleFunc("/equipment/{id}/location", equipment.UpdateLocation).Methods(http.MethodPut)

	orders := NewOrderHandler(svc.Orders)
	api.HandleFunc("/orders", orders.Create).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id}", orders.Get).Methods(http.MethodGet)

	return router
}
