package internal

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"supplier-vendor-api/internal/handlers"
	"supplier-vendor-api/internal/ledger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Server struct {
	Ledger  *ledger.Ledger
	Router  *chi.Mux
	Metrics *Metrics
}

func NewServer(led *ledger.Ledger) *Server {
	s := &Server{
		Ledger:  led,
		Router:  chi.NewRouter(),
		Metrics: NewMetrics(),
	}

	// Middleware must be registered before any route.
	s.Router.Use(middleware.RequestID)
	s.Router.Use(middleware.Logger)
	s.Router.Use(middleware.Recoverer)

	metricsEnabled := os.Getenv("ENABLE_METRICS") == "true"
	if metricsEnabled {
		s.Router.Use(s.Metrics.Middleware())
	}

	s.Router.Get("/", s.index)
	s.Router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		if _, err := w.Write([]byte("ok")); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
	if metricsEnabled {
		s.Router.Get("/metrics", s.Metrics.Handler().ServeHTTP)
	}

	s.Router.Post("/vendor/create", s.createVendor)
	s.Router.Post("/purchase/add", s.addPurchase)
	s.Router.Post("/invoice/create", s.createInvoice)
	s.Router.Post("/payment/pay", s.payInvoice)
	s.Router.Get("/vendors", s.listVendors)

	reportsHandler := handlers.NewReportsHandler(led)
	s.Router.Get("/reports/vendors.xlsx", reportsHandler.DownloadVendorReport)

	return s
}

func (s *Server) index(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Supplier Vendor Management Backend Running",
		"endpoints": []string{
			"/vendors",
			"/vendor/create",
			"/purchase/add",
			"/invoice/create",
			"/payment/pay",
		},
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

// writeLedgerError maps the ledger error taxonomy onto HTTP statuses:
// validation 400, missing records 404, repeated payment 409.
func (s *Server) writeLedgerError(w http.ResponseWriter, err error) {
	var ve *ledger.ValidationError
	var nf *ledger.NotFoundError
	switch {
	case errors.As(err, &ve):
		http.Error(w, ve.Error(), http.StatusBadRequest)
	case errors.As(err, &nf):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, ledger.ErrAlreadyPaid):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
