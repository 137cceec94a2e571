// Package http exposes the admin REST API consumed by the dashboard.
package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"staynest-admin-backend/internal/security"
	"staynest-admin-backend/internal/service"
)

// Services bundles the service dependencies the router wires up.
type Services struct {
	Auth      service.AuthService
	Booking   service.BookingService
	Ledger    service.LedgerService
	Payout    service.PayoutService
	Settings  service.SettingsService
	Report    service.ReportService
	Directory service.DirectoryService
}

// NewRouter builds the API router. Everything under /api/v1 except login
// requires a valid admin token.
func NewRouter(svcs Services, tokens security.TokenManager) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	authHandler := NewAuthHandler(svcs.Auth)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	protected := api.NewRoute().Subrouter()
	protected.Use(AuthMiddleware(tokens))

	bookingHandler := NewBookingHandler(svcs.Booking)
	protected.HandleFunc("/bookings", bookingHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id}", bookingHandler.Get).Methods(http.MethodGet)

	ledgerHandler := NewLedgerHandler(svcs.Ledger)
	protected.HandleFunc("/transactions", ledgerHandler.ListTransactions).Methods(http.MethodGet)
	protected.HandleFunc("/balance", ledgerHandler.GetBalance).Methods(http.MethodGet)

	payoutHandler := NewPayoutHandler(svcs.Payout)
	protected.HandleFunc("/payouts", payoutHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/payouts", payoutHandler.Record).Methods(http.MethodPost)

	settingsHandler := NewSettingsHandler(svcs.Settings)
	protected.HandleFunc("/settings", settingsHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/settings/fee", settingsHandler.UpdateFee).Methods(http.MethodPut)

	directoryHandler := NewDirectoryHandler(svcs.Directory)
	protected.HandleFunc("/listings", directoryHandler.Listings).Methods(http.MethodGet)
	protected.HandleFunc("/listings/{id}", directoryHandler.Listing).Methods(http.MethodGet)
	protected.HandleFunc("/users", directoryHandler.Users).Methods(http.MethodGet)

	reportHandler := NewReportHandler(svcs.Report)
	protected.HandleFunc("/reports/bookings", reportHandler.Bookings).Methods(http.MethodGet)
	protected.HandleFunc("/reports/transactions", reportHandler.Transactions).Methods(http.MethodGet)

	return r
}
