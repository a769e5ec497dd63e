package http

import (
	"net/http"

	"roomreserve-backend/internal/security"
	"roomreserve-backend/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter wires every endpoint. Admin-only routes sit behind RequireAdmin;
// everything except auth requires a valid access token.
func NewRouter(
	tokens security.TokenManager,
	authSvc service.AuthService,
	userSvc service.UserService,
	catalogSvc service.CatalogService,
	reservationSvc service.ReservationService,
) *mux.Router {
	authHandler := NewAuthHandler(authSvc, userSvc)
	resourceHandler := NewResourceHandler(catalogSvc)
	reservationHandler := NewReservationHandler(reservationSvc)
	authMW := NewAuthMiddleware(tokens)

	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods(http.MethodPost)
	api.HandleFunc("/auth/reset-password", authHandler.ResetPassword).Methods(http.MethodPost)

	// Authenticated
	authed := api.NewRoute().Subrouter()
	authed.Use(authMW.Authenticate)
	authed.HandleFunc("/resources", resourceHandler.List).Methods(http.MethodGet)
	authed.HandleFunc("/resources/available", resourceHandler.FindAvailable).Methods(http.MethodGet)
	authed.HandleFunc("/resources/{id:[0-9]+}", resourceHandler.Get).Methods(http.MethodGet)
	authed.HandleFunc("/reservations", reservationHandler.Create).Methods(http.MethodPost)
	authed.HandleFunc("/reservations", reservationHandler.List).Methods(http.MethodGet)
	authed.HandleFunc("/reservations/{id:[0-9]+}", reservationHandler.Get).Methods(http.MethodGet)
	authed.HandleFunc("/reservations/{id:[0-9]+}/cancel", reservationHandler.Cancel).Methods(http.MethodPost)

	// Administrators only
	admin := authed.NewRoute().Subrouter()
	admin.Use(RequireAdmin)
	admin.HandleFunc("/resources", resourceHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/resources/{id:[0-9]+}", resourceHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/resources/{id:[0-9]+}/features", resourceHandler.AddFeature).Methods(http.MethodPost)
	admin.HandleFunc("/resources/{id:[0-9]+}/features/{tag}", resourceHandler.RemoveFeature).Methods(http.MethodDelete)
	admin.HandleFunc("/reservations/{id:[0-9]+}/confirm", reservationHandler.Confirm).Methods(http.MethodPost)
	admin.HandleFunc("/reservations/{id:[0-9]+}/reject", reservationHandler.Reject).Methods(http.MethodPost)
	admin.HandleFunc("/reservations/{id:[0-9]+}", reservationHandler.Delete).Methods(http.MethodDelete)

	return r
}
