// Package server wires the REST surface: routing, authorization and the
// handlers that map HTTP verbs onto storage operations.
package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ggodin1981/NextGenSaaSEnterprisePlatform-Backend/internal/auth"
	"github.com/ggodin1981/NextGenSaaSEnterprisePlatform-Backend/internal/httpx"
	"github.com/ggodin1981/NextGenSaaSEnterprisePlatform-Backend/internal/middleware"
	"github.com/ggodin1981/NextGenSaaSEnterprisePlatform-Backend/internal/storage"
)

// Server ties the store, token manager and router together.
type Server struct {
	store      storage.Store
	jwtManager *auth.JWTManager
	router     *mux.Router
}

// New builds the server and its route table.
func New(store storage.Store, jwtManager *auth.JWTManager) *Server {
	s := &Server{
		store:      store,
		jwtManager: jwtManager,
	}

	r := mux.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(middleware.Logging)

	r.HandleFunc("/healthz", s.health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// Public
	r.HandleFunc("/api/auth/login", s.login).Methods(http.MethodPost)

	// Protected: valid token required; tenant scope resolved per request.
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.RequireAuth(jwtManager))

	api.HandleFunc("/accounts", s.listAccounts).Methods(http.MethodGet)
	api.HandleFunc("/accounts/{accountId}/transactions", s.listTransactions).Methods(http.MethodGet)
	api.HandleFunc("/accounts/{accountId}/transactions", s.createTransaction).Methods(http.MethodPost)
	api.HandleFunc("/accounts/{accountId}/ai-insight", s.accountInsight).Methods(http.MethodGet)

	// Admin-only: cross-tenant view, gated on the role claim alone.
	admin := api.PathPrefix("/tenants").Subrouter()
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("", s.listTenants).Methods(http.MethodGet)

	s.router = r
	return s
}

// Router returns the HTTP handler for the server.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
