package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ggodin1981/NextGenSaaSEnterprisePlatform-Backend/internal/auth"
	"github.com/ggodin1981/NextGenSaaSEnterprisePlatform-Backend/internal/httpx"
	"github.com/ggodin1981/NextGenSaaSEnterprisePlatform-Backend/internal/insight"
	"github.com/ggodin1981/NextGenSaaSEnterprisePlatform-Backend/internal/models"
	"github.com/ggodin1981/NextGenSaaSEnterprisePlatform-Backend/internal/tenant"
)

// login authenticates a username/password pair and issues a signed
// token embedding the username, role and tenant id.
func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	user, err := s.store.GetUserByName(r.Context(), req.UserName)
	if err != nil {
		slog.Error("Login lookup failed", "user", req.UserName, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error", "")
		return
	}
	if user == nil {
		httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized", auth.ErrInvalidCredentials.Error())
		return
	}

	if err := auth.VerifyPassword(user.PasswordHash, req.Password); err != nil {
		slog.Warn("Login failed", "user", req.UserName)
		httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized", auth.ErrInvalidCredentials.Error())
		return
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		slog.Error("Failed to generate token", "user", user.UserName, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error", "")
		return
	}

	slog.Info("User logged in", "user", user.UserName, "tenant_id", user.TenantID)
	httpx.WriteJSON(w, http.StatusOK, loginResponse{
		Token:    token,
		UserName: user.UserName,
		Role:     user.Role,
		TenantID: user.TenantID,
	})
}

// requireTenant returns the resolved tenant scope or writes a
// structured 401 and reports failure.
func (s *Server) requireTenant(w http.ResponseWriter, r *http.Request) (string, bool) {
	tenantID, ok := tenant.FromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, tenant.ErrUnresolved.Error(),
			"Login or supply a valid "+tenant.Header+" header")
		return "", false
	}
	return tenantID, true
}

// tenantAccount loads the account from the route and verifies it
// belongs to the resolved tenant. Cross-tenant access yields the same
// 404 as true absence so existence never leaks across tenants.
func (s *Server) tenantAccount(w http.ResponseWriter, r *http.Request, tenantID string) (*models.Account, bool) {
	accountID := mux.Vars(r)["accountId"]

	account, err := s.store.GetAccount(r.Context(), accountID)
	if err != nil {
		slog.Error("Account lookup failed", "account_id", accountID, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error", "")
		return nil, false
	}
	if account == nil || account.TenantID != tenantID {
		httpx.WriteError(w, http.StatusNotFound, "Not found", "")
		return nil, false
	}

	return account, true
}

// listAccounts returns the accounts owned by the resolved tenant.
func (s *Server) listAccounts(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := s.requireTenant(w, r)
	if !ok {
		return
	}

	accounts, err := s.store.ListAccountsByTenant(r.Context(), tenantID)
	if err != nil {
		slog.Error("ListAccounts failed", "tenant_id", tenantID, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error", "")
		return
	}
	if accounts == nil {
		accounts = []*models.Account{}
	}

	httpx.WriteJSON(w, http.StatusOK, accounts)
}

// listTransactions returns an account's transactions, newest first.
func (s *Server) listTransactions(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := s.requireTenant(w, r)
	if !ok {
		return
	}

	account, ok := s.tenantAccount(w, r, tenantID)
	if !ok {
		return
	}

	txns, err := s.store.ListTransactionsByAccount(r.Context(), account.ID)
	if err != nil {
		slog.Error("ListTransactions failed", "account_id", account.ID, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error", "")
		return
	}

	dtos := make([]transactionDTO, len(txns))
	for i, t := range txns {
		dtos[i] = toTransactionDTO(t)
	}

	httpx.WriteJSON(w, http.StatusOK, dtos)
}

// createTransaction records a credit or debit against an account and
// adjusts the account balance in the same storage commit.
func (s *Server) createTransaction(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := s.requireTenant(w, r)
	if !ok {
		return
	}

	account, ok := s.tenantAccount(w, r, tenantID)
	if !ok {
		return
	}

	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	txnType, ok := models.ParseTransactionType(req.Type)
	if !ok {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid transaction type", "type must be Credit or Debit")
		return
	}
	if req.Amount.IsNegative() {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid amount", "amount must be a non-negative magnitude")
		return
	}

	txn := &models.Transaction{
		AccountID:   account.ID,
		Date:        req.Date,
		Amount:      req.Amount,
		Type:        txnType,
		Description: req.Description,
	}

	if err := s.store.CreateTransaction(r.Context(), txn, txn.SignedAmount()); err != nil {
		slog.Error("CreateTransaction failed", "account_id", account.ID, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error", "")
		return
	}

	slog.Info("Transaction created",
		"transaction_id", txn.ID,
		"account_id", account.ID,
		"type", txn.Type,
	)
	httpx.WriteJSON(w, http.StatusCreated, toTransactionDTO(txn))
}

// accountInsight returns the templated activity summary for an account.
func (s *Server) accountInsight(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := s.requireTenant(w, r)
	if !ok {
		return
	}

	account, ok := s.tenantAccount(w, r, tenantID)
	if !ok {
		return
	}

	txns, err := s.store.ListTransactionsByAccount(r.Context(), account.ID)
	if err != nil {
		slog.Error("Insight data load failed", "account_id", account.ID, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error", "")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, insightResponse{
		Insight: insight.BuildAccountInsight(account, txns),
	})
}

// listTenants is the admin-only cross-tenant view.
func (s *Server) listTenants(w http.ResponseWriter, r *http.Request) {
	tenants, err := s.store.ListTenants(r.Context())
	if err != nil {
		slog.Error("ListTenants failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error", "")
		return
	}
	if tenants == nil {
		tenants = []*models.Tenant{}
	}

	httpx.WriteJSON(w, http.StatusOK, tenants)
}
