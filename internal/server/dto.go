package server

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ggodin1981/NextGenSaaSEnterprisePlatform-Backend/internal/models"
)

type loginRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string      `json:"token"`
	UserName string      `json:"userName"`
	Role     models.Role `json:"role"`
	TenantID string      `json:"tenantId"`
}

type createTransactionRequest struct {
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
}

type transactionDTO struct {
	ID          string                 `json:"id"`
	Date        time.Time              `json:"date"`
	Amount      decimal.Decimal        `json:"amount"`
	Type        models.TransactionType `json:"type"`
	Description string                 `json:"description"`
}

func toTransactionDTO(t *models.Transaction) transactionDTO {
	return transactionDTO{
		ID:          t.ID,
		Date:        t.Date,
		Amount:      t.Amount,
		Type:        t.Type,
		Description: t.Description,
	}
}

type insightResponse struct {
	Insight string `json:"insight"`
}
