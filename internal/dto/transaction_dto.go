package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// TransactionLineRequest is one coin denomination counted during a pickup.
type TransactionLineRequest struct {
	Denomination int `json:"denomination" validate:"required,gt=0"`
	Quantity     int `json:"quantity"     validate:"required,gt=0"`
}

type CreateTransactionRequest struct {
	StoreID   string                   `json:"store_id"   validate:"required,uuid"`
	VehicleID string                   `json:"vehicle_id" validate:"required,uuid"`
	Lines     []TransactionLineRequest `json:"lines"      validate:"required,min=1,dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type TransactionLineResponse struct {
	Denomination int             `json:"denomination"`
	Quantity     int             `json:"quantity"`
	Amount       decimal.Decimal `json:"amount"`
}

type TransactionResponse struct {
	ID          string                    `json:"id"`
	UserID      string                    `json:"user_id"`
	StoreID     string                    `json:"store_id"`
	VehicleID   string                    `json:"vehicle_id"`
	TotalAmount decimal.Decimal           `json:"total_amount"`
	ReceiptURL  *string                   `json:"receipt_url"`
	CreatedAt   string                    `json:"created_at"`
	Lines       []TransactionLineResponse `json:"lines,omitempty"`
}
