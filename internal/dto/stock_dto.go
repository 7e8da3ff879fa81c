package dto

import "github.com/shopspring/decimal"

type StockLineResponse struct {
	Denomination int             `json:"denomination"`
	Quantity     int             `json:"quantity"`
	Amount       decimal.Decimal `json:"amount"`
}

type UserStockResponse struct {
	UserID string              `json:"user_id"`
	Total  decimal.Decimal     `json:"total"`
	Lines  []StockLineResponse `json:"lines"`
}

type WarehouseStockResponse struct {
	Total decimal.Decimal     `json:"total"`
	Lines []StockLineResponse `json:"lines"`
}

// DepositRequest moves a field user's entire held stock into the warehouse.
type DepositRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}
