package service

import (
	"context"

	"github.com/markusprap/web-penukaran-koin-sub001/internal/dto"
	"github.com/markusprap/web-penukaran-koin-sub001/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type StockService interface {
	UserStock(ctx context.Context, userID uuid.UUID) (*dto.UserStockResponse, error)
	WarehouseStock(ctx context.Context) (*dto.WarehouseStockResponse, error)
	// Deposit moves the user's entire held stock into the warehouse ledger.
	Deposit(ctx context.Context, userID uuid.UUID) error
}

type stockService struct {
	repo repository.StockRepository
}

func NewStockService(repo repository.StockRepository) StockService {
	return &stockService{repo: repo}
}

func (s *stockService) UserStock(ctx context.Context, userID uuid.UUID) (*dto.UserStockResponse, error) {
	rows, err := s.repo.ListUserStock(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := &dto.UserStockResponse{UserID: userID.String(), Total: decimal.Zero}
	for _, row := range rows {
		resp.Lines = append(resp.Lines, dto.StockLineResponse{
			Denomination: row.Denomination,
			Quantity:     row.Quantity,
			Amount:       row.Amount,
		})
		resp.Total = resp.Total.Add(row.Amount)
	}
	return resp, nil
}

func (s *stockService) WarehouseStock(ctx context.Context) (*dto.WarehouseStockResponse, error) {
	rows, err := s.repo.ListWarehouseStock(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.WarehouseStockResponse{Total: decimal.Zero}
	for _, row := range rows {
		resp.Lines = append(resp.Lines, dto.StockLineResponse{
			Denomination: row.Denomination,
			Quantity:     row.Quantity,
			Amount:       row.Amount,
		})
		resp.Total = resp.Total.Add(row.Amount)
	}
	return resp, nil
}

func (s *stockService) Deposit(ctx context.Context, userID uuid.UUID) error {
	return s.repo.DepositUserStock(ctx, userID)
}
