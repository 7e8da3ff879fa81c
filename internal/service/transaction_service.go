package service

import (
	"context"
	"errors"

	"github.com/markusprap/web-penukaran-koin-sub001/internal/dto"
	"github.com/markusprap/web-penukaran-koin-sub001/internal/model"
	"github.com/markusprap/web-penukaran-koin-sub001/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// runTx runs fn inside a database transaction. A nil db (repository stubs in
// unit tests) executes fn directly.
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ReceiptQueuer enqueues async receipt generation for a recorded pickup.
// Implemented by worker.Dispatcher.
type ReceiptQueuer interface {
	EnqueueReceipt(ctx context.Context, transactionID uuid.UUID) error
}

type TransactionService interface {
	// RecordPickup persists a coin pickup, moves the counted coins into the
	// field user's stock ledger, and enqueues receipt generation.
	RecordPickup(ctx context.Context, userID uuid.UUID, req dto.CreateTransactionRequest) (*dto.TransactionResponse, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]dto.TransactionResponse, error)
	ListAll(ctx context.Context) ([]dto.TransactionResponse, error)
}

type transactionService struct {
	transactions repository.TransactionRepository
	stocks       repository.StockRepository
	stores       repository.StoreRepository
	vehicles     repository.VehicleRepository
	queue        ReceiptQueuer
}

func NewTransactionService(
	transactions repository.TransactionRepository,
	stocks repository.StockRepository,
	stores repository.StoreRepository,
	vehicles repository.VehicleRepository,
	queue ReceiptQueuer,
) TransactionService {
	return &transactionService{
		transactions: transactions,
		stocks:       stocks,
		stores:       stores,
		vehicles:     vehicles,
		queue:        queue,
	}
}

const listLimit = 200

func (s *transactionService) RecordPickup(ctx context.Context, userID uuid.UUID, req dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	storeID, err := uuid.Parse(req.StoreID)
	if err != nil {
		return nil, errors.New("invalid store_id")
	}
	vehicleID, err := uuid.Parse(req.VehicleID)
	if err != nil {
		return nil, errors.New("invalid vehicle_id")
	}
	if _, err := s.stores.FindByID(ctx, storeID); err != nil {
		return nil, errors.New("store not found")
	}
	if _, err := s.vehicles.FindByID(ctx, vehicleID); err != nil {
		return nil, errors.New("vehicle not found")
	}

	// Totals are computed server-side; the client submits counts only.
	total := decimal.Zero
	details := make([]model.TransactionDetail, len(req.Lines))
	for i, line := range req.Lines {
		amount := decimal.NewFromInt(int64(line.Denomination)).
			Mul(decimal.NewFromInt(int64(line.Quantity)))
		details[i] = model.TransactionDetail{
			Denomination: line.Denomination,
			Quantity:     line.Quantity,
			Amount:       amount,
		}
		total = total.Add(amount)
	}

	t := &model.Transaction{
		UserID:      userID,
		StoreID:     storeID,
		VehicleID:   vehicleID,
		TotalAmount: total,
		Details:     details,
	}

	// The pickup and its stock movements commit or roll back as one unit:
	// a failed stock upsert must not leave a committed transaction behind.
	txErr := runTx(ctx, s.transactions.DB(), func(tx *gorm.DB) error {
		if err := s.transactions.CreateWithDetails(ctx, tx, t); err != nil {
			return err
		}
		for _, line := range t.Details {
			if err := s.stocks.AddToUserStock(ctx, tx, userID, line.Denomination, line.Quantity, line.Amount); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	// Receipt generation is best-effort async; the pickup stands either way.
	if s.queue != nil {
		if err := s.queue.EnqueueReceipt(ctx, t.ID); err != nil {
			log.Warn().Err(err).Str("transaction_id", t.ID.String()).Msg("failed to enqueue receipt job")
		}
	}

	resp := toTransactionResponse(t)
	return &resp, nil
}

func (s *transactionService) ListByUser(ctx context.Context, userID uuid.UUID) ([]dto.TransactionResponse, error) {
	txs, err := s.transactions.ListByUser(ctx, userID, listLimit)
	if err != nil {
		return nil, err
	}
	return toTransactionResponses(txs), nil
}

func (s *transactionService) ListAll(ctx context.Context) ([]dto.TransactionResponse, error) {
	txs, err := s.transactions.List(ctx, listLimit)
	if err != nil {
		return nil, err
	}
	return toTransactionResponses(txs), nil
}

func toTransactionResponses(txs []model.Transaction) []dto.TransactionResponse {
	resp := make([]dto.TransactionResponse, len(txs))
	for i := range txs {
		resp[i] = toTransactionResponse(&txs[i])
	}
	return resp
}

func toTransactionResponse(t *model.Transaction) dto.TransactionResponse {
	lines := make([]dto.TransactionLineResponse, len(t.Details))
	for i, d := range t.Details {
		lines[i] = dto.TransactionLineResponse{
			Denomination: d.Denomination,
			Quantity:     d.Quantity,
			Amount:       d.Amount,
		}
	}
	return dto.TransactionResponse{
		ID:          t.ID.String(),
		UserID:      t.UserID.String(),
		StoreID:     t.StoreID.String(),
		VehicleID:   t.VehicleID.String(),
		TotalAmount: t.TotalAmount,
		ReceiptURL:  t.ReceiptURL,
		CreatedAt:   t.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		Lines:       lines,
	}
}
