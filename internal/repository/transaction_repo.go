package repository

import (
	"context"

	"github.com/markusprap/web-penukaran-koin-sub001/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionRepository interface {
	// CreateWithDetails persists the transaction and its lines inside the
	// caller-supplied transaction, so the pickup and its stock movements
	// commit or roll back together.
	CreateWithDetails(ctx context.Context, tx *gorm.DB, t *model.Transaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]model.Transaction, error)
	List(ctx context.Context, limit int) ([]model.Transaction, error)
	SetReceiptURL(ctx context.Context, id uuid.UUID, url string) error
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type transactionRepo struct{ db *gorm.DB }

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) DB() *gorm.DB { return r.db }

func (r *transactionRepo) CreateWithDetails(ctx context.Context, tx *gorm.DB, t *model.Transaction) error {
	// GORM creates the Details association rows alongside the header.
	return tx.WithContext(ctx).Create(t).Error
}

func (r *transactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	var t model.Transaction
	err := r.db.WithContext(ctx).Preload("Details").Preload("Store").First(&t, id).Error
	return &t, err
}

func (r *transactionRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]model.Transaction, error) {
	var txs []model.Transaction
	err := r.db.WithContext(ctx).
		Preload("Details").
		Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).
		Find(&txs).Error
	return txs, err
}

func (r *transactionRepo) List(ctx context.Context, limit int) ([]model.Transaction, error) {
	var txs []model.Transaction
	err := r.db.WithContext(ctx).
		Preload("Details").
		Order("created_at DESC").Limit(limit).
		Find(&txs).Error
	return txs, err
}

func (r *transactionRepo) SetReceiptURL(ctx context.Context, id uuid.UUID, url string) error {
	return r.db.WithContext(ctx).
		Model(&model.Transaction{}).Where("id = ?", id).
		Update("receipt_url", url).Error
}
