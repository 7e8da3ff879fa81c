package repository

import (
	"context"

	"github.com/markusprap/web-penukaran-koin-sub001/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StockRepository interface {
	ListUserStock(ctx context.Context, userID uuid.UUID) ([]model.UserStock, error)
	ListWarehouseStock(ctx context.Context) ([]model.WarehouseStock, error)
	// AddToUserStock upserts quantity/amount onto the user's denomination row,
	// inside the caller-supplied transaction.
	AddToUserStock(ctx context.Context, tx *gorm.DB, userID uuid.UUID, denomination, quantity int, amount decimal.Decimal) error
	// DepositUserStock moves the user's entire held stock into the warehouse
	// ledger and zeroes the user rows, atomically.
	DepositUserStock(ctx context.Context, userID uuid.UUID) error
}

type stockRepo struct{ db *gorm.DB }

func NewStockRepository(db *gorm.DB) StockRepository { return &stockRepo{db: db} }

func (r *stockRepo) ListUserStock(ctx context.Context, userID uuid.UUID) ([]model.UserStock, error) {
	var lines []model.UserStock
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("denomination").
		Find(&lines).Error
	return lines, err
}

func (r *stockRepo) ListWarehouseStock(ctx context.Context) ([]model.WarehouseStock, error) {
	var lines []model.WarehouseStock
	err := r.db.WithContext(ctx).Order("denomination").Find(&lines).Error
	return lines, err
}

func (r *stockRepo) AddToUserStock(ctx context.Context, tx *gorm.DB, userID uuid.UUID, denomination, quantity int, amount decimal.Decimal) error {
	stock := &model.UserStock{
		UserID:       userID,
		Denomination: denomination,
		Quantity:     quantity,
		Amount:       amount,
	}
	return tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "denomination"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("user_stocks.quantity + ?", quantity),
			"amount":   gorm.Expr("user_stocks.amount + ?", amount),
		}),
	}).Create(stock).Error
}

func (r *stockRepo) DepositUserStock(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var lines []model.UserStock
		if err := tx.Where("user_id = ? AND quantity > 0", userID).Find(&lines).Error; err != nil {
			return err
		}
		for _, line := range lines {
			wh := &model.WarehouseStock{
				Denomination: line.Denomination,
				Quantity:     line.Quantity,
				Amount:       line.Amount,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "denomination"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"quantity": gorm.Expr("warehouse_stocks.quantity + ?", line.Quantity),
					"amount":   gorm.Expr("warehouse_stocks.amount + ?", line.Amount),
				}),
			}).Create(wh).Error; err != nil {
				return err
			}
		}
		return tx.Model(&model.UserStock{}).
			Where("user_id = ?", userID).
			Updates(map[string]interface{}{"quantity": 0, "amount": decimal.Zero}).Error
	})
}
