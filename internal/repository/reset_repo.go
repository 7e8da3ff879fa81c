package repository

import (
	"context"
	"fmt"

	"github.com/markusprap/web-penukaran-koin-sub001/internal/model"

	"gorm.io/gorm"
)

// resetTargets lists the operational tables wiped by the reset, children
// before parents so referential-integrity constraints are satisfied.
// User and Store are master data and must never appear here.
var resetTargets = []struct {
	Name  string
	Model interface{}
}{
	{"transaction_details", &model.TransactionDetail{}},
	{"transactions", &model.Transaction{}},
	{"route_assignments", &model.RouteAssignment{}},
	{"user_stocks", &model.UserStock{}},
	{"warehouse_stocks", &model.WarehouseStock{}},
	{"vehicles", &model.Vehicle{}},
}

// TableResult reports one table wiped during a reset.
type TableResult struct {
	Table   string
	Deleted int64
}

type ResetRepository interface {
	// Reset irreversibly deletes every row in the operational tables inside
	// a single database transaction: either all tables are cleared or none.
	Reset(ctx context.Context) ([]TableResult, error)
}

type resetRepo struct{ db *gorm.DB }

func NewResetRepository(db *gorm.DB) ResetRepository { return &resetRepo{db: db} }

func (r *resetRepo) Reset(ctx context.Context) ([]TableResult, error) {
	results := make([]TableResult, 0, len(resetTargets))
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, target := range resetTargets {
			res := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(target.Model)
			if res.Error != nil {
				return fmt.Errorf("delete %s: %w", target.Name, res.Error)
			}
			results = append(results, TableResult{Table: target.Name, Deleted: res.RowsAffected})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
