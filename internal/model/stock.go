package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserStock is the per-user coin ledger: what a field user currently holds,
// accumulated from pickups and drained by warehouse deposits.
type UserStock struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index:idx_user_denom,unique"`
	Denomination int             `gorm:"not null;index:idx_user_denom,unique"`
	Quantity     int             `gorm:"not null;default:0"`
	Amount       decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	User *User `gorm:"foreignKey:UserID"`
}

// WarehouseStock is the central coin ledger, one row per denomination.
type WarehouseStock struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Denomination int             `gorm:"uniqueIndex;not null"`
	Quantity     int             `gorm:"not null;default:0"`
	Amount       decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
