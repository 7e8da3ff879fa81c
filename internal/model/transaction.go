package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction records one coin-exchange pickup at a store.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	StoreID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	VehicleID   uuid.UUID       `gorm:"type:uuid;not null"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	// ReceiptURL is filled asynchronously once the receipt PDF is uploaded.
	ReceiptURL *string
	CreatedAt  time.Time

	Details []TransactionDetail `gorm:"foreignKey:TransactionID"`
	User    *User               `gorm:"foreignKey:UserID"`
	Store   *Store              `gorm:"foreignKey:StoreID"`
	Vehicle *Vehicle            `gorm:"foreignKey:VehicleID"`
}

// TransactionDetail is a line item: quantity of coins per denomination.
// Immutable once created — corrections create a new transaction.
type TransactionDetail struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TransactionID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Denomination  int             `gorm:"not null"` // coin face value, e.g. 500
	Quantity      int             `gorm:"not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	CreatedAt     time.Time
}
