package model

import (
	"time"

	"github.com/google/uuid"
)

// Store is a retail location where coin pickups happen.
// Master data: never touched by the data reset operation.
type Store struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"not null"`
	Address   string
	Active    bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
