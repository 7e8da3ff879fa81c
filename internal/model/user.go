package model

import (
	"time"

	"github.com/google/uuid"
)

// Role values.
const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleAdmin      = "ADMIN"
	RoleField      = "FIELD"
)

// Position values.
const (
	PositionDriver  = "DRIVER"
	PositionCashier = "CASHIER"
	PositionAdmin   = "ADMIN"
)

// User stores system users with role-based access.
// NIK is the national-ID-like employee key used for login.
// Master data: never touched by the data reset operation.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NIK          string    `gorm:"column:nik;uniqueIndex;not null"`
	Name         string    `gorm:"not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"type:varchar(20);not null"`
	Position     string    `gorm:"type:varchar(20);not null"`
	Active       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
