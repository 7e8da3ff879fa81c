package model

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle is a field asset a driver/cashier pair operates for a day.
// Operational data: cleared by the data reset operation (last, after its
// dependents RouteAssignment and Transaction are gone).
type Vehicle struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PlateNumber string    `gorm:"uniqueIndex;not null"`
	Description string
	Active      bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RouteAssignment links a Vehicle and a User for a day's route.
type RouteAssignment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VehicleID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	// RouteDate is the calendar day the assignment applies to (UTC date).
	RouteDate time.Time `gorm:"type:date;not null;index"`
	CreatedAt time.Time

	Vehicle *Vehicle `gorm:"foreignKey:VehicleID"`
	User    *User    `gorm:"foreignKey:UserID"`
}
