package repository

import (
	"context"
	"time"

	"github.com/markusprap/web-penukaran-koin-sub001/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VehicleRepository interface {
	Create(ctx context.Context, v *model.Vehicle) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Vehicle, error)
	List(ctx context.Context) ([]model.Vehicle, error)
	Update(ctx context.Context, v *model.Vehicle) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type vehicleRepo struct{ db *gorm.DB }

func NewVehicleRepository(db *gorm.DB) VehicleRepository { return &vehicleRepo{db: db} }

func (r *vehicleRepo) Create(ctx context.Context, v *model.Vehicle) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *vehicleRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	var v model.Vehicle
	err := r.db.WithContext(ctx).First(&v, id).Error
	return &v, err
}

func (r *vehicleRepo) List(ctx context.Context) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	err := r.db.WithContext(ctx).Where("active = true").Order("plate_number").Find(&vehicles).Error
	return vehicles, err
}

func (r *vehicleRepo) Update(ctx context.Context, v *model.Vehicle) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *vehicleRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Vehicle{}).Where("id = ?", id).Update("active", false).Error
}

// ── Route assignments ────────────────────────────────────────────────────────

type RouteAssignmentRepository interface {
	Create(ctx context.Context, ra *model.RouteAssignment) error
	ListByDate(ctx context.Context, date time.Time) ([]model.RouteAssignment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type routeAssignmentRepo struct{ db *gorm.DB }

func NewRouteAssignmentRepository(db *gorm.DB) RouteAssignmentRepository {
	return &routeAssignmentRepo{db: db}
}

func (r *routeAssignmentRepo) Create(ctx context.Context, ra *model.RouteAssignment) error {
	return r.db.WithContext(ctx).Create(ra).Error
}

func (r *routeAssignmentRepo) ListByDate(ctx context.Context, date time.Time) ([]model.RouteAssignment, error) {
	var assignments []model.RouteAssignment
	err := r.db.WithContext(ctx).
		Preload("Vehicle").Preload("User").
		Where("route_date = ?", date.Format("2006-01-02")).
		Find(&assignments).Error
	return assignments, err
}

func (r *routeAssignmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.RouteAssignment{}, id).Error
}
