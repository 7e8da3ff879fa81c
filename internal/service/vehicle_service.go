package service

import (
	"context"
	"errors"
	"time"

	"github.com/markusprap/web-penukaran-koin-sub001/internal/dto"
	"github.com/markusprap/web-penukaran-koin-sub001/internal/model"
	"github.com/markusprap/web-penukaran-koin-sub001/internal/repository"

	"github.com/google/uuid"
)

type VehicleService interface {
	Create(ctx context.Context, req dto.CreateVehicleRequest) (*dto.VehicleResponse, error)
	List(ctx context.Context) ([]dto.VehicleResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateVehicleRequest) (*dto.VehicleResponse, error)
	Deactivate(ctx context.Context, id uuid.UUID) error

	AssignRoute(ctx context.Context, req dto.CreateRouteAssignmentRequest) (*dto.RouteAssignmentResponse, error)
	ListRoutes(ctx context.Context, date time.Time) ([]dto.RouteAssignmentResponse, error)
	UnassignRoute(ctx context.Context, id uuid.UUID) error
}

type vehicleService struct {
	vehicles repository.VehicleRepository
	routes   repository.RouteAssignmentRepository
	users    repository.UserRepository
}

func NewVehicleService(vehicles repository.VehicleRepository, routes repository.RouteAssignmentRepository, users repository.UserRepository) VehicleService {
	return &vehicleService{vehicles: vehicles, routes: routes, users: users}
}

func (s *vehicleService) Create(ctx context.Context, req dto.CreateVehicleRequest) (*dto.VehicleResponse, error) {
	v := &model.Vehicle{PlateNumber: req.PlateNumber, Description: req.Description, Active: true}
	if err := s.vehicles.Create(ctx, v); err != nil {
		return nil, err
	}
	resp := toVehicleResponse(v)
	return &resp, nil
}

func (s *vehicleService) List(ctx context.Context) ([]dto.VehicleResponse, error) {
	vehicles, err := s.vehicles.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.VehicleResponse, len(vehicles))
	for i := range vehicles {
		resp[i] = toVehicleResponse(&vehicles[i])
	}
	return resp, nil
}

func (s *vehicleService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateVehicleRequest) (*dto.VehicleResponse, error) {
	v, err := s.vehicles.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("vehicle not found")
	}
	if req.PlateNumber != "" {
		v.PlateNumber = req.PlateNumber
	}
	if req.Description != "" {
		v.Description = req.Description
	}
	if err := s.vehicles.Update(ctx, v); err != nil {
		return nil, err
	}
	resp := toVehicleResponse(v)
	return &resp, nil
}

func (s *vehicleService) Deactivate(ctx context.Context, id uuid.UUID) error {
	return s.vehicles.SoftDelete(ctx, id)
}

// ── Route assignments ────────────────────────────────────────────────────────

func (s *vehicleService) AssignRoute(ctx context.Context, req dto.CreateRouteAssignmentRequest) (*dto.RouteAssignmentResponse, error) {
	vehicleID, err := uuid.Parse(req.VehicleID)
	if err != nil {
		return nil, errors.New("invalid vehicle_id")
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, errors.New("invalid user_id")
	}
	routeDate, err := time.Parse("2006-01-02", req.RouteDate)
	if err != nil {
		return nil, errors.New("invalid route_date")
	}

	// Only active field users ride routes
	user, err := s.users.FindByID(ctx, userID)
	if err != nil || !user.Active {
		return nil, errors.New("user not found or inactive")
	}
	if user.Role != model.RoleField {
		return nil, errors.New("route assignments are limited to field users")
	}
	if _, err := s.vehicles.FindByID(ctx, vehicleID); err != nil {
		return nil, errors.New("vehicle not found")
	}

	ra := &model.RouteAssignment{VehicleID: vehicleID, UserID: userID, RouteDate: routeDate}
	if err := s.routes.Create(ctx, ra); err != nil {
		return nil, err
	}
	return &dto.RouteAssignmentResponse{
		ID:        ra.ID.String(),
		VehicleID: vehicleID.String(),
		UserID:    userID.String(),
		RouteDate: req.RouteDate,
	}, nil
}

func (s *vehicleService) ListRoutes(ctx context.Context, date time.Time) ([]dto.RouteAssignmentResponse, error) {
	assignments, err := s.routes.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.RouteAssignmentResponse, len(assignments))
	for i, ra := range assignments {
		resp[i] = dto.RouteAssignmentResponse{
			ID:        ra.ID.String(),
			VehicleID: ra.VehicleID.String(),
			UserID:    ra.UserID.String(),
			RouteDate: ra.RouteDate.Format("2006-01-02"),
		}
		if ra.Vehicle != nil {
			resp[i].PlateNumber = ra.Vehicle.PlateNumber
		}
		if ra.User != nil {
			resp[i].UserName = ra.User.Name
		}
	}
	return resp, nil
}

func (s *vehicleService) UnassignRoute(ctx context.Context, id uuid.UUID) error {
	return s.routes.Delete(ctx, id)
}

func toVehicleResponse(v *model.Vehicle) dto.VehicleResponse {
	return dto.VehicleResponse{
		ID:          v.ID.String(),
		PlateNumber: v.PlateNumber,
		Description: v.Description,
		Active:      v.Active,
	}
}
