package dto

type CreateVehicleRequest struct {
	PlateNumber string `json:"plate_number" validate:"required,min=3,max=20"`
	Description string `json:"description"  validate:"omitempty,max=150"`
}

type UpdateVehicleRequest struct {
	PlateNumber string `json:"plate_number" validate:"omitempty,min=3,max=20"`
	Description string `json:"description"  validate:"omitempty,max=150"`
}

type VehicleResponse struct {
	ID          string `json:"id"`
	PlateNumber string `json:"plate_number"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

// CreateRouteAssignmentRequest pairs a vehicle and a field user for a day.
type CreateRouteAssignmentRequest struct {
	VehicleID string `json:"vehicle_id" validate:"required,uuid"`
	UserID    string `json:"user_id"    validate:"required,uuid"`
	RouteDate string `json:"route_date" validate:"required,datetime=2006-01-02"`
}

type RouteAssignmentResponse struct {
	ID          string `json:"id"`
	VehicleID   string `json:"vehicle_id"`
	PlateNumber string `json:"plate_number,omitempty"`
	UserID      string `json:"user_id"`
	UserName    string `json:"user_name,omitempty"`
	RouteDate   string `json:"route_date"`
}
