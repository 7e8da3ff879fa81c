package dto

type CreateStoreRequest struct {
	Name    string `json:"name"    validate:"required,min=2,max=150"`
	Address string `json:"address" validate:"omitempty,max=300"`
}

type UpdateStoreRequest struct {
	Name    string `json:"name"    validate:"omitempty,min=2,max=150"`
	Address string `json:"address" validate:"omitempty,max=300"`
}

type StoreResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Active  bool   `json:"active"`
}
