package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	NIK      string `json:"nik"      validate:"required,min=1"`
	Password string `json:"password" validate:"required,min=4"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type CreateUserRequest struct {
	NIK      string `json:"nik"      validate:"required,min=1,max=32"`
	Name     string `json:"name"     validate:"required,min=2,max=100"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"required,oneof=SUPER_ADMIN ADMIN FIELD"`
	Position string `json:"position" validate:"required,oneof=DRIVER CASHIER ADMIN"`
}

type UpdateUserRequest struct {
	Name     string `json:"name"     validate:"omitempty,min=2,max=100"`
	Role     string `json:"role"     validate:"omitempty,oneof=SUPER_ADMIN ADMIN FIELD"`
	Position string `json:"position" validate:"omitempty,oneof=DRIVER CASHIER ADMIN"`
	Password string `json:"password" validate:"omitempty,min=8"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UserResponse struct {
	ID       string `json:"id"`
	NIK      string `json:"nik"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Position string `json:"position"`
	Active   bool   `json:"active"`
}

type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int          `json:"expires_in"` // seconds
	User         UserResponse `json:"user"`
}
