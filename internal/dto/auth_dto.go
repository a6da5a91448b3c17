package dto

import "github.com/campuscare/campuscare-api/internal/models"

// RegisterRequest carries a staff registration payload.
type RegisterRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required"`
	Role           string `json:"role" validate:"required"`
	Department     string `json:"department"`
	Phone          string `json:"phone"`
	Designation    string `json:"designation"`
	Specifications string `json:"specifications"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the public projection of a staff account. The password
// hash never leaves the server.
type UserResponse struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Role           string  `json:"role"`
	Department     *string `json:"department"`
	Phone          *string `json:"phone"`
	Designation    *string `json:"designation"`
	Specifications *string `json:"specifications"`
}

// AuthResponse is returned on successful registration or login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// AdminExistsResponse answers the bootstrap existence probe.
type AdminExistsResponse struct {
	Exists bool `json:"exists"`
}

// NewUserResponse projects a user model into its public shape, with empty
// optional fields rendered as null.
func NewUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Role:           user.Role,
		Department:     nullableString(user.Department),
		Phone:          nullableString(user.Phone),
		Designation:    nullableString(user.Designation),
		Specifications: nullableString(user.Specifications),
	}
}

func nullableString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
