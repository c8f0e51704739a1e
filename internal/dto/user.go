package dto

import "github.com/grievance-portal/grievance-api/internal/models"

// UserDTO represents a user in API responses
type UserDTO struct {
	ID    uint64          `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  models.UserRole `json:"role"`
}

// LoginResponse is returned by a successful login
type LoginResponse struct {
	Token string          `json:"token"`
	Role  models.UserRole `json:"role"`
	User  UserDTO         `json:"user"`
}

// ToUserDTO converts a user model to DTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
}
