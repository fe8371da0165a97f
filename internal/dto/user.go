package dto

import (
	"time"

	"github.com/exchwatch/currency_exchange_app/internal/core/domain"
)

// CreateUserRequest defines the body for user registration. The password is
// hashed before storage and never echoed back.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,max=150"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=30"`
}

// UpdateUserRequest defines the data allowed when updating a profile.
// Pointers differentiate omitted fields from zero values.
type UpdateUserRequest struct {
	Email *string `json:"email" binding:"omitempty,email"`
}

// ChangePasswordRequest defines the body for the password change endpoint.
type ChangePasswordRequest struct {
	OldPassword       string `json:"old_password" binding:"required,max=30"`
	Password          string `json:"password" binding:"required,min=8,max=30"`
	ConfirmedPassword string `json:"confirmed_password" binding:"required,max=30"`
}

// UserResponse is the API representation of a user profile.
type UserResponse struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ToUserResponse converts a domain user to its API representation.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:    user.UserID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
