package services

import (
	"context"

	"github.com/exchwatch/currency_exchange_app/internal/core/domain"
	"github.com/exchwatch/currency_exchange_app/internal/dto"
)

// UserSvcFacade exposes account management operations.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateUser(ctx context.Context, username string, req dto.UpdateUserRequest) (*domain.User, error)
	// ChangePassword verifies the old password and stores a hash of the new one.
	ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error
}
