package services

import (
	"context"
	"fmt"
	"time"

	"github.com/exchwatch/currency_exchange_app/internal/apperrors"
	"github.com/exchwatch/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/exchwatch/currency_exchange_app/internal/core/ports/repositories"
	"github.com/exchwatch/currency_exchange_app/internal/dto"
	"github.com/exchwatch/currency_exchange_app/internal/utils"
	"github.com/google/uuid"
)

// UserService provides account management logic.
type UserService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUser registers a new account, hashing the password before storage.
func (s *UserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:        uuid.NewString(),
		Username:      req.Username,
		Email:         req.Email,
		PasswordHash:  passwordHash,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user in service: %w", err)
	}

	return &user, nil
}

// GetUserByID retrieves a user by their ID.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID in service: %w", err)
	}
	return user, nil
}

// GetUserByUsername retrieves a user by their username.
func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username in service: %w", err)
	}
	return user, nil
}

// UpdateUser updates the mutable profile fields of the user with the given
// username.
func (s *UserService) UpdateUser(ctx context.Context, username string, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to find user for update: %w", err)
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	user.LastUpdatedAt = time.Now()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update user in service: %w", err)
	}
	return user, nil
}

// ChangePassword verifies the caller's current password, checks the
// confirmation, and stores a hash of the new password.
func (s *UserService) ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to find user for password change: %w", err)
	}

	if !utils.CheckPasswordHash(req.OldPassword, user.PasswordHash) {
		return fmt.Errorf("%w: wrong password", apperrors.ErrValidation)
	}
	if req.Password != req.ConfirmedPassword {
		return fmt.Errorf("%w: password must be confirmed correctly", apperrors.ErrValidation)
	}

	newHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	user.PasswordHash = newHash
	user.LastUpdatedAt = time.Now()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return fmt.Errorf("failed to store new password in service: %w", err)
	}
	return nil
}
