package repositories

import (
	"context"

	"github.com/exchwatch/currency_exchange_app/internal/core/domain"
)

// UserReader defines read operations for user accounts
type UserReader interface {
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UserWriter defines write operations for user accounts
type UserWriter interface {
	// SaveUser persists a new user account.
	SaveUser(ctx context.Context, user domain.User) error
	// UpdateUser overwrites the mutable fields of an existing user.
	UpdateUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
