package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/exchwatch/currency_exchange_app/internal/apperrors"
	"github.com/exchwatch/currency_exchange_app/internal/core/domain"
	"github.com/exchwatch/currency_exchange_app/internal/models"
	"github.com/exchwatch/currency_exchange_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const userColumns = "user_id, username, email, password_hash, created_at, last_updated_at"

// PgxUserRepository implements the user repository facade using pgx.
type PgxUserRepository struct {
	BaseRepository
}

// NewPgxUserRepository creates a new PgxUserRepository.
func NewPgxUserRepository(db PGXPool) *PgxUserRepository {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// SaveUser inserts a new user row.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	modelUser := mapping.ToModelUser(user)

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		modelUser.UserID, modelUser.Username, modelUser.Email,
		modelUser.PasswordHash, modelUser.CreatedAt, modelUser.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: username %s is taken", apperrors.ErrDuplicate, user.Username)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

// FindUserByID retrieves a user by their ID.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findUser(ctx, "user_id", userID)
}

// FindUserByUsername retrieves a user by their username.
func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findUser(ctx, "username", username)
}

func (r *PgxUserRepository) findUser(ctx context.Context, column, value string) (*domain.User, error) {
	var modelUser models.User
	err := r.Pool.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE "+column+" = $1",
		value,
	).Scan(
		&modelUser.UserID, &modelUser.Username, &modelUser.Email,
		&modelUser.PasswordHash, &modelUser.CreatedAt, &modelUser.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: user with %s %s", apperrors.ErrNotFound, column, value)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	domainUser := mapping.ToDomainUser(modelUser)
	return &domainUser, nil
}

// UpdateUser overwrites the mutable fields of an existing user row.
func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	modelUser := mapping.ToModelUser(user)

	tag, err := r.Pool.Exec(ctx, `
		UPDATE users
		SET email = $1, password_hash = $2, last_updated_at = $3
		WHERE user_id = $4`,
		modelUser.Email, modelUser.PasswordHash, modelUser.LastUpdatedAt, modelUser.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: user %s", apperrors.ErrNotFound, user.UserID)
	}
	return nil
}
