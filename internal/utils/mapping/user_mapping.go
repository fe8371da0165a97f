package mapping

import (
	"github.com/exchwatch/currency_exchange_app/internal/core/domain"
	"github.com/exchwatch/currency_exchange_app/internal/models"
)

// ToDomainUser converts a database user row to its domain form.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:        m.UserID,
		Username:      m.Username,
		Email:         m.Email,
		PasswordHash:  m.PasswordHash,
		CreatedAt:     m.CreatedAt,
		LastUpdatedAt: m.LastUpdatedAt,
	}
}

// ToModelUser converts a domain user to its database form.
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:        d.UserID,
		Username:      d.Username,
		Email:         d.Email,
		PasswordHash:  d.PasswordHash,
		CreatedAt:     d.CreatedAt,
		LastUpdatedAt: d.LastUpdatedAt,
	}
}
