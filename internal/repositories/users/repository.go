// Package users persists account records and resolves them by username.
package users

import (
	"context"

	"securepay/internal/models"
)

// Repository abstracts user persistence. Implementations translate their
// driver's uniqueness violation into common.ErrorAlreadyExists and a missing
// row into common.ErrorNotFound, so services can match with errors.Is.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
