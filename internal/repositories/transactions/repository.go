// Package transactions persists per-user monetary entries. Note ciphertext
// and nonce are stored as opaque blobs; encryption happens in the service
// layer above.
package transactions

import (
	"context"

	"securepay/internal/models"
)

// Repository abstracts transaction persistence.
type Repository interface {
	Create(ctx context.Context, tx *models.Transaction) error

	// ListByUser returns all entries owned by userID, most recent first.
	ListByUser(ctx context.Context, userID int64) ([]models.Transaction, error)
}
