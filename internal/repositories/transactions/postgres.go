package transactions

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"securepay/internal/dbx"
	"securepay/internal/models"
)

// PostgresRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository returns a new PostgresRepository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, t *models.Transaction) error {
	query := `INSERT INTO transactions (user_id, amount, note, note_nonce, created_at)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		t.UserID, t.Amount.String(), t.Note, t.NoteNonce, t.CreatedAt).Scan(&t.ID)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]models.Transaction, error) {
	query := `SELECT id, user_id, amount, note, note_nonce, created_at FROM transactions
	          WHERE user_id = $1
	          ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Transaction
	for rows.Next() {
		var item models.Transaction
		var amount string
		if err := rows.Scan(&item.ID, &item.UserID, &amount, &item.Note, &item.NoteNonce, &item.CreatedAt); err != nil {
			return nil, err
		}
		if item.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("bad amount %q: %w", amount, err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
