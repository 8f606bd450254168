package transactions

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"securepay/internal/dbx"
	"securepay/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Create appends a new transaction row and fills in the assigned id.
// Amounts are stored in their canonical decimal string form.
func (r *SQLiteRepository) Create(ctx context.Context, t *models.Transaction) error {
	query := `INSERT INTO transactions (user_id, amount, note, note_nonce, created_at)
	          VALUES (?, ?, ?, ?, ?)
	          RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		t.UserID, t.Amount.String(), t.Note, t.NoteNonce, t.CreatedAt).Scan(&t.ID)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// ListByUser returns all transactions for userID ordered by creation time,
// most recent first. The id is used as a tie-break so entries created at the
// same instant still list newest first.
func (r *SQLiteRepository) ListByUser(ctx context.Context, userID int64) ([]models.Transaction, error) {
	query := `SELECT id, user_id, amount, note, note_nonce, created_at FROM transactions
	          WHERE user_id = ?
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
