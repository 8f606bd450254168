package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"securepay/internal/common"
	"securepay/internal/cryptox"
	"securepay/internal/logging"
	"securepay/internal/models"
	"securepay/internal/repositories/transactions"
)

// DecryptionErrorSentinel replaces a note whose ciphertext cannot be opened
// with the current key, so one bad row never fails the whole listing.
const DecryptionErrorSentinel = "[decryption error]"

// Entry is a decrypted transaction as shown to the owning session.
type Entry struct {
	Amount    decimal.Decimal
	Note      string
	CreatedAt time.Time
}

// TransactionService records and lists monetary entries, sealing the note
// field with the injected key before it reaches storage.
type TransactionService struct {
	repo   transactions.Repository
	key    []byte
	logger logging.Logger
}

// NewTransactionService constructs a TransactionService. key is the active
// note-encryption key from cryptox.LoadOrCreateKey.
func NewTransactionService(repo transactions.Repository, key []byte, logger logging.Logger) *TransactionService {
	return &TransactionService{repo: repo, key: key, logger: logger}
}

// Add appends a transaction for userID. The amount must be strictly positive;
// the note is encrypted before the row is written.
func (s *TransactionService) Add(ctx context.Context, userID int64, amount decimal.Decimal, note string) error {
	if !amount.IsPositive() {
		return common.ErrorInvalidAmount
	}

	ciphertext, nonce, err := cryptox.EncryptNote(note, s.key)
	if err != nil {
		return fmt.Errorf("encrypt note: %w", err)
	}

	t := &models.Transaction{
		UserID:    userID,
		Amount:    amount,
		Note:      ciphertext,
		NoteNonce: nonce,
		CreatedAt: timeNow().UTC(),
	}

	if err := s.repo.Create(ctx, t); err != nil {
		s.logger.Error(ctx, "transaction insert failed", "user_id", userID, "error", err.Error())
		return common.ErrorInternal
	}

	s.logger.Info(ctx, "transaction added", "user_id", userID, "amount", amount.String())
	return nil
}

// List returns all entries owned by userID, most recent first. Each note is
// decrypted independently; rows that fail to decrypt carry the sentinel
// instead of aborting the listing.
func (s *TransactionService) List(ctx context.Context, userID int64) ([]Entry, error) {
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error(ctx, "transaction listing failed", "user_id", userID, "error", err.Error())
		return nil, common.ErrorInternal
	}

	result := make([]Entry, 0, len(rows))
	for _, row := range rows {
		note, err := cryptox.DecryptNote(row.Note, row.NoteNonce, s.key)
		if err != nil {
			s.logger.Warn(ctx, "note decryption failed", "transaction_id", row.ID)
			note = DecryptionErrorSentinel
		}
		result = append(result, Entry{Amount: row.Amount, Note: note, CreatedAt: row.CreatedAt})
	}
	return result, nil
}
