package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single monetary entry owned by a user. Note holds the
// AES-GCM ciphertext of the free-text note and NoteNonce the nonce used to
// seal it; the plaintext never reaches storage.
type Transaction struct {
	ID        int64
	UserID    int64
	Amount    decimal.Decimal
	Note      []byte
	NoteNonce []byte
	CreatedAt time.Time
}
