// Package cryptox implements the symmetric protection of transaction notes:
// key material lifecycle and AES-GCM sealing/opening.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"os"

	"securepay/internal/common"
	"securepay/internal/filex"
)

// KeySize is the length of the note-encryption key in bytes (AES-256).
const KeySize = 32

// LoadOrCreateKey returns the note-encryption key stored at path. If the file
// does not exist, a fresh random key is generated, persisted with owner-only
// permissions, and returned. Any I/O failure is a startup-fatal error for the
// caller; there is no retry.
func LoadOrCreateKey(path string) ([]byte, error) {
	abs, err := filex.EnsureParentDir(path)
	if err != nil {
		return nil, err
	}

	key, err := os.ReadFile(abs)
	if err == nil {
		if len(key) != KeySize {
			return nil, fmt.Errorf("key file %s: expected %d bytes, got %d", abs, KeySize, len(key))
		}
		return key, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read key file %s: %w", abs, err)
	}

	key = common.GenerateRandByteArray(KeySize)
	if err := os.WriteFile(abs, key, 0o600); err != nil {
		return nil, fmt.Errorf("write key file %s: %w", abs, err)
	}
	return key, nil
}

// EncryptNote encrypts the note text using AES-GCM under the given key.
//
// The key must be a valid AES key length (16, 24, or 32 bytes). A new random
// 12-byte nonce is generated for each encryption. The ciphertext and nonce
// are returned separately and are stored in separate columns.
func EncryptNote(note string, key []byte) (ciphertext, nonce []byte, err error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, err
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, err
	}

	nonce = common.GenerateRandByteArray(aesgcm.NonceSize())
	ciphertext = aesgcm.Seal(nil, nonce, []byte(note), nil)

	return ciphertext, nonce, nil
}

// DecryptNote reverses EncryptNote. The key and nonce must be the ones used
// to seal the ciphertext; any mismatch or corruption yields an error from
// GCM's authentication check.
func DecryptNote(ciphertext, nonce, key []byte) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", err
	}

	return string(plaintext), nil
}
