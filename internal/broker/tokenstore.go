package broker

import (
	"fmt"
	"os"
	"time"

	"github.com/fernet/fernet-go"
)

// tokenTTL keeps cached tokens strictly under the broker's 24-hour validity.
const tokenTTL = 23 * time.Hour

// TokenStore caches the brokerage access token on disk, encrypted with a
// fernet key so the plaintext token never touches the filesystem. Fernet
// tokens carry their issue timestamp, which doubles as the expiry check.
type TokenStore struct {
	path string
	key  *fernet.Key
}

// NewTokenStore creates a token store writing to path, encrypting with the
// given base64-encoded fernet key.
func NewTokenStore(path, encodedKey string) (*TokenStore, error) {
	key, err := fernet.DecodeKey(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("invalid broker token key: %w", err)
	}
	return &TokenStore{path: path, key: key}, nil
}

// Save encrypts and writes the access token.
func (s *TokenStore) Save(accessToken string) error {
	sealed, err := fernet.EncryptAndSign([]byte(accessToken), s.key)
	if err != nil {
		return fmt.Errorf("failed to encrypt access token: %w", err)
	}

	if err := os.WriteFile(s.path, sealed, 0o600); err != nil {
		return fmt.Errorf("failed to write token cache: %w", err)
	}

	return nil
}

// Load returns the cached access token if one exists and is still within its
// validity window. A missing, corrupt or expired cache returns ok=false; the
// caller issues a fresh token in that case.
func (s *TokenStore) Load() (string, bool) {
	sealed, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}

	plaintext := fernet.VerifyAndDecrypt(sealed, tokenTTL, []*fernet.Key{s.key})
	if plaintext == nil {
		return "", false
	}

	return string(plaintext), true
}
