package cryptox

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// PepperSize is the number of random bytes in a generated pepper.
const PepperSize = 32

// GenerateToken returns size random bytes encoded as unpadded base64url.
func GenerateToken(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("cryptox: token size must be positive, got %d", size)
	}
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("cryptox: read random: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// GenerateEd25519Key returns a fresh Ed25519 private key as PKCS8 PEM.
func GenerateEd25519Key() ([]byte, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("cryptox: generate ed25519 key: %w", err)
	}
	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("cryptox: marshal pkcs8: %w", err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}), nil
}

// LoadOrCreatePepper reads the pepper stored at path, generating and writing
// a new one (mode 0600) when the file does not exist yet. Losing the file
// invalidates every stored password hash.
func LoadOrCreatePepper(path string) (string, error) {
	b, err := loadOrCreate(path, func() ([]byte, error) {
		tok, err := GenerateToken(PepperSize)
		return []byte(tok), err
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// LoadOrCreateEd25519Key reads a PEM encoded Ed25519 key from path, creating
// one when the file does not exist yet.
func LoadOrCreateEd25519Key(path string) ([]byte, error) {
	return loadOrCreate(path, GenerateEd25519Key)
}

func loadOrCreate(path string, gen func() ([]byte, error)) ([]byte, error) {
	path = filepath.Clean(path)

	b, err := os.ReadFile(path)
	if err == nil {
		if len(b) == 0 {
			return nil, fmt.Errorf("cryptox: %s is empty", path)
		}
		return b, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("cryptox: read %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("cryptox: create dir for %s: %w", path, err)
	}
	b, err = gen()
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return nil, fmt.Errorf("cryptox: write %s: %w", path, err)
	}
	return b, nil
}
