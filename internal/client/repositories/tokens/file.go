package tokens

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/dmitrijs2005/tafuta/internal/common"
)

const keyFileName = "store.key"

// FileRepository keeps each value sealed with ChaCha20-Poly1305 in its own
// file under dir. It is the desktop analog of the source platform's secure
// key-value storage: the sealing key is generated once and kept next to the
// data with 0600 permissions.
type FileRepository struct {
	dir string
	key []byte
}

func NewFileRepository(dir string) (*FileRepository, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create store dir: %w", err)
	}

	key, err := loadOrCreateKey(filepath.Join(dir, keyFileName))
	if err != nil {
		return nil, err
	}

	return &FileRepository{dir: dir, key: key}, nil
}

func loadOrCreateKey(path string) ([]byte, error) {
	key, err := os.ReadFile(path)
	if err == nil {
		if len(key) != chacha20poly1305.KeySize {
			return nil, fmt.Errorf("store key %s has invalid size %d", path, len(key))
		}
		return key, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read store key: %w", err)
	}

	key = common.GenerateRandByteArray(chacha20poly1305.KeySize)
	if err := os.WriteFile(path, key, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write store key: %w", err)
	}
	return key, nil
}

func (r *FileRepository) Get(ctx context.Context, key string) (string, error) {
	blob, err := os.ReadFile(r.path(key))
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}

	aead, err := chacha20poly1305.NewX(r.key)
	if err != nil {
		return "", err
	}
	if len(blob) < aead.NonceSize() {
		return "", fmt.Errorf("sealed value for %s is truncated", key)
	}

	nonce, ciphertext := blob[:aead.NonceSize()], blob[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("failed to unseal %s: %w", key, err)
	}
	return string(plaintext), nil
}

func (r *FileRepository) Set(ctx context.Context, key string, value string) error {
	aead, err := chacha20poly1305.NewX(r.key)
	if err != nil {
		return err
	}

	nonce := common.GenerateRandByteArray(aead.NonceSize())
	blob := aead.Seal(nonce, nonce, []byte(value), nil)

	if err := os.WriteFile(r.path(key), blob, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (r *FileRepository) Delete(ctx context.Context, key string) error {
	err := os.Remove(r.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

func (r *FileRepository) path(key string) string {
	sanitized := strings.Map(func(c rune) rune {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
			return c
		default:
			return '_'
		}
	}, key)
	return filepath.Join(r.dir, sanitized+".tok")
}
