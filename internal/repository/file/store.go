// Package file persists the cart as a single JSON document on disk, the
// server-side analogue of the browser's localStorage slot.
package file

import (
	"context"
	"os"
	"path/filepath"

	"github.com/shettigarlolith/LittoralWEB/internal/domain"
	"github.com/shettigarlolith/LittoralWEB/internal/repository"
	"github.com/shettigarlolith/LittoralWEB/pkg/errors"
)

type Store struct {
	path string
}

// NewStore creates a file-backed cart store at the given path
func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Load(ctx context.Context) (*domain.CartState, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &errors.ErrNotFound{Resource: "cart", ID: s.path}
		}
		return nil, err
	}
	return repository.DecodeCart(data)
}

func (s *Store) Save(ctx context.Context, state *domain.CartState) error {
	data, err := repository.EncodeCart(state)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	// rename keeps the slot either old or new, never partial
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

var _ repository.CartStore = (*Store)(nil)
