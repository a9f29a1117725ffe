package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shettigarlolith/LittoralWEB/internal/domain"
	"github.com/shettigarlolith/LittoralWEB/internal/repository"
	"github.com/shettigarlolith/LittoralWEB/pkg/errors"
)

// Store keeps the cart in a single row keyed by the storage key, overwritten
// wholesale on every save.
type Store struct {
	db  *sql.DB
	key string
}

// NewStore creates a postgres-backed cart store and ensures its table exists
func NewStore(db *sql.DB, key string) (*Store, error) {
	const ddl = `
		CREATE TABLE IF NOT EXISTS cart_states (
			storage_key TEXT PRIMARY KEY,
			state       JSONB NOT NULL,
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`
	if _, err := db.Exec(ddl); err != nil {
		return nil, fmt.Errorf("failed to ensure cart_states table: %w", err)
	}
	return &Store{db: db, key: key}, nil
}

func (s *Store) Load(ctx context.Context) (*domain.CartState, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT state FROM cart_states WHERE storage_key = $1`, s.key,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, &errors.ErrNotFound{Resource: "cart", ID: s.key}
	}
	if err != nil {
		return nil, err
	}
	return repository.DecodeCart(data)
}

func (s *Store) Save(ctx context.Context, state *domain.CartState) error {
	data, err := repository.EncodeCart(state)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO cart_states (storage_key, state, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (storage_key)
		DO UPDATE SET state = EXCLUDED.state, updated_at = now()`,
		s.key, data,
	)
	return err
}

var _ repository.CartStore = (*Store)(nil)
