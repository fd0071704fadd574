package repositories

import (
	"context"
	"fmt"

	"pyc-official/secretariat/internal/constants"
	"pyc-official/secretariat/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

// KeysRepo looks up server-to-server API keys. Kept on the sqlx path:
// it is a single-row lookup against a table no ORM model needs.
type KeysRepo struct {
	db *sqlx.DB
}

func NewAPIKeysRepo(db *sqlx.DB) *KeysRepo {
	return &KeysRepo{db: db}
}

// GetStatus returns the key row, or an error when the key is unknown
func (r *KeysRepo) GetStatus(ctx context.Context, key string) (*entities.APIKeyStatus, error) {
	var row entities.APIKeyStatus

	if err := r.db.GetContext(ctx, &row, constants.QueryAPIKeyStatus, key); err != nil {
		return nil, fmt.Errorf("api key lookup failed: %w", err)
	}

	return &row, nil
}
