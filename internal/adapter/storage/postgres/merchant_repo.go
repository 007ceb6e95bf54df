package postgres

import (
	"context"
	"errors"
	"fmt"

	"payment-orchestrator/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const merchantColumns = `id, username, password_hash, merchant_name, access_key, secret_key_enc, webhook_url, status, created_at, updated_at`

// MerchantRepo persists merchant accounts: the credentials behind the
// HMAC-signed payment surface and the dashboard login.
type MerchantRepo struct {
	pool Pool
}

func NewMerchantRepo(pool Pool) *MerchantRepo {
	return &MerchantRepo{pool: pool}
}

func (r *MerchantRepo) Create(ctx context.Context, m *domain.Merchant) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO merchants (`+merchantColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		m.ID, m.Username, m.PasswordHash, m.MerchantName,
		m.AccessKey, m.SecretKeyEnc, m.WebhookURL, m.Status,
		m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert merchant: %w", err)
	}
	return nil
}

func (r *MerchantRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Merchant, error) {
	return r.getWhere(ctx, "id = $1", id)
}

func (r *MerchantRepo) GetByAccessKey(ctx context.Context, accessKey string) (*domain.Merchant, error) {
	return r.getWhere(ctx, "access_key = $1", accessKey)
}

func (r *MerchantRepo) GetByUsername(ctx context.Context, username string) (*domain.Merchant, error) {
	return r.getWhere(ctx, "username = $1", username)
}

// getWhere runs a single-row lookup. A missing merchant is (nil, nil), not
// an error; callers decide whether absence is a 401 or a 404.
func (r *MerchantRepo) getWhere(ctx context.Context, where string, arg any) (*domain.Merchant, error) {
	var m domain.Merchant
	err := r.pool.QueryRow(ctx,
		`SELECT `+merchantColumns+` FROM merchants WHERE `+where, arg,
	).Scan(
		&m.ID, &m.Username, &m.PasswordHash, &m.MerchantName,
		&m.AccessKey, &m.SecretKeyEnc, &m.WebhookURL, &m.Status,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select merchant: %w", err)
	}
	return &m, nil
}

// Update rewrites the mutable account fields. Username and password hash
// change through dedicated flows, never here.
func (r *MerchantRepo) Update(ctx context.Context, m *domain.Merchant) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE merchants
		 SET merchant_name=$1, webhook_url=$2, access_key=$3, secret_key_enc=$4, status=$5, updated_at=NOW()
		 WHERE id=$6`,
		m.MerchantName, m.WebhookURL, m.AccessKey, m.SecretKeyEnc, m.Status, m.ID,
	)
	if err != nil {
		return fmt.Errorf("update merchant: %w", err)
	}
	return nil
}
