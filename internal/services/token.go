package services

import (
	"context"
	"fmt"
	"time"

	"github.com/hafiz-aliAwj/portfolio/internal/database"
)

// TokenService keeps the IDs of logged-out session tokens until they would
// have expired anyway.
type TokenService struct {
	db *database.DB
}

func NewTokenService(db *database.DB) *TokenService {
	return &TokenService{db: db}
}

func (s *TokenService) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	_, err := s.db.Pool.Exec(ctx, `
		INSERT INTO revoked_tokens (token_id, expires_at)
		VALUES ($1, $2)
		ON CONFLICT (token_id) DO NOTHING
	`, tokenID, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (s *TokenService) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	var revoked bool
	err := s.db.Pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM revoked_tokens WHERE token_id = $1)
	`, tokenID).Scan(&revoked)
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return revoked, nil
}

// CleanupExpired drops entries whose tokens have expired and returns how many
// were removed.
func (s *TokenService) CleanupExpired(ctx context.Context) (int64, error) {
	tag, err := s.db.Pool.Exec(ctx, `DELETE FROM revoked_tokens WHERE expires_at < NOW()`)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up revoked tokens: %w", err)
	}
	return tag.RowsAffected(), nil
}
