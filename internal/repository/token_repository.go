package repository

import (
	"context"
	"database/sql"
	"time"
)

// TokenRepo persists refresh token hashes for the admin session.  Only the
// SHA-256 hash of a token is ever stored, so a leaked table cannot be used
// to mint sessions.  Revocation writes revoked_at instead of deleting the
// row, which keeps a revoked token distinguishable from an unknown one
// until PurgeExpired sweeps it after its natural expiry.
type TokenRepo struct{ db *sql.DB }

func NewTokenRepo(db *sql.DB) *TokenRepo { return &TokenRepo{db: db} }

// StoreRefresh inserts a refresh token hash with its expiry.
func (r *TokenRepo) StoreRefresh(ctx context.Context, tokenHash string, exp time.Time) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO refresh_tokens (token_hash, expires_at) VALUES (?, ?)",
		tokenHash, exp.UTC())
	return err
}

// ValidateRefresh checks a token hash and returns nil only for a live
// token.  Unknown hashes return sql.ErrNoRows; revoked and expired
// tokens return their sentinel so the handler can answer with a
// distinguishing reason.
func (r *TokenRepo) ValidateRefresh(ctx context.Context, tokenHash string) error {
	var (
		expiresAt time.Time
		revokedAt sql.NullTime
	)
	err := r.db.QueryRowContext(ctx,
		"SELECT expires_at, revoked_at FROM refresh_tokens WHERE token_hash = ? LIMIT 1",
		tokenHash).Scan(&expiresAt, &revokedAt)
	if err != nil {
		return err
	}
	if revokedAt.Valid {
		return ErrTokenRevoked
	}
	if time.Now().UTC().After(expiresAt) {
		return ErrTokenExpired
	}
	return nil
}

// RevokeByHash marks a token as revoked.  Revoking an already revoked or
// unknown token is a no-op.
func (r *TokenRepo) RevokeByHash(ctx context.Context, tokenHash string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE refresh_tokens SET revoked_at = UTC_TIMESTAMP() WHERE token_hash = ? AND revoked_at IS NULL",
		tokenHash)
	return err
}

// PurgeExpired deletes tokens past their natural expiry, bounding the
// table the same way the periodic sweep bounds an in-memory revocation
// set.  Returns the number of rows removed.
func (r *TokenRepo) PurgeExpired(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM refresh_tokens WHERE expires_at < UTC_TIMESTAMP()")
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
