package storage

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/resumeportal/internal/common"
)

// TokenStore persists the bearer token as a single metadata entry. It
// satisfies session.TokenStore.
type TokenStore struct {
	db *sql.DB
}

func NewTokenStore(db *sql.DB) *TokenStore {
	return &TokenStore{db: db}
}

// Load returns "" when no token has been saved.
func (s *TokenStore) Load(ctx context.Context) (string, error) {
	v, err := NewMetadataRepository(s.db).Get(ctx, common.SessionTokenKey)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (s *TokenStore) Save(ctx context.Context, token string) error {
	return NewMetadataRepository(s.db).Set(ctx, common.SessionTokenKey, []byte(token))
}

// Clear removes the token. The remembered login e-mail is kept so the next
// login prompt can offer it.
func (s *TokenStore) Clear(ctx context.Context) error {
	return NewMetadataRepository(s.db).Delete(ctx, common.SessionTokenKey)
}

// LastEmail returns the e-mail of the last successful login, or "".
func (s *TokenStore) LastEmail(ctx context.Context) (string, error) {
	v, err := NewMetadataRepository(s.db).Get(ctx, common.LastEmailKey)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (s *TokenStore) SetLastEmail(ctx context.Context, email string) error {
	return NewMetadataRepository(s.db).Set(ctx, common.LastEmailKey, []byte(email))
}
