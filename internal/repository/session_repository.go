package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/alpstech-academy-api/internal/models"
	"github.com/noah-isme/alpstech-academy-api/pkg/kvstore"
)

// UserKey is the storage key holding the redacted active session.
const UserKey = "user"

// SessionRepository persists the single active session blob.
type SessionRepository struct {
	store  kvstore.Store
	logger *zap.Logger
}

// NewSessionRepository constructs a SessionRepository.
func NewSessionRepository(store kvstore.Store, logger *zap.Logger) *SessionRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionRepository{store: store, logger: logger}
}

// Load returns the stored session, or nil when none is stored or the blob is corrupt.
func (r *SessionRepository) Load(ctx context.Context) (*models.PublicAccount, error) {
	var account models.PublicAccount
	if err := kvstore.GetJSON(ctx, r.store, UserKey, &account); err != nil {
		if kvstore.IsNotFound(err) {
			return nil, nil
		}
		r.logger.Warn("stored session unreadable, starting anonymous", zap.Error(err))
		return nil, nil
	}
	if account.ID == "" {
		return nil, nil
	}
	return &account, nil
}

// Save overwrites the stored session.
func (r *SessionRepository) Save(ctx context.Context, account models.PublicAccount) error {
	return kvstore.SetJSON(ctx, r.store, UserKey, account)
}

// Clear removes the stored session.
func (r *SessionRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, UserKey)
}
