package auth

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/pharmanet/medsupply-api/internal/models"
)

// BlacklistStore revokes otherwise-valid tokens on logout. It must be
// backed by storage shared across server instances: a token logged out on
// one instance has to be rejected by every other one.
type BlacklistStore interface {
	Add(ctx context.Context, token string, expiresAt time.Time) error
	Contains(ctx context.Context, token string) (bool, error)
}

type GormBlacklistStore struct {
	db *gorm.DB
}

func NewGormBlacklistStore(db *gorm.DB) *GormBlacklistStore {
	return &GormBlacklistStore{db: db}
}

func (s *GormBlacklistStore) Add(
	ctx context.Context,
	token string,
	expiresAt time.Time,
) error {

	if !expiresAt.After(time.Now()) {
		// Already past its natural expiry, the gate rejects it anyway.
		return nil
	}

	return s.db.WithContext(ctx).Create(&models.BlacklistedToken{
		Token:     token,
		ExpiresAt: expiresAt,
	}).Error
}

func (s *GormBlacklistStore) Contains(
	ctx context.Context,
	token string,
) (bool, error) {

	var count int64
	if err := s.db.WithContext(ctx).
		Model(&models.BlacklistedToken{}).
		Where("token = ? AND expires_at > ?", token, time.Now()).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Prune drops rows whose token has passed its natural expiry.
func (s *GormBlacklistStore) Prune(ctx context.Context) error {
	return s.db.WithContext(ctx).
		Where("expires_at <= ?", time.Now()).
		Delete(&models.BlacklistedToken{}).Error
}

var _ BlacklistStore = (*GormBlacklistStore)(nil)
