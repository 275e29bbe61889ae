package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/pharmanet/medsupply-api/internal/models"
)

// UserGormResolver loads the current user row for the auth middleware.
// Role and profile always come from the database, never from token claims.
type UserGormResolver struct {
	db *gorm.DB
}

func NewUserGormResolver(db *gorm.DB) *UserGormResolver {
	return &UserGormResolver{db: db}
}

func (r *UserGormResolver) ResolveUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
