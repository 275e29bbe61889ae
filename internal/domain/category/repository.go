package category

import (
	"context"

	"github.com/pharmanet/medsupply-api/internal/models"
)

type Repository interface {
	// ListAll returns the whole flat category set in storage order.
	ListAll(ctx context.Context) ([]models.Category, error)

	GetByID(ctx context.Context, id uint) (*models.Category, error)

	SlugExists(ctx context.Context, slug string) (bool, error)

	Create(ctx context.Context, cat *models.Category) error

	Update(ctx context.Context, cat *models.Category) error

	Delete(ctx context.Context, id uint) error

	// -------- deletion guards --------

	CountProducts(ctx context.Context, categoryID uint) (int64, error)

	CountChildren(ctx context.Context, categoryID uint) (int64, error)
}
