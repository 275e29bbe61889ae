package category

import (
	"context"

	domain "github.com/pharmanet/medsupply-api/internal/domain/category"
	"github.com/pharmanet/medsupply-api/internal/models"
)

type GetAllCategories struct {
	repo domain.Repository
}

func NewGetAllCategories(repo domain.Repository) *GetAllCategories {
	return &GetAllCategories{repo: repo}
}

// Execute returns every top-level category with its subCategories
// populated recursively at every depth.
func (uc *GetAllCategories) Execute(ctx context.Context) ([]models.Category, error) {
	all, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return domain.BuildForest(all), nil
}
