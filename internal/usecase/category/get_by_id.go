package category

import (
	"context"

	domain "github.com/pharmanet/medsupply-api/internal/domain/category"
	"github.com/pharmanet/medsupply-api/internal/httperr"
	"github.com/pharmanet/medsupply-api/internal/models"
)

type GetCategoryByID struct {
	repo domain.Repository
}

func NewGetCategoryByID(repo domain.Repository) *GetCategoryByID {
	return &GetCategoryByID{repo: repo}
}

// Execute returns the category with its full subtree and, when it has a
// parent, the parent's flat record (one level up only).
func (uc *GetCategoryByID) Execute(
	ctx context.Context,
	id uint,
) (*models.Category, error) {

	cat, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusinessMsg(
			"category_not_found",
			"category not found",
		)
	}

	all, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	tree := domain.BuildSubtree(all, *cat)

	if cat.ParentID != nil {
		parent, err := uc.repo.GetByID(ctx, *cat.ParentID)
		if err != nil {
			return nil, err
		}
		tree.Parent = parent
	}

	return &tree, nil
}
