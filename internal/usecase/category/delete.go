package category

import (
	"context"
	"fmt"

	domain "github.com/pharmanet/medsupply-api/internal/domain/category"
	"github.com/pharmanet/medsupply-api/internal/httperr"
)

type DeleteCategory struct {
	repo domain.Repository
}

func NewDeleteCategory(repo domain.Repository) *DeleteCategory {
	return &DeleteCategory{repo: repo}
}

// Execute removes a category only when nothing depends on it: no product
// references it and no category has it as parent.
func (uc *DeleteCategory) Execute(ctx context.Context, id uint) error {

	if _, err := uc.repo.GetByID(ctx, id); err != nil {
		return httperr.ErrBusinessMsg(
			"category_not_found",
			"category not found",
		)
	}

	products, err := uc.repo.CountProducts(ctx, id)
	if err != nil {
		return err
	}
	if products > 0 {
		return httperr.ErrBusinessMsg(
			"category_has_products",
			fmt.Sprintf("cannot delete category: it contains %d products, delete or move them first", products),
		)
	}

	children, err := uc.repo.CountChildren(ctx, id)
	if err != nil {
		return err
	}
	if children > 0 {
		return httperr.ErrBusinessMsg(
			"category_has_subcategories",
			fmt.Sprintf("cannot delete category: it has %d sub-categories, delete them first", children),
		)
	}

	return uc.repo.Delete(ctx, id)
}
