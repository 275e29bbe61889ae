package category

import (
	"context"

	domain "github.com/pharmanet/medsupply-api/internal/domain/category"
	"github.com/pharmanet/medsupply-api/internal/httperr"
	"github.com/pharmanet/medsupply-api/internal/models"
)

type CreateCategoryInput struct {
	Name        string
	Description string
	ParentID    *uint
}

type CreateCategory struct {
	repo domain.Repository
}

func NewCreateCategory(repo domain.Repository) *CreateCategory {
	return &CreateCategory{repo: repo}
}

func (uc *CreateCategory) Execute(
	ctx context.Context,
	in CreateCategoryInput,
) (*models.Category, error) {

	slug := domain.Slugify(in.Name)
	if slug == "" {
		return nil, httperr.ErrBusinessMsg(
			"invalid_category_name",
			"category name must contain at least one letter or digit",
		)
	}

	exists, err := uc.repo.SlugExists(ctx, slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrBusinessMsg(
			"category_already_exists",
			"a category with this name already exists",
		)
	}

	if in.ParentID != nil {
		if _, err := uc.repo.GetByID(ctx, *in.ParentID); err != nil {
			return nil, httperr.ErrBusinessMsg(
				"parent_category_not_found",
				"parent category does not exist",
			)
		}
	}

	cat := models.Category{
		Name:        in.Name,
		Slug:        slug,
		Description: in.Description,
		IsActive:    true,
		ParentID:    in.ParentID,
	}

	if err := uc.repo.Create(ctx, &cat); err != nil {
		return nil, err
	}

	// New categories are leaves.
	cat.SubCategories = make([]models.Category, 0)

	return &cat, nil
}
