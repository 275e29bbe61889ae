package category

import (
	"context"

	domain "github.com/pharmanet/medsupply-api/internal/domain/category"
	"github.com/pharmanet/medsupply-api/internal/httperr"
	"github.com/pharmanet/medsupply-api/internal/models"
)

type UpdateCategoryInput struct {
	ID          uint
	Name        *string
	Description *string
	IsActive    *bool
}

type UpdateCategory struct {
	repo domain.Repository
}

func NewUpdateCategory(repo domain.Repository) *UpdateCategory {
	return &UpdateCategory{repo: repo}
}

func (uc *UpdateCategory) Execute(
	ctx context.Context,
	in UpdateCategoryInput,
) (*models.Category, error) {

	cat, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, httperr.ErrBusinessMsg(
			"category_not_found",
			"category not found",
		)
	}

	if in.Name != nil {
		slug := domain.Slugify(*in.Name)
		if slug == "" {
			return nil, httperr.ErrBusinessMsg(
				"invalid_category_name",
				"category name must contain at least one letter or digit",
			)
		}
		cat.Name = *in.Name
		// Renaming regenerates the slug. Collisions with other
		// categories are not re-checked here; the unique index is the
		// only guard on rename.
		cat.Slug = slug
	}
	if in.Description != nil {
		cat.Description = *in.Description
	}
	if in.IsActive != nil {
		cat.IsActive = *in.IsActive
	}

	if err := uc.repo.Update(ctx, cat); err != nil {
		return nil, err
	}

	return cat, nil
}
