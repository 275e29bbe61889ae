package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/pharmanet/medsupply-api/internal/domain/category"
	"github.com/pharmanet/medsupply-api/internal/models"
)

type CategoryGormRepository struct {
	db *gorm.DB
}

func NewCategoryGormRepository(db *gorm.DB) *CategoryGormRepository {
	return &CategoryGormRepository{db: db}
}

func (r *CategoryGormRepository) ListAll(
	ctx context.Context,
) ([]models.Category, error) {

	var cats []models.Category
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

func (r *CategoryGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Category, error) {

	var cat models.Category
	if err := r.db.WithContext(ctx).First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryGormRepository) SlugExists(
	ctx context.Context,
	slug string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CategoryGormRepository) Create(
	ctx context.Context,
	cat *models.Category,
) error {
	return r.db.WithContext(ctx).Create(cat).Error
}

func (r *CategoryGormRepository) Update(
	ctx context.Context,
	cat *models.Category,
) error {
	return r.db.WithContext(ctx).Save(cat).Error
}

func (r *CategoryGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Category{}, id).Error
}

// --------------------------------------------------
// Deletion guards
// --------------------------------------------------

func (r *CategoryGormRepository) CountProducts(
	ctx context.Context,
	categoryID uint,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CategoryGormRepository) CountChildren(
	ctx context.Context,
	categoryID uint,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("parent_id = ?", categoryID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Compile-time check
var _ domain.Repository = (*CategoryGormRepository)(nil)
