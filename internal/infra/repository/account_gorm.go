package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/pharmanet/medsupply-api/internal/domain/account"
	"github.com/pharmanet/medsupply-api/internal/models"
)

type AccountGormRepository struct {
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

// --------- User ---------

func (r *AccountGormRepository) FindUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *AccountGormRepository) UserEmailExists(
	ctx context.Context,
	email string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AccountGormRepository) CreateUser(
	ctx context.Context,
	user *models.User,
) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// --------- Retailer ---------

func (r *AccountGormRepository) GetRetailerByID(
	ctx context.Context,
	id uint,
) (*models.Retailer, error) {

	var retailer models.Retailer
	if err := r.db.WithContext(ctx).First(&retailer, id).Error; err != nil {
		return nil, err
	}
	return &retailer, nil
}

func (r *AccountGormRepository) RetailerEmailExists(
	ctx context.Context,
	email string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Retailer{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AccountGormRepository) LicenseExists(
	ctx context.Context,
	license string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Retailer{}).
		Where("drug_license_number = ?", license).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AccountGormRepository) CreateRetailerWithUser(
	ctx context.Context,
	retailer *models.Retailer,
	user *models.User,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		retailer.UserID = user.ID
		return tx.Create(retailer).Error
	})
}

func (r *AccountGormRepository) DeleteRetailerWithUser(
	ctx context.Context,
	retailerID uint,
	userID uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Retailer{}, retailerID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, userID).Error
	})
}

var _ domain.Repository = (*AccountGormRepository)(nil)
