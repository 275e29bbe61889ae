package account

import (
	"context"

	"github.com/pharmanet/medsupply-api/internal/models"
)

type Repository interface {
	// -------- User --------
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)

	UserEmailExists(ctx context.Context, email string) (bool, error)

	CreateUser(ctx context.Context, user *models.User) error

	// -------- Retailer --------
	GetRetailerByID(ctx context.Context, id uint) (*models.Retailer, error)

	RetailerEmailExists(ctx context.Context, email string) (bool, error)

	LicenseExists(ctx context.Context, license string) (bool, error)

	// -------- paired writes (one transaction, both or neither) --------

	CreateRetailerWithUser(
		ctx context.Context,
		retailer *models.Retailer,
		user *models.User,
	) error

	DeleteRetailerWithUser(
		ctx context.Context,
		retailerID uint,
		userID uint,
	) error
}
