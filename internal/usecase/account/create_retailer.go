package account

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/pharmanet/medsupply-api/internal/domain/account"
	"github.com/pharmanet/medsupply-api/internal/httperr"
	"github.com/pharmanet/medsupply-api/internal/models"
)

type CreateRetailerInput struct {
	ShopName          string
	OwnerName         string
	Email             string
	Password          string
	Phone             string
	Address           string
	City              string
	State             string
	ZipCode           string
	DrugLicenseNumber string
}

type CreateRetailer struct {
	repo domain.Repository
}

func NewCreateRetailer(repo domain.Repository) *CreateRetailer {
	return &CreateRetailer{repo: repo}
}

// Execute onboards a retailer: the login account and the retailer
// profile are written as one unit by the repository.
func (uc *CreateRetailer) Execute(
	ctx context.Context,
	in CreateRetailerInput,
) (*models.Retailer, error) {

	email := normalizeEmail(in.Email)

	// The email must be free in both tables, not just retailers.
	taken, err := uc.repo.RetailerEmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if !taken {
		taken, err = uc.repo.UserEmailExists(ctx, email)
		if err != nil {
			return nil, err
		}
	}
	if taken {
		return nil, httperr.ErrBusinessMsg(
			"email_already_registered",
			"a retailer or user with this email already exists",
		)
	}

	exists, err := uc.repo.LicenseExists(ctx, in.DrugLicenseNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrBusinessMsg(
			"license_already_registered",
			"a retailer with this drug license number already exists",
		)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:         in.OwnerName,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         models.RoleRetailer,
	}

	retailer := models.Retailer{
		ShopName:          in.ShopName,
		OwnerName:         in.OwnerName,
		Email:             email,
		Phone:             in.Phone,
		Address:           in.Address,
		City:              in.City,
		State:             in.State,
		ZipCode:           in.ZipCode,
		DrugLicenseNumber: in.DrugLicenseNumber,
		Status:            models.RetailerStatusActive,
	}

	if err := uc.repo.CreateRetailerWithUser(ctx, &retailer, &user); err != nil {
		return nil, err
	}

	return &retailer, nil
}
