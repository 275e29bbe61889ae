package account

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/pharmanet/medsupply-api/internal/domain/account"
	"github.com/pharmanet/medsupply-api/internal/httperr"
	"github.com/pharmanet/medsupply-api/internal/models"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type Register struct {
	repo domain.Repository
}

func NewRegister(repo domain.Repository) *Register {
	return &Register{repo: repo}
}

func (uc *Register) Execute(
	ctx context.Context,
	in RegisterInput,
) (*models.User, error) {

	email := normalizeEmail(in.Email)

	exists, err := uc.repo.UserEmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrBusinessMsg(
			"email_already_registered",
			"a user with this email already exists",
		)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:         in.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         models.RoleAdmin,
	}

	if err := uc.repo.CreateUser(ctx, &user); err != nil {
		return nil, err
	}

	return &user, nil
}
