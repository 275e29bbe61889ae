package account

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/pharmanet/medsupply-api/internal/domain/account"
	"github.com/pharmanet/medsupply-api/internal/httperr"
	"github.com/pharmanet/medsupply-api/internal/models"
)

// Unknown email and wrong password fail with the very same error value,
// so the login endpoint leaks no account-existence signal.
var errInvalidCredentials = httperr.ErrBusinessMsg(
	"invalid_credentials",
	"invalid email or password",
)

type LoginInput struct {
	Email    string
	Password string
}

type Login struct {
	repo domain.Repository
}

func NewLogin(repo domain.Repository) *Login {
	return &Login{repo: repo}
}

func (uc *Login) Execute(
	ctx context.Context,
	in LoginInput,
) (*models.User, error) {

	user, err := uc.repo.FindUserByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		return nil, errInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash),
		[]byte(in.Password),
	); err != nil {
		return nil, errInvalidCredentials
	}

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
