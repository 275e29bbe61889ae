package account

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/pharmanet/medsupply-api/internal/httperr"
	"github.com/pharmanet/medsupply-api/internal/models"
)

// --------- in-memory repository ---------

type fakeRepo struct {
	users          []models.User
	retailers      []models.Retailer
	nextUserID     uint
	nextRetailerID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextUserID: 1, nextRetailerID: 1}
}

func (r *fakeRepo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeRepo) UserEmailExists(ctx context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = r.nextUserID
	r.nextUserID++
	r.users = append(r.users, *user)
	return nil
}

func (r *fakeRepo) GetRetailerByID(ctx context.Context, id uint) (*models.Retailer, error) {
	for i := range r.retailers {
		if r.retailers[i].ID == id {
			ret := r.retailers[i]
			return &ret, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeRepo) RetailerEmailExists(ctx context.Context, email string) (bool, error) {
	for _, ret := range r.retailers {
		if ret.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) LicenseExists(ctx context.Context, license string) (bool, error) {
	for _, ret := range r.retailers {
		if ret.DrugLicenseNumber == license {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) CreateRetailerWithUser(
	ctx context.Context,
	retailer *models.Retailer,
	user *models.User,
) error {
	if err := r.CreateUser(ctx, user); err != nil {
		return err
	}
	retailer.ID = r.nextRetailerID
	r.nextRetailerID++
	retailer.UserID = user.ID
	r.retailers = append(r.retailers, *retailer)
	return nil
}

func (r *fakeRepo) DeleteRetailerWithUser(
	ctx context.Context,
	retailerID uint,
	userID uint,
) error {
	for i := range r.retailers {
		if r.retailers[i].ID == retailerID {
			r.retailers = append(r.retailers[:i], r.retailers[i+1:]...)
			break
		}
	}
	for i := range r.users {
		if r.users[i].ID == userID {
			r.users = append(r.users[:i], r.users[i+1:]...)
			break
		}
	}
	return nil
}

func seedUser(t *testing.T, repo *fakeRepo, email, password, role string) *models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{
		Name:         "Seeded User",
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
	}
	if err := repo.CreateUser(context.Background(), &user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return &user
}

func retailerInput(email, license string) CreateRetailerInput {
	return CreateRetailerInput{
		ShopName:          "City Pharma",
		OwnerName:         "Asha Rao",
		Email:             email,
		Password:          "s3cretpass",
		Phone:             "9876543210",
		Address:           "12 MG Road",
		City:              "Pune",
		State:             "MH",
		ZipCode:           "411001",
		DrugLicenseNumber: license,
	}
}

// --------- Login ---------

func TestLoginUnknownEmailAndWrongPasswordAnswerIdentically(t *testing.T) {
	repo := newFakeRepo()
	seedUser(t, repo, "asha@example.com", "correct-horse", models.RoleAdmin)

	uc := NewLogin(repo)

	_, unknownErr := uc.Execute(context.Background(), LoginInput{
		Email:    "nobody@example.com",
		Password: "correct-horse",
	})
	_, wrongPassErr := uc.Execute(context.Background(), LoginInput{
		Email:    "asha@example.com",
		Password: "wrong-horse",
	})

	if unknownErr == nil || wrongPassErr == nil {
		t.Fatalf("both attempts must fail, got %v and %v", unknownErr, wrongPassErr)
	}

	// The two failures must be indistinguishable to the caller, or the
	// endpoint becomes an account-enumeration oracle.
	if !reflect.DeepEqual(unknownErr, wrongPassErr) {
		t.Errorf("unknown-email error %#v differs from wrong-password error %#v",
			unknownErr, wrongPassErr)
	}

	be, ok := httperr.AsBusiness(unknownErr)
	if !ok || be.Code != "invalid_credentials" {
		t.Errorf("error code = %v, want invalid_credentials", unknownErr)
	}
}

func TestLoginSuccess(t *testing.T) {
	repo := newFakeRepo()
	seeded := seedUser(t, repo, "asha@example.com", "correct-horse", models.RoleAdmin)

	user, err := NewLogin(repo).Execute(context.Background(), LoginInput{
		Email:    "  Asha@Example.COM ",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.ID != seeded.ID {
		t.Errorf("user ID = %d, want %d", user.ID, seeded.ID)
	}
}

// --------- Register ---------

func TestRegisterHashesPasswordAndAssignsAdmin(t *testing.T) {
	repo := newFakeRepo()

	user, err := NewRegister(repo).Execute(context.Background(), RegisterInput{
		Name:     "Asha Rao",
		Email:    "Asha@Example.com",
		Password: "s3cretpass",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if user.Email != "asha@example.com" {
		t.Errorf("email = %q, want normalized asha@example.com", user.Email)
	}
	if user.Role != models.RoleAdmin {
		t.Errorf("role = %q, want %q", user.Role, models.RoleAdmin)
	}
	if user.PasswordHash == "s3cretpass" {
		t.Errorf("password stored in the clear")
	}
	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash), []byte("s3cretpass"),
	); err != nil {
		t.Errorf("stored hash does not verify the password: %v", err)
	}
}

func TestRegisterRejectsTakenEmail(t *testing.T) {
	repo := newFakeRepo()
	seedUser(t, repo, "asha@example.com", "correct-horse", models.RoleAdmin)

	_, err := NewRegister(repo).Execute(context.Background(), RegisterInput{
		Name:     "Other",
		Email:    "asha@example.com",
		Password: "s3cretpass",
	})
	if !httperr.IsBusiness(err, "email_already_registered") {
		t.Errorf("err = %v, want email_already_registered", err)
	}
}

// --------- Create retailer ---------

func TestCreateRetailerRejectsEmailTakenByUserAccount(t *testing.T) {
	repo := newFakeRepo()

	// The email lives only in the users table. Onboarding must still
	// refuse it, otherwise login for the new retailer collides.
	seedUser(t, repo, "ravi@example.com", "correct-horse", models.RoleAdmin)

	_, err := NewCreateRetailer(repo).Execute(
		context.Background(),
		retailerInput("ravi@example.com", "DL-1234"),
	)
	if !httperr.IsBusiness(err, "email_already_registered") {
		t.Errorf("err = %v, want email_already_registered", err)
	}
	if len(repo.retailers) != 0 {
		t.Errorf("retailer row created despite rejection")
	}
}

func TestCreateRetailerRejectsEmailTakenByRetailer(t *testing.T) {
	repo := newFakeRepo()

	uc := NewCreateRetailer(repo)
	if _, err := uc.Execute(
		context.Background(),
		retailerInput("ravi@example.com", "DL-1234"),
	); err != nil {
		t.Fatalf("first onboarding: %v", err)
	}

	_, err := uc.Execute(
		context.Background(),
		retailerInput("ravi@example.com", "DL-9999"),
	)
	if !httperr.IsBusiness(err, "email_already_registered") {
		t.Errorf("err = %v, want email_already_registered", err)
	}
}

func TestCreateRetailerRejectsTakenLicense(t *testing.T) {
	repo := newFakeRepo()

	uc := NewCreateRetailer(repo)
	if _, err := uc.Execute(
		context.Background(),
		retailerInput("ravi@example.com", "DL-1234"),
	); err != nil {
		t.Fatalf("first onboarding: %v", err)
	}

	_, err := uc.Execute(
		context.Background(),
		retailerInput("other@example.com", "DL-1234"),
	)
	if !httperr.IsBusiness(err, "license_already_registered") {
		t.Errorf("err = %v, want license_already_registered", err)
	}
}

func TestCreateRetailerPairsLoginAccount(t *testing.T) {
	repo := newFakeRepo()

	retailer, err := NewCreateRetailer(repo).Execute(
		context.Background(),
		retailerInput("ravi@example.com", "DL-1234"),
	)
	if err != nil {
		t.Fatalf("onboarding: %v", err)
	}

	if retailer.UserID == 0 {
		t.Fatalf("retailer not linked to a login account")
	}
	if retailer.Status != models.RetailerStatusActive {
		t.Errorf("status = %q, want active", retailer.Status)
	}

	user, err := repo.FindUserByEmail(context.Background(), "ravi@example.com")
	if err != nil {
		t.Fatalf("paired user missing: %v", err)
	}
	if user.ID != retailer.UserID {
		t.Errorf("retailer.UserID = %d, paired user ID = %d", retailer.UserID, user.ID)
	}
	if user.Role != models.RoleRetailer {
		t.Errorf("paired user role = %q, want %q", user.Role, models.RoleRetailer)
	}
}

// --------- Delete retailer ---------

func TestDeleteRetailerRemovesProfileAndAccount(t *testing.T) {
	repo := newFakeRepo()

	retailer, err := NewCreateRetailer(repo).Execute(
		context.Background(),
		retailerInput("ravi@example.com", "DL-1234"),
	)
	if err != nil {
		t.Fatalf("onboarding: %v", err)
	}

	if err := NewDeleteRetailer(repo).Execute(context.Background(), retailer.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if len(repo.retailers) != 0 {
		t.Errorf("retailer row still present after delete")
	}
	if len(repo.users) != 0 {
		t.Errorf("login account still present after delete")
	}
}

func TestDeleteRetailerNotFound(t *testing.T) {
	repo := newFakeRepo()

	err := NewDeleteRetailer(repo).Execute(context.Background(), 42)
	if !httperr.IsBusiness(err, "retailer_not_found") {
		t.Errorf("err = %v, want retailer_not_found", err)
	}
}
