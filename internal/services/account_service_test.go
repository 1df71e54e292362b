package services

import (
	"context"
	"errors"
	"testing"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

type fakeAccountRepo struct {
	accounts map[string]*db_models.Account
}

var _ repositories.AccountRepository = (*fakeAccountRepo)(nil)

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[string]*db_models.Account)}
}

func (f *fakeAccountRepo) InsertTx(account *db_models.Account, ctx context.Context) error {
	f.accounts[account.Email] = account
	return nil
}

func (f *fakeAccountRepo) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	for _, account := range f.accounts {
		if account.ID.String() == id {
			return account, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return f.accounts[email], nil
}

func TestCreateAccountAndLogin(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAccountService(repo)

	signUp := request_models.SignUpRequest{
		DisplayName: "Test Traveler",
		Email:       "traveler@example.com",
		Password:    "secret123",
	}
	if err := svc.CreateAccount(context.Background(), signUp); err != nil {
		t.Fatalf("CreateAccount returned error: %v", err)
	}

	stored := repo.accounts[signUp.Email]
	if stored == nil {
		t.Fatal("account was not persisted")
	}
	if stored.PasswordHash == signUp.Password {
		t.Error("password stored in plain text")
	}

	token, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    signUp.Email,
		Password: signUp.Password,
	})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token == "" {
		t.Error("expected a non-empty token")
	}
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAccountService(repo)

	signUp := request_models.SignUpRequest{
		DisplayName: "Test Traveler",
		Email:       "traveler@example.com",
		Password:    "secret123",
	}
	if err := svc.CreateAccount(context.Background(), signUp); err != nil {
		t.Fatal(err)
	}
	if err := svc.CreateAccount(context.Background(), signUp); !errors.Is(err, utils.ErrEmailAlreadyExists) {
		t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestLoginFailures(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAccountService(repo)

	if err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Test Traveler",
		Email:       "traveler@example.com",
		Password:    "secret123",
	}); err != nil {
		t.Fatal(err)
	}

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	if !errors.Is(err, utils.ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "traveler@example.com",
		Password: "wrong-password",
	})
	if !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}
