package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"love-by-flavour/internal/domain"
	"love-by-flavour/internal/flavour"
)

type mockUserRepo struct {
	usersByID        map[string]domain.User
	usersByEmail     map[string]string
	flavourUpdates   map[string]flavour.Flavour
	updateFlavourErr error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		usersByID:      make(map[string]domain.User),
		usersByEmail:   make(map[string]string),
		flavourUpdates: make(map[string]flavour.Flavour),
	}
}

func (m *mockUserRepo) Create(_ context.Context, user domain.User) error {
	m.usersByID[user.ID] = user
	if user.Email != "" {
		m.usersByEmail[user.Email] = user.ID
	}
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (domain.User, error) {
	user, ok := m.usersByID[id]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return user, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	id, ok := m.usersByEmail[email]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return m.GetByID(context.Background(), id)
}

func (m *mockUserRepo) UpdateFlavour(_ context.Context, id string, f flavour.Flavour) error {
	if m.updateFlavourErr != nil {
		return m.updateFlavourErr
	}
	m.flavourUpdates[id] = f
	user, ok := m.usersByID[id]
	if ok {
		user.Flavour = f
		m.usersByID[id] = user
	}
	return nil
}

func TestUserServiceRegisterHashesAndNormalizes(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(zap.NewNop(), repo)

	user, err := svc.Register(context.Background(), RegisterInput{
		Email:       "  User@Example.COM ",
		DisplayName: " Test ",
		Password:    "hunter2hunter2",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if user.Email != "user@example.com" {
		t.Fatalf("email not normalized: %q", user.Email)
	}
	if user.DisplayName != "Test" {
		t.Fatalf("display name not trimmed: %q", user.DisplayName)
	}
	if user.PasswordHash == "hunter2hunter2" || user.PasswordHash == "" {
		t.Fatalf("password stored without hashing")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter2hunter2")); err != nil {
		t.Fatalf("hash does not verify: %v", err)
	}
}

func TestUserServiceRegisterRejectsBadInput(t *testing.T) {
	svc := NewUserService(zap.NewNop(), newMockUserRepo())

	if _, err := svc.Register(context.Background(), RegisterInput{Email: "not-an-email", Password: "longenough"}); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
	if _, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.com", Password: "short"}); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
}

func TestUserServiceAuthenticate(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(zap.NewNop(), repo)

	registered, err := svc.Register(context.Background(), RegisterInput{
		Email:    "user@example.com",
		Password: "hunter2hunter2",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	user, err := svc.Authenticate(context.Background(), "USER@example.com", "hunter2hunter2")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("authenticated wrong user")
	}

	if _, err := svc.Authenticate(context.Background(), "user@example.com", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "ghost@example.com", "hunter2hunter2"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestUserServiceGetByID(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(zap.NewNop(), repo)

	repo.usersByID["u1"] = domain.User{ID: "u1", Email: "user@example.com"}

	user, err := svc.GetByID(context.Background(), "u1")
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if user.ID != "u1" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.GetByID(context.Background(), "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
