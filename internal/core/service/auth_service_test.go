package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/colisexpress/delivery-system/internal/core/domain"
	"github.com/colisexpress/delivery-system/internal/core/ports"
)

// stubUserRepo is an in-memory UserRepository keyed by email.
type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[string]*domain.User{}}
}

func (r *stubUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (r *stubUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.Email]; ok {
		return nil, domain.ErrUserExists
	}
	user.ID = "u" + user.Email
	r.users[user.Email] = user
	return user, nil
}

func (r *stubUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, user)
	}
	return out, nil
}

func TestRegisterDefaultsToClientRole(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "jane@example.com",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Role != domain.RoleClient {
		t.Errorf("role = %q, want CLIENT", user.Role)
	}
	if user.PasswordHash == "hunter22" || user.PasswordHash == "" {
		t.Error("password must be stored hashed")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22")) != nil {
		t.Error("stored hash does not match password")
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "jane@example.com",
		Password: "hunter22",
		Role:     "SUPERUSER",
	})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)
	input := ports.RegisterInput{Email: "jane@example.com", Password: "hunter22"}

	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("err = %v, want ErrUserExists", err)
	}
}

func TestLoginIssuesSpringShapedToken(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "jane@example.com",
		Password: "hunter22",
		Role:     domain.RoleManager,
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "jane@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Role != domain.RoleManager {
		t.Errorf("user role = %q", user.Role)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("parse token: %v", err)
	}

	roles, ok := claims["roles"].([]interface{})
	if !ok || len(roles) != 1 || roles[0] != "ROLE_MANAGER" {
		t.Errorf("roles claim = %v, want [ROLE_MANAGER]", claims["roles"])
	}
	if claims["sub"] != user.ID {
		t.Errorf("sub = %v, want %s", claims["sub"], user.ID)
	}
	if claims["email"] != "jane@example.com" {
		t.Errorf("email = %v", claims["email"])
	}
	if _, ok := claims["exp"]; !ok {
		t.Error("token has no expiry")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "jane@example.com",
		Password: "hunter22",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "jane@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pw"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}
