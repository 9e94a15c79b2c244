package service_test

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/atm-service/internal/config"
	"github.com/spec-kit/atm-service/internal/domain"
	"github.com/spec-kit/atm-service/internal/service"
	"github.com/spec-kit/atm-service/pkg/util"
)

func newAuthService(users *memUserRepo) *service.AuthService {
	cfg := config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "test-secret",
			AccessTokenTTLMinutes: 5,
			BcryptCost:            bcrypt.MinCost,
		},
	}
	return service.NewAuthService(cfg, service.AuthDependencies{UserRepo: users})
}

func TestProvisionThenLogin(t *testing.T) {
	svc := newAuthService(newMemUserRepo())
	ctx := context.Background()

	created, err := svc.ProvisionUser(ctx, "carol", "4321", domain.RoleCustomer)
	if err != nil {
		t.Fatalf("provision: %v", err)
	}
	if created.PINHash == "4321" {
		t.Fatal("PIN stored in clear")
	}

	user, token, exp, err := svc.Login(ctx, "carol", "4321")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.ID != created.ID {
		t.Errorf("login resolved user %s, want %s", user.ID, created.ID)
	}
	if token == "" || exp.IsZero() {
		t.Error("login returned empty token or expiry")
	}

	claims, err := svc.TokenManager().ParseToken(token)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if claims.UserID != created.ID || claims.Role != domain.RoleCustomer {
		t.Errorf("token claims %+v do not match user", claims)
	}
}

func TestLogin_WrongPIN(t *testing.T) {
	svc := newAuthService(newMemUserRepo())
	ctx := context.Background()

	if _, err := svc.ProvisionUser(ctx, "carol", "4321", domain.RoleCustomer); err != nil {
		t.Fatalf("provision: %v", err)
	}

	_, _, _, err := svc.Login(ctx, "carol", "9999")
	assertUnauthorized(t, err)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := newAuthService(newMemUserRepo())

	_, _, _, err := svc.Login(context.Background(), "nobody", "0000")
	assertUnauthorized(t, err)
}

func TestProvisionUser_DuplicateLogin(t *testing.T) {
	svc := newAuthService(newMemUserRepo())
	ctx := context.Background()

	if _, err := svc.ProvisionUser(ctx, "carol", "4321", domain.RoleCustomer); err != nil {
		t.Fatalf("provision: %v", err)
	}

	_, err := svc.ProvisionUser(ctx, "carol", "1111", domain.RoleCustomer)
	var domainErr *util.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != "CONFLICT" {
		t.Fatalf("expected CONFLICT, got %v", err)
	}
}

func TestProvisionUser_Validation(t *testing.T) {
	svc := newAuthService(newMemUserRepo())
	ctx := context.Background()

	cases := []struct {
		name  string
		login string
		pin   string
		role  domain.Role
	}{
		{"empty login", "", "1234", domain.RoleCustomer},
		{"empty pin", "carol", "", domain.RoleCustomer},
		{"unknown role", "carol", "1234", domain.Role("AUDITOR")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.ProvisionUser(ctx, tc.login, tc.pin, tc.role)
			var domainErr *util.DomainError
			if !errors.As(err, &domainErr) || domainErr.Code != "VALIDATION_FAILED" {
				t.Fatalf("expected VALIDATION_FAILED, got %v", err)
			}
		})
	}
}

func assertUnauthorized(t *testing.T, err error) {
	t.Helper()
	var domainErr *util.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != "UNAUTHORIZED" {
		t.Fatalf("expected UNAUTHORIZED, got %v", err)
	}
}
