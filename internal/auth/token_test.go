package auth_test

import (
	"testing"

	"github.com/spec-kit/atm-service/internal/auth"
	"github.com/spec-kit/atm-service/internal/domain"
)

func TestGenerateAndParseToken(t *testing.T) {
	manager := auth.NewTokenManager("secret", 5)

	token, expiresAt, err := manager.GenerateToken("user-1", domain.RoleAdministrator)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if expiresAt.IsZero() {
		t.Fatal("expiry not set")
	}

	claims, err := manager.ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("subject %s, want user-1", claims.UserID)
	}
	if claims.Role != domain.RoleAdministrator {
		t.Errorf("role %s, want %s", claims.Role, domain.RoleAdministrator)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	issuer := auth.NewTokenManager("secret-a", 5)
	verifier := auth.NewTokenManager("secret-b", 5)

	token, _, err := issuer.GenerateToken("user-1", domain.RoleCustomer)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := verifier.ParseToken(token); err == nil {
		t.Fatal("token signed with another secret was accepted")
	}
}

func TestParseToken_Tampered(t *testing.T) {
	manager := auth.NewTokenManager("secret", 5)

	token, _, err := manager.GenerateToken("user-1", domain.RoleCustomer)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := manager.ParseToken(tampered); err == nil {
		t.Fatal("tampered token was accepted")
	}
}

func TestHashAndComparePIN(t *testing.T) {
	hash, err := auth.HashPIN("4321", 4)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "4321" {
		t.Fatal("PIN not hashed")
	}
	if err := auth.ComparePIN(hash, "4321"); err != nil {
		t.Errorf("correct PIN rejected: %v", err)
	}
	if err := auth.ComparePIN(hash, "0000"); err == nil {
		t.Error("wrong PIN accepted")
	}
}
