package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/atm-service/internal/auth"
	"github.com/spec-kit/atm-service/internal/config"
	"github.com/spec-kit/atm-service/internal/domain"
	"github.com/spec-kit/atm-service/internal/repository"
	"github.com/spec-kit/atm-service/pkg/util"
)

// AuthService resolves principals at login and provisions users.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	UserRepo repository.UserRepository
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// TokenManager exposes the manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// Login authenticates a user by login and PIN. The returned token carries
// the role claim; the capability set is resolved here, once.
func (s *AuthService) Login(ctx context.Context, login, pin string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", time.Time{}, util.NewUnauthorized("invalid credentials")
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePIN(user.PINHash, pin); err != nil {
		return nil, "", time.Time{}, util.NewUnauthorized("invalid credentials")
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// ProvisionUser creates a user with the given role and a hashed PIN.
// The role is fixed for the user's lifetime.
func (s *AuthService) ProvisionUser(ctx context.Context, login, pin string, role domain.Role) (*domain.User, error) {
	login = strings.TrimSpace(login)
	if login == "" || pin == "" {
		return nil, util.NewValidationError("login and pin required", nil)
	}
	if role != domain.RoleCustomer && role != domain.RoleAdministrator {
		return nil, util.NewValidationError("unknown role", map[string]any{"role": role})
	}

	hash, err := auth.HashPIN(pin, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:      uuid.NewString(),
		Login:   login,
		PINHash: hash,
		Role:    role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, util.NewConflict("login already taken", map[string]any{"login": login})
		}
		return nil, err
	}
	return user, nil
}
