package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
)

// DefaultAdmin is the credential seeded into an empty admin table.
type DefaultAdmin struct {
	Username string
	Password string
}

type AuthServiceImpl struct {
	adminRepo    auth.AdminRepository
	scheme       auth.CredentialScheme
	jwtService   jwt.Service
	defaultAdmin DefaultAdmin
}

func NewAuthService(adminRepo auth.AdminRepository, scheme auth.CredentialScheme, jwtService jwt.Service, defaultAdmin DefaultAdmin) auth.AuthService {
	return &AuthServiceImpl{
		adminRepo:    adminRepo,
		scheme:       scheme,
		jwtService:   jwtService,
		defaultAdmin: defaultAdmin,
	}
}

// Bootstrap implements auth.AuthService.
func (a *AuthServiceImpl) Bootstrap(ctx context.Context) (bool, error) {
	stored, err := a.scheme.Encode(a.defaultAdmin.Password)
	if err != nil {
		return false, fmt.Errorf("failed to encode default admin password: %w", err)
	}

	inserted, err := a.adminRepo.CreateIfEmpty(ctx, a.defaultAdmin.Username, stored)
	if err != nil {
		return false, err
	}
	return inserted, nil
}

// Validate implements auth.AuthService.
func (a *AuthServiceImpl) Validate(ctx context.Context, username, password string) (bool, error) {
	admin, err := a.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return a.scheme.Verify(admin.Password, password), nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	ok, err := a.Validate(ctx, req.Username, req.Password)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to validate credentials: %w", err)
	}
	if !ok {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	var tokenResponse auth.TokenResponse
	tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.jwtService.GenerateAccessToken(req.Username)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	tokenResponse.TokenType = "Bearer"

	return tokenResponse, nil
}
