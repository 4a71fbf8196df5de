package auth

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-client/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-client/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	auth.AuthRepository
	jwt.Service
}

func NewAuthService(authRepository auth.AuthRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		AuthRepository: authRepository,
		Service:        jwtService,
	}
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) error {
	if err := a.AuthRepository.Register(ctx, req); err != nil {
		return fmt.Errorf("failed to register employee: %w", err)
	}
	return nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	creds, err := a.AuthRepository.Login(ctx, req)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	session := auth.Session{
		Token:      creds.Token,
		EmployeeID: req.EmployeeID,
		Role:       auth.RoleEmployee,
	}
	if creds.Employee != nil {
		if creds.Employee.EmployeeID != "" {
			session.EmployeeID = creds.Employee.EmployeeID
		}
		session.Name = creds.Employee.Name
	}

	return a.issue(session, creds.Employee)
}

// AdminLogin implements auth.AuthService.
func (a *AuthServiceImpl) AdminLogin(ctx context.Context, req auth.AdminLoginRequest) (auth.LoginResponse, error) {
	creds, err := a.AuthRepository.AdminLogin(ctx, req)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	session := auth.Session{
		Token: creds.Token,
		Name:  req.Username,
		Role:  auth.RoleAdmin,
	}
	return a.issue(session, nil)
}

func (a *AuthServiceImpl) issue(session auth.Session, employee *auth.Profile) (auth.LoginResponse, error) {
	if session.Token == "" {
		return auth.LoginResponse{}, auth.ErrMissingUpstreamToken
	}

	token, expiresAt, err := a.Service.GenerateSessionToken(session)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate session token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Role:        session.Role,
		Employee:    employee,
	}, nil
}

// Profile implements auth.AuthService.
func (a *AuthServiceImpl) Profile(ctx context.Context, session auth.Session) (auth.Profile, error) {
	profile, err := a.AuthRepository.Profile(ctx, session)
	if err != nil {
		return auth.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}
