package upstream

import (
	"context"
	"errors"
	"net/http"

	"github.com/cmlabs-hris/attendance-client/internal/domain/auth"
)

type authRepository struct {
	client *Client
}

func NewAuthRepository(client *Client) auth.AuthRepository {
	return &authRepository{client: client}
}

// Register implements auth.AuthRepository.
func (a *authRepository) Register(ctx context.Context, req auth.RegisterRequest) error {
	body := map[string]string{
		"employeeId": req.EmployeeID,
		"name":       req.Name,
		"password":   req.Password,
	}
	if req.Email != "" {
		body["email"] = req.Email
	}
	return a.client.do(ctx, a.client.http, http.MethodPost, "/register", nil, body, nil)
}

// Login implements auth.AuthRepository.
func (a *authRepository) Login(ctx context.Context, req auth.LoginRequest) (auth.Credentials, error) {
	body := map[string]string{
		"employeeId": req.EmployeeID,
		"password":   req.Password,
	}
	return a.login(ctx, "/login", body)
}

// AdminLogin implements auth.AuthRepository.
func (a *authRepository) AdminLogin(ctx context.Context, req auth.AdminLoginRequest) (auth.Credentials, error) {
	body := map[string]string{
		"username": req.Username,
		"password": req.Password,
	}
	return a.login(ctx, "/admin/login", body)
}

func (a *authRepository) login(ctx context.Context, path string, body interface{}) (auth.Credentials, error) {
	var creds auth.Credentials
	if err := a.client.do(ctx, a.client.http, http.MethodPost, path, nil, body, &creds); err != nil {
		var upErr *Error
		if errors.As(err, &upErr) && (upErr.StatusCode == http.StatusUnauthorized || upErr.StatusCode == http.StatusNotFound) {
			return auth.Credentials{}, auth.ErrInvalidCredentials
		}
		return auth.Credentials{}, err
	}
	if creds.Token == "" {
		return auth.Credentials{}, auth.ErrMissingUpstreamToken
	}
	return creds, nil
}

// Profile implements auth.AuthRepository.
func (a *authRepository) Profile(ctx context.Context, session auth.Session) (auth.Profile, error) {
	var profile auth.Profile
	if err := a.client.do(ctx, a.client.authorized(ctx, session), http.MethodGet, "/me", nil, nil, &profile); err != nil {
		return auth.Profile{}, err
	}
	return profile, nil
}
