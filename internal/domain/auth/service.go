package auth

import "context"

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) error

	// Login authenticates against upstream and issues a session token
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// AdminLogin is Login for the admin dashboard
	AdminLogin(ctx context.Context, req AdminLoginRequest) (LoginResponse, error)

	Profile(ctx context.Context, session Session) (Profile, error)
}
