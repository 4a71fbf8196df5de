package auth

import "context"

// Credentials is what the upstream hands back on a successful login.
type Credentials struct {
	Token    string   `json:"token"`
	Employee *Profile `json:"employee,omitempty"`
}

// AuthRepository is the upstream identity API.
type AuthRepository interface {
	Register(ctx context.Context, req RegisterRequest) error
	Login(ctx context.Context, req LoginRequest) (Credentials, error)
	AdminLogin(ctx context.Context, req AdminLoginRequest) (Credentials, error)

	// Profile returns the session employee's profile
	Profile(ctx context.Context, session Session) (Profile, error)
}
