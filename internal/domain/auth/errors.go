package auth

import "errors"

var (
	ErrInvalidCredentials     = errors.New("invalid employee id or password")
	ErrInvalidToken           = errors.New("invalid or expired token")
	ErrTokenRevoked           = errors.New("token has been revoked")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrEmployeeAccessRequired = errors.New("employee session required")
	ErrMissingUpstreamToken   = errors.New("upstream did not return a token")
)
