package jwt

import (
	"context"
	"sync"
	"time"

	"github.com/cmlabs-hris/attendance-client/internal/domain/auth"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const (
	claimEmployeeID    = "employee_id"
	claimName          = "name"
	claimRole          = "role"
	claimUpstreamToken = "upstream_token"
	claimType          = "type"
)

type Service interface {
	// GenerateSessionToken wraps an upstream session in a signed access token
	GenerateSessionToken(session auth.Session) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
}

type JWTService struct {
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
	revokedTokens             map[string]int64
	mu                        sync.RWMutex
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:             make(map[string]int64),
	}
}

func (j *JWTService) GenerateSessionToken(session auth.Session) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		claimEmployeeID:    session.EmployeeID,
		claimName:          session.Name,
		claimRole:          string(session.Role),
		claimUpstreamToken: session.Token,
		claimType:          "access",
		"jti":              uuid.NewString(),
		"exp":              expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) RevokeToken(token string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[token] = time.Now().Unix()
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}

// SessionFromContext rebuilds the caller's session from verified claims put
// on ctx by jwtauth.Verifier.
func SessionFromContext(ctx context.Context) (auth.Session, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return auth.Session{}, auth.ErrInvalidToken
	}

	if tokenType, _ := claims[claimType].(string); tokenType != "access" {
		return auth.Session{}, auth.ErrInvalidToken
	}

	upstreamToken, ok := claims[claimUpstreamToken].(string)
	if !ok || upstreamToken == "" {
		return auth.Session{}, auth.ErrInvalidToken
	}

	role, _ := claims[claimRole].(string)
	employeeID, _ := claims[claimEmployeeID].(string)
	name, _ := claims[claimName].(string)

	return auth.Session{
		Token:      upstreamToken,
		EmployeeID: employeeID,
		Name:       name,
		Role:       auth.Role(role),
	}, nil
}
