package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-client/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-client/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-client/internal/pkg/jwt"
)

// RequireEmployee requires an employee session; admin sessions have no
// attendance of their own.
func RequireEmployee(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := jwt.SessionFromContext(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if session.Role != auth.RoleEmployee {
			response.HandleError(w, auth.ErrEmployeeAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
