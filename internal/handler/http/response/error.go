package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/attendance-client/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-client/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-client/internal/domain/checkin"
	"github.com/cmlabs-hris/attendance-client/internal/pkg/validator"
	"github.com/cmlabs-hris/attendance-client/internal/repository/upstream"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Closed windows carry their own user-facing message
	var closed *checkin.WindowClosedError
	if errors.As(err, &closed) {
		Forbidden(w, closed.Error())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token has been revoked")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, auth.ErrEmployeeAccessRequired):
		Forbidden(w, "Employee session required")
	case errors.Is(err, auth.ErrMissingUpstreamToken):
		BadGateway(w, "Login service did not return a session")

	// Check-in domain errors
	case errors.Is(err, checkin.ErrAlreadyCheckedIn):
		Conflict(w, "You have already checked in today")
	case errors.Is(err, checkin.ErrLocationRequired):
		BadRequest(w, "Location is required for office check-in", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrExportFailed):
		InternalServerError(w, "Failed to generate attendance report")

	default:
		handleUpstreamError(w, err)
	}
}

// handleUpstreamError relays upstream 4xx messages to the client and hides
// upstream 5xx and transport failures behind a 502.
func handleUpstreamError(w http.ResponseWriter, err error) {
	var upErr *upstream.Error
	if !errors.As(err, &upErr) {
		if errors.Is(err, attendance.ErrRecordsUnavailable) {
			BadGateway(w, "Attendance records are unavailable right now")
			return
		}
		InternalServerError(w, "An unexpected error occurred")
		return
	}

	switch {
	case upErr.StatusCode == http.StatusUnauthorized:
		Unauthorized(w, upErr.Message)
	case upErr.StatusCode == http.StatusForbidden:
		Forbidden(w, upErr.Message)
	case upErr.StatusCode == http.StatusNotFound:
		NotFound(w, upErr.Message)
	case upErr.StatusCode == http.StatusConflict:
		Conflict(w, upErr.Message)
	case upErr.StatusCode >= 400 && upErr.StatusCode < 500:
		BadRequest(w, upErr.Message, nil)
	default:
		BadGateway(w, "Upstream service error")
	}
}
