package checkin

import (
	"strings"

	"github.com/cmlabs-hris/attendance-client/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-client/internal/pkg/validator"
)

type CheckInRequest struct {
	Status    Option   `json:"status"`
	Notes     string   `json:"notes"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Status.Valid() {
		names := make([]string, 0, len(Options()))
		for _, o := range Options() {
			names = append(names, string(o))
		}
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(names, ", "),
		})
	}

	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}
	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(r.Notes) > 1000 {
		errs = append(errs, validator.ValidationError{
			Field:   "notes",
			Message: "notes must not exceed 1000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Payload builds the upstream body. Coordinates are attached for office
// check-ins only; the caller must have checked they are present.
func (r *CheckInRequest) Payload() attendance.CheckInPayload {
	payload := attendance.CheckInPayload{
		Status: r.Status.PayloadStatus(),
		Notes:  r.Notes,
	}
	if r.Status.RequiresLocation() {
		payload.Latitude = r.Latitude
		payload.Longitude = r.Longitude
	}
	return payload
}

type OptionResponse struct {
	Value            Option `json:"value"`
	Status           string `json:"status"`
	RequiresLocation bool   `json:"requires_location"`
}

type CheckInResponse struct {
	Record attendance.Record `json:"record"`

	// Distance from the office in meters. Estimated is set when the upstream
	// did not echo a distance and it was computed locally.
	Distance  *float64 `json:"distance,omitempty"`
	Estimated bool     `json:"estimated,omitempty"`
}
