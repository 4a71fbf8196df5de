package auth

import (
	"time"

	"github.com/cmlabs-hris/attendance-client/internal/pkg/validator"
)

type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

// Session is everything needed to call the upstream API on someone's behalf.
// It travels explicitly from the handler to each repository call.
type Session struct {
	Token      string // upstream bearer token
	EmployeeID string
	Name       string
	Role       Role
}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// Profile is the employee document served by the upstream /me endpoint.
type Profile struct {
	ID          string `json:"_id,omitempty"`
	EmployeeID  string `json:"employeeId"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	Department  string `json:"department,omitempty"`
	LastCheckIn string `json:"lastCheckIn,omitempty"`
}

// CheckedInOn reports whether LastCheckIn falls on the same calendar day as
// day, both read in loc.
func (p Profile) CheckedInOn(day time.Time, loc *time.Location) bool {
	last, ok := validator.IsValidDateTime(p.LastCheckIn)
	if !ok {
		return false
	}
	return last.In(loc).Format("2006-01-02") == day.In(loc).Format("2006-01-02")
}
