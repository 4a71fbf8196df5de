package attendance

import (
	"encoding/json"
	"time"

	"github.com/cmlabs-hris/attendance-client/internal/pkg/validator"
)

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Record is one attendance entry as served by the upstream API. Date and
// CheckInTime stay as sent and are parsed on use.
type Record struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	EmployeeName string    `json:"employeeName"`
	Date         string    `json:"date"`
	CheckInTime  string    `json:"checkInTime,omitempty"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes,omitempty"`
	Location     *Location `json:"location,omitempty"`
	Distance     *float64  `json:"distance,omitempty"`
}

// UnmarshalJSON accepts the upstream's "_id" as well as "id". A field of the
// wrong JSON type decodes as empty, so the record falls back to its "N/A" and
// undated paths instead of failing the batch.
func (r *Record) UnmarshalJSON(data []byte) error {
	type plain Record
	var raw struct {
		plain
		ID           json.RawMessage `json:"id"`
		MongoID      json.RawMessage `json:"_id"`
		EmployeeID   json.RawMessage `json:"employeeId"`
		EmployeeName json.RawMessage `json:"employeeName"`
		Date         json.RawMessage `json:"date"`
		CheckInTime  json.RawMessage `json:"checkInTime"`
		Status       json.RawMessage `json:"status"`
		Notes        json.RawMessage `json:"notes"`
		Location     json.RawMessage `json:"location"`
		Distance     json.RawMessage `json:"distance"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = Record(raw.plain)
	r.ID = stringOrEmpty(raw.ID)
	r.EmployeeID = stringOrEmpty(raw.EmployeeID)
	r.EmployeeName = stringOrEmpty(raw.EmployeeName)
	r.Date = stringOrEmpty(raw.Date)
	r.CheckInTime = stringOrEmpty(raw.CheckInTime)
	r.Status = stringOrEmpty(raw.Status)
	r.Notes = stringOrEmpty(raw.Notes)
	if r.ID == "" {
		r.ID = stringOrEmpty(raw.MongoID)
	}
	if json.Unmarshal(raw.Location, &r.Location) != nil {
		r.Location = nil
	}
	if json.Unmarshal(raw.Distance, &r.Distance) != nil {
		r.Distance = nil
	}
	return nil
}

func stringOrEmpty(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// ParsedDate returns the record's calendar date, false when absent or malformed.
func (r Record) ParsedDate() (time.Time, bool) {
	return validator.ParseTimestamp(r.Date)
}

// ParsedCheckIn returns the check-in instant, false when absent or malformed.
func (r Record) ParsedCheckIn() (time.Time, bool) {
	return validator.IsValidDateTime(r.CheckInTime)
}

// HasStatus reports whether the record can be classified at all.
func (r Record) HasStatus() bool {
	return !validator.IsEmpty(r.Status)
}
