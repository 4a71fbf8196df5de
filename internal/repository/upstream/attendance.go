package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/cmlabs-hris/attendance-client/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-client/internal/domain/auth"
)

type attendanceRepository struct {
	client *Client
}

func NewAttendanceRepository(client *Client) attendance.AttendanceRepository {
	return &attendanceRepository{client: client}
}

// ListMine implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListMine(ctx context.Context, session auth.Session) ([]attendance.Record, error) {
	var records []attendance.Record
	if err := a.client.do(ctx, a.client.authorized(ctx, session), http.MethodGet, "/attendance", nil, nil, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []attendance.Record{}
	}
	return records, nil
}

// ListByDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByDate(ctx context.Context, session auth.Session, date string) ([]attendance.Record, error) {
	query := url.Values{}
	if date != "" {
		query.Set("date", date)
	}

	var records []attendance.Record
	if err := a.client.do(ctx, a.client.authorized(ctx, session), http.MethodGet, "/admin/attendance", query, nil, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []attendance.Record{}
	}
	return records, nil
}

// CheckIn implements attendance.AttendanceRepository.
func (a *attendanceRepository) CheckIn(ctx context.Context, session auth.Session, payload attendance.CheckInPayload) (attendance.Record, error) {
	var record attendance.Record
	if err := a.client.do(ctx, a.client.authorized(ctx, session), http.MethodPost, "/checkin", nil, payload, &record); err != nil {
		return attendance.Record{}, err
	}
	return record, nil
}
