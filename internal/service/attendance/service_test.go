package attendance

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-client/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-client/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-client/internal/pkg/report"
	"github.com/cmlabs-hris/attendance-client/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakeAttendanceRepository struct {
	mine     []attendance.Record
	byDate   []attendance.Record
	err      error
	gotDates []string
}

func (f *fakeAttendanceRepository) ListMine(ctx context.Context, session auth.Session) ([]attendance.Record, error) {
	return f.mine, f.err
}

func (f *fakeAttendanceRepository) ListByDate(ctx context.Context, session auth.Session, date string) ([]attendance.Record, error) {
	f.gotDates = append(f.gotDates, date)
	return f.byDate, f.err
}

func (f *fakeAttendanceRepository) CheckIn(ctx context.Context, session auth.Session, payload attendance.CheckInPayload) (attendance.Record, error) {
	return attendance.Record{}, nil
}

type fakeAuthRepository struct {
	profile auth.Profile
	err     error
}

func (f *fakeAuthRepository) Register(ctx context.Context, req auth.RegisterRequest) error {
	return nil
}

func (f *fakeAuthRepository) Login(ctx context.Context, req auth.LoginRequest) (auth.Credentials, error) {
	return auth.Credentials{}, nil
}

func (f *fakeAuthRepository) AdminLogin(ctx context.Context, req auth.AdminLoginRequest) (auth.Credentials, error) {
	return auth.Credentials{}, nil
}

func (f *fakeAuthRepository) Profile(ctx context.Context, session auth.Session) (auth.Profile, error) {
	return f.profile, f.err
}

var (
	employee = auth.Session{Token: "tok", EmployeeID: "NW0001", Role: auth.RoleEmployee}
	admin    = auth.Session{Token: "admin-tok", Name: "admin", Role: auth.RoleAdmin}
	testNow  = time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
)

func newTestService(att *fakeAttendanceRepository, au *fakeAuthRepository) *AttendanceServiceImpl {
	classifier := attendance.NewClassifier(time.UTC, attendance.DefaultLatePolicy)
	return NewAttendanceService(att, au, classifier).WithClock(func() time.Time { return testNow })
}

func dayRecords() []attendance.Record {
	return []attendance.Record{
		{ID: "1", EmployeeID: "NW0001", EmployeeName: "Asha", Date: "2024-03-04", CheckInTime: "2024-03-04T09:05:00Z", Status: "present"},
		{ID: "2", EmployeeID: "NW0002", EmployeeName: "Ravi", Date: "2024-03-04", CheckInTime: "2024-03-04T09:35:00Z", Status: "Present"},
		{ID: "3", EmployeeID: "NW0003", EmployeeName: "Meera", Date: "2024-03-04", Status: "absent-sick"},
		{ID: "4", EmployeeID: "NW0004", EmployeeName: "Kiran", Date: "2024-03-04", Status: "bootcamp"},
		{ID: "5", EmployeeID: "NW0005", Date: "2024-03-04"},
	}
}

func TestAttendanceService_GetMyAttendance(t *testing.T) {
	att := &fakeAttendanceRepository{mine: []attendance.Record{
		{ID: "a", Date: "2024-03-01", Status: "workshop"},
		{ID: "b", Date: "2024-03-04", Status: "present", CheckInTime: "2024-03-04T08:45:00Z"},
		{ID: "c", Date: "2024-03-02", Status: "Absent - Personal", Notes: ""},
	}}
	svc := newTestService(att, &fakeAuthRepository{})

	resp, err := svc.GetMyAttendance(context.Background(), employee)
	require.NoError(t, err)

	require.Len(t, resp.History, 3)
	assert.Equal(t, "b", resp.History[0].ID)
	assert.Equal(t, "Mar 04, 2024", resp.History[0].Date)
	assert.Equal(t, "08:45 AM", resp.History[0].CheckInTime)
	assert.Equal(t, "Present (Office)", resp.History[0].StatusLabel)

	require.Len(t, resp.Workshop, 1)
	require.Len(t, resp.Leave, 1)
	assert.Equal(t, "Personal Leave", resp.Leave[0].LeaveType)
	assert.Equal(t, "1 day", resp.Leave[0].Duration)
	assert.Equal(t, "No reason provided", resp.Leave[0].Reason)
	assert.Empty(t, resp.Bootcamp)
}

func TestAttendanceService_GetMyAttendance_UpstreamError(t *testing.T) {
	upstreamErr := errors.New("connection refused")
	svc := newTestService(&fakeAttendanceRepository{err: upstreamErr}, &fakeAuthRepository{})

	_, err := svc.GetMyAttendance(context.Background(), employee)
	assert.ErrorIs(t, err, attendance.ErrRecordsUnavailable)
	assert.ErrorIs(t, err, upstreamErr)
}

func TestAttendanceService_GetDashboard(t *testing.T) {
	att := &fakeAttendanceRepository{mine: []attendance.Record{{ID: "a", Date: "2024-03-04", Status: "present"}}}
	au := &fakeAuthRepository{profile: auth.Profile{EmployeeID: "NW0001", Name: "Asha", LastCheckIn: "2024-03-04T08:40:00Z"}}
	svc := newTestService(att, au)

	resp, err := svc.GetDashboard(context.Background(), employee)
	require.NoError(t, err)
	assert.Equal(t, "Asha", resp.Employee.Name)
	assert.True(t, resp.CheckedInToday)
	assert.Len(t, resp.Attendance.History, 1)
}

func TestAttendanceService_GetDashboard_ProfileError(t *testing.T) {
	profileErr := errors.New("unauthorized")
	svc := newTestService(&fakeAttendanceRepository{}, &fakeAuthRepository{err: profileErr})

	_, err := svc.GetDashboard(context.Background(), employee)
	assert.ErrorIs(t, err, profileErr)
}

func TestAttendanceService_GetDailyMetrics(t *testing.T) {
	att := &fakeAttendanceRepository{byDate: dayRecords()}
	svc := newTestService(att, &fakeAuthRepository{})

	resp, err := svc.GetDailyMetrics(context.Background(), admin, attendance.DailyMetricsFilter{})
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-03-04"}, att.gotDates)
	assert.Equal(t, "2024-03-04", resp.Date)
	assert.Equal(t, 2, resp.PresentCount)
	assert.Equal(t, 1, resp.LeaveCount)
	assert.Equal(t, 1, resp.LateCount)
	assert.Equal(t, 4, resp.TotalRecords)
	assert.Equal(t, 5, resp.TotalEmployees)
	assert.InDelta(t, 50.0, resp.AttendancePercentage, 0.001)
	assert.Equal(t, "9:10", resp.LateCutoff)

	require.Len(t, resp.LateArrivals, 1)
	assert.Equal(t, "Ravi", resp.LateArrivals[0].EmployeeName)
	require.NotNil(t, resp.LateArrivals[0].MinutesLate)
	assert.Equal(t, 25, *resp.LateArrivals[0].MinutesLate)

	assert.Len(t, resp.Recent, 4)
	assert.Equal(t, []int{2, 1, 1}, resp.Chart.Values)
	assert.Equal(t, []int{50, 25, 25}, resp.Chart.Percentages)
}

func TestAttendanceService_GetDailyMetrics_RequiresAdmin(t *testing.T) {
	att := &fakeAttendanceRepository{}
	svc := newTestService(att, &fakeAuthRepository{})

	_, err := svc.GetDailyMetrics(context.Background(), employee, attendance.DailyMetricsFilter{})
	assert.ErrorIs(t, err, auth.ErrAdminPrivilegeRequired)
	assert.Empty(t, att.gotDates)
}

func TestAttendanceService_GetDailyMetrics_FutureDate(t *testing.T) {
	svc := newTestService(&fakeAttendanceRepository{}, &fakeAuthRepository{})

	_, err := svc.GetDailyMetrics(context.Background(), admin, attendance.DailyMetricsFilter{Date: "2024-03-05"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "date", verrs[0].Field)
}

func TestAttendanceService_ExportDailyMetrics(t *testing.T) {
	svc := newTestService(&fakeAttendanceRepository{byDate: dayRecords()}, &fakeAuthRepository{})

	data, err := svc.ExportDailyMetrics(context.Background(), admin, attendance.DailyMetricsFilter{Date: "2024-03-04"})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(report.SheetLate)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "NW0002", rows[1][0])
}
