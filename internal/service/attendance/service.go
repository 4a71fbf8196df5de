package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-client/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-client/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-client/internal/pkg/report"
	"golang.org/x/sync/errgroup"
)

var _ attendance.AttendanceService = (*AttendanceServiceImpl)(nil)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	auth.AuthRepository

	classifier *attendance.Classifier
	now        func() time.Time
}

func NewAttendanceService(
	attendanceRepository attendance.AttendanceRepository,
	authRepository auth.AuthRepository,
	classifier *attendance.Classifier,
) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		AuthRepository:       authRepository,
		classifier:           classifier,
		now:                  time.Now,
	}
}

// WithClock replaces the wall clock used for "today".
func (s *AttendanceServiceImpl) WithClock(now func() time.Time) *AttendanceServiceImpl {
	s.now = now
	return s
}

func (s *AttendanceServiceImpl) loc() *time.Location {
	return s.classifier.Location()
}

// GetMyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, session auth.Session) (attendance.MyAttendanceResponse, error) {
	records, err := s.AttendanceRepository.ListMine(ctx, session)
	if err != nil {
		return attendance.MyAttendanceResponse{}, fmt.Errorf("%w: %w", attendance.ErrRecordsUnavailable, err)
	}

	metrics := s.classifier.Classify(records)
	return attendance.NewMyAttendanceResponse(metrics, s.loc()), nil
}

// GetDashboard implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetDashboard(ctx context.Context, session auth.Session) (attendance.DashboardResponse, error) {
	var (
		profile auth.Profile
		records []attendance.Record
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := s.AuthRepository.Profile(gCtx, session)
		if err != nil {
			return fmt.Errorf("failed to get profile: %w", err)
		}
		profile = p
		return nil
	})

	g.Go(func() error {
		r, err := s.AttendanceRepository.ListMine(gCtx, session)
		if err != nil {
			return fmt.Errorf("%w: %w", attendance.ErrRecordsUnavailable, err)
		}
		records = r
		return nil
	})

	if err := g.Wait(); err != nil {
		return attendance.DashboardResponse{}, err
	}

	metrics := s.classifier.Classify(records)
	return attendance.DashboardResponse{
		Employee:       profile,
		CheckedInToday: profile.CheckedInOn(s.now(), s.loc()),
		Attendance:     attendance.NewMyAttendanceResponse(metrics, s.loc()),
	}, nil
}

// GetDailyMetrics implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetDailyMetrics(ctx context.Context, session auth.Session, filter attendance.DailyMetricsFilter) (attendance.DailyMetricsResponse, error) {
	if !session.IsAdmin() {
		return attendance.DailyMetricsResponse{}, auth.ErrAdminPrivilegeRequired
	}
	if err := filter.Validate(s.now().In(s.loc())); err != nil {
		return attendance.DailyMetricsResponse{}, err
	}

	records, err := s.AttendanceRepository.ListByDate(ctx, session, filter.Date)
	if err != nil {
		return attendance.DailyMetricsResponse{}, fmt.Errorf("%w: %w", attendance.ErrRecordsUnavailable, err)
	}

	metrics := s.classifier.Classify(records)
	if metrics.UnrecognizedCount > 0 {
		slog.Warn("Unrecognized attendance statuses", "date", filter.Date, "count", metrics.UnrecognizedCount)
	}

	return attendance.NewDailyMetricsResponse(filter.Date, metrics, records, s.classifier.Policy(), s.loc()), nil
}

// ExportDailyMetrics implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ExportDailyMetrics(ctx context.Context, session auth.Session, filter attendance.DailyMetricsFilter) ([]byte, error) {
	metrics, err := s.GetDailyMetrics(ctx, session, filter)
	if err != nil {
		return nil, err
	}

	data, err := report.DailyMetricsWorkbook(metrics)
	if err != nil {
		return nil, errors.Join(attendance.ErrExportFailed, err)
	}
	return data, nil
}
