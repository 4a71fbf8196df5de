package attendance

import (
	"math"
	"strings"
	"time"
)

const (
	notAvailable     = "N/A"
	noNotes          = "No notes"
	noReason         = "No reason provided"
	defaultDuration  = "1 day"
	displayDate      = "Jan 02, 2006"
	displayClockTime = "03:04 PM"
	recentLimit      = 5
)

// DisplayDate renders a record date as "Jan 02, 2006". Bare YYYY-MM-DD dates
// are shown as written; timestamps are shown in loc.
func DisplayDate(r Record, loc *time.Location) string {
	t, ok := r.ParsedDate()
	if !ok {
		return notAvailable
	}
	if len(strings.TrimSpace(r.Date)) > len("2006-01-02") {
		t = t.In(loc)
	}
	return t.Format(displayDate)
}

// DisplayCheckIn renders the check-in clock time in loc as "03:04 PM".
func DisplayCheckIn(r Record, loc *time.Location) string {
	t, ok := r.ParsedCheckIn()
	if !ok {
		return notAvailable
	}
	return t.In(loc).Format(displayClockTime)
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// ========================================
// EMPLOYEE VIEWS
// ========================================

type HistoryItem struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	Date        string `json:"date"`
	CheckInTime string `json:"check_in_time"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
	Notes       string `json:"notes"`
}

type LeaveItem struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	LeaveType string `json:"leave_type"`
	Duration  string `json:"duration"`
	Reason    string `json:"reason"`
}

type MyAttendanceResponse struct {
	History    []HistoryItem `json:"history"`
	Bootcamp   []HistoryItem `json:"bootcamp"`
	Workshop   []HistoryItem `json:"workshop"`
	Deployment []HistoryItem `json:"deployment"`
	Leave      []LeaveItem   `json:"leave"`
}

func newHistoryItems(records []Record, loc *time.Location) []HistoryItem {
	items := make([]HistoryItem, 0, len(records))
	for _, r := range records {
		items = append(items, HistoryItem{
			ID:          r.ID,
			EmployeeID:  orDefault(r.EmployeeID, notAvailable),
			Date:        DisplayDate(r, loc),
			CheckInTime: DisplayCheckIn(r, loc),
			Status:      r.Status,
			StatusLabel: StatusLabel(r.Status),
			Notes:       orDefault(r.Notes, noNotes),
		})
	}
	return items
}

// NewMyAttendanceResponse renders the per-employee tabs from a classification.
func NewMyAttendanceResponse(m Metrics, loc *time.Location) MyAttendanceResponse {
	leave := make([]LeaveItem, 0, len(m.Leave))
	for _, r := range m.Leave {
		leave = append(leave, LeaveItem{
			ID:        r.ID,
			Date:      DisplayDate(r, loc),
			LeaveType: LeaveLabel(r.Status),
			Duration:  defaultDuration,
			Reason:    orDefault(r.Notes, noReason),
		})
	}

	return MyAttendanceResponse{
		History:    newHistoryItems(m.History, loc),
		Bootcamp:   newHistoryItems(m.Bootcamp, loc),
		Workshop:   newHistoryItems(m.Workshop, loc),
		Deployment: newHistoryItems(m.Deployment, loc),
		Leave:      leave,
	}
}

// ========================================
// ADMIN VIEWS
// ========================================

type AdminRow struct {
	ID           string `json:"id"`
	EmployeeName string `json:"employee_name"`
	EmployeeID   string `json:"employee_id"`
	CheckInTime  string `json:"check_in_time"`
	Status       string `json:"status"`
	StatusLabel  string `json:"status_label"`
	MinutesLate  *int   `json:"minutes_late,omitempty"`
}

type ChartData struct {
	Labels      []string `json:"labels"`
	Values      []int    `json:"values"`
	Percentages []int    `json:"percentages"`
}

type DailyMetricsResponse struct {
	Date                 string     `json:"date"`
	PresentCount         int        `json:"present_count"`
	LeaveCount           int        `json:"leave_count"`
	LateCount            int        `json:"late_count"`
	TotalRecords         int        `json:"total_records"`
	TotalEmployees       int        `json:"total_employees"`
	AttendancePercentage float64    `json:"attendance_percentage"`
	LateCutoff           string     `json:"late_cutoff"`
	Present              []AdminRow `json:"present"`
	Leave                []AdminRow `json:"leave"`
	LateArrivals         []AdminRow `json:"late_arrivals"`
	Recent               []AdminRow `json:"recent"`
	Chart                ChartData  `json:"chart"`
}

func newAdminRow(r Record, loc *time.Location) AdminRow {
	return AdminRow{
		ID:           r.ID,
		EmployeeName: orDefault(r.EmployeeName, "Unknown"),
		EmployeeID:   orDefault(r.EmployeeID, notAvailable),
		CheckInTime:  DisplayCheckIn(r, loc),
		Status:       r.Status,
		StatusLabel:  StatusLabel(r.Status),
	}
}

func newAdminRows(records []Record, loc *time.Location) []AdminRow {
	rows := make([]AdminRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, newAdminRow(r, loc))
	}
	return rows
}

// NewChartData builds the present / on leave / late distribution. Shares are
// whole percentages of the three-way sum.
func NewChartData(m Metrics) ChartData {
	values := []int{m.PresentCount, m.LeaveCount, m.LateCount}
	total := 0
	for _, v := range values {
		total += v
	}
	percentages := make([]int, len(values))
	if total > 0 {
		for i, v := range values {
			percentages[i] = int(math.Round(float64(v) / float64(total) * 100))
		}
	}
	return ChartData{
		Labels:      []string{"Present", "On Leave", "Late Arrivals"},
		Values:      values,
		Percentages: percentages,
	}
}

// NewDailyMetricsResponse renders the admin dashboard. records is the raw
// upstream batch; its first status-bearing entries become Recent.
func NewDailyMetricsResponse(date string, m Metrics, records []Record, policy LatePolicy, loc *time.Location) DailyMetricsResponse {
	late := make([]AdminRow, 0, len(m.LateArrivals))
	for _, l := range m.LateArrivals {
		row := newAdminRow(l.Record, loc)
		minutes := l.MinutesLate
		row.MinutesLate = &minutes
		late = append(late, row)
	}

	recent := make([]AdminRow, 0, recentLimit)
	for _, r := range records {
		if len(recent) == recentLimit {
			break
		}
		if r.HasStatus() {
			recent = append(recent, newAdminRow(r, loc))
		}
	}

	return DailyMetricsResponse{
		Date:                 date,
		PresentCount:         m.PresentCount,
		LeaveCount:           m.LeaveCount,
		LateCount:            m.LateCount,
		TotalRecords:         m.TotalRecords,
		TotalEmployees:       m.TotalEmployees,
		AttendancePercentage: m.AttendancePercentage,
		LateCutoff:           policy.String(),
		Present:              newAdminRows(m.Present, loc),
		Leave:                newAdminRows(m.Leave, loc),
		LateArrivals:         late,
		Recent:               recent,
		Chart:                NewChartData(m),
	}
}
