package report

import (
	"fmt"

	"github.com/cmlabs-hris/attendance-client/internal/domain/attendance"
	"github.com/xuri/excelize/v2"
)

const (
	SheetSummary = "Summary"
	SheetPresent = "Present"
	SheetLeave   = "On Leave"
	SheetLate    = "Late Arrivals"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var rowHeader = []interface{}{"Employee ID", "Employee Name", "Check-in Time", "Status"}

// DailyMetricsWorkbook renders the admin dashboard for one day as an xlsx
// workbook with a summary sheet and one sheet per category.
func DailyMetricsWorkbook(m attendance.DailyMetricsResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetSummary); err != nil {
		return nil, fmt.Errorf("failed to name summary sheet: %w", err)
	}

	summary := [][]interface{}{
		{"Date", m.Date},
		{"Total Employees", m.TotalEmployees},
		{"Total Records", m.TotalRecords},
		{"Present", m.PresentCount},
		{"On Leave", m.LeaveCount},
		{"Late Arrivals", m.LateCount},
		{"Attendance %", m.AttendancePercentage},
		{"Late After", m.LateCutoff},
	}
	if err := writeRows(f, SheetSummary, summary); err != nil {
		return nil, err
	}

	if err := writeSheet(f, SheetPresent, rowHeader, toRows(m.Present, false)); err != nil {
		return nil, err
	}
	if err := writeSheet(f, SheetLeave, rowHeader, toRows(m.Leave, false)); err != nil {
		return nil, err
	}
	lateHeader := append(append([]interface{}{}, rowHeader...), "Minutes Late")
	if err := writeSheet(f, SheetLate, lateHeader, toRows(m.LateArrivals, true)); err != nil {
		return nil, err
	}

	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func toRows(rows []attendance.AdminRow, withLate bool) [][]interface{} {
	out := make([][]interface{}, 0, len(rows))
	for _, r := range rows {
		row := []interface{}{r.EmployeeID, r.EmployeeName, r.CheckInTime, r.StatusLabel}
		if withLate {
			minutes := 0
			if r.MinutesLate != nil {
				minutes = *r.MinutesLate
			}
			row = append(row, minutes)
		}
		out = append(out, row)
	}
	return out
}

func writeSheet(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", sheet, err)
	}
	return writeRows(f, sheet, append([][]interface{}{header}, rows...))
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
