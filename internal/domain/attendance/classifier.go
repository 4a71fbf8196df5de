package attendance

import (
	"math"
	"slices"
	"time"
)

// LateArrival is a present record past the late cutoff.
type LateArrival struct {
	Record      Record `json:"record"`
	MinutesLate int    `json:"minutes_late"`
}

// Metrics is a read-only snapshot of one classification run. Every bucket is
// ordered most recent date first; undated records trail in input order.
type Metrics struct {
	PresentCount         int     `json:"present_count"`
	LeaveCount           int     `json:"leave_count"`
	LateCount            int     `json:"late_count"`
	UnrecognizedCount    int     `json:"unrecognized_count"`
	TotalRecords         int     `json:"total_records"`
	TotalEmployees       int     `json:"total_employees"`
	AttendancePercentage float64 `json:"attendance_percentage"`

	History      []Record      `json:"history"`
	Present      []Record      `json:"present"`
	Leave        []Record      `json:"leave"`
	LateArrivals []LateArrival `json:"late_arrivals"`
	Bootcamp     []Record      `json:"bootcamp"`
	Workshop     []Record      `json:"workshop"`
	Deployment   []Record      `json:"deployment"`
}

// Classifier buckets attendance records. It keeps no state between calls.
type Classifier struct {
	loc    *time.Location
	policy LatePolicy
}

// NewClassifier reads check-in clock times in loc (time.Local when nil).
func NewClassifier(loc *time.Location, policy LatePolicy) *Classifier {
	if loc == nil {
		loc = time.Local
	}
	return &Classifier{loc: loc, policy: policy}
}

func (c *Classifier) Policy() LatePolicy {
	return c.policy
}

func (c *Classifier) Location() *time.Location {
	return c.loc
}

// MinutesLate reports how late a record's check-in was, false when the record
// has no readable check-in time.
func (c *Classifier) MinutesLate(r Record) (int, bool) {
	t, ok := r.ParsedCheckIn()
	if !ok {
		return 0, false
	}
	return c.policy.MinutesLate(t.In(c.loc)), true
}

// Classify never fails: records without a status are skipped, unknown
// statuses are counted but left out of every category.
func (c *Classifier) Classify(records []Record) Metrics {
	m := Metrics{
		History:      []Record{},
		Present:      []Record{},
		Leave:        []Record{},
		LateArrivals: []LateArrival{},
		Bootcamp:     []Record{},
		Workshop:     []Record{},
		Deployment:   []Record{},
	}

	employees := make(map[string]struct{})
	for _, r := range records {
		if r.EmployeeID != "" {
			employees[r.EmployeeID] = struct{}{}
		}
		if !r.HasStatus() {
			continue
		}

		m.TotalRecords++
		m.History = append(m.History, r)

		switch BucketOf(r.Status) {
		case BucketPresent:
			m.Present = append(m.Present, r)
			if minutes, ok := c.MinutesLate(r); ok && minutes > 0 {
				m.LateArrivals = append(m.LateArrivals, LateArrival{Record: r, MinutesLate: minutes})
			}
		case BucketLeave:
			m.Leave = append(m.Leave, r)
		case BucketBootcamp:
			m.Bootcamp = append(m.Bootcamp, r)
		case BucketWorkshop:
			m.Workshop = append(m.Workshop, r)
		case BucketDeployment:
			m.Deployment = append(m.Deployment, r)
		default:
			m.UnrecognizedCount++
		}
	}

	m.PresentCount = len(m.Present)
	m.LeaveCount = len(m.Leave)
	m.LateCount = len(m.LateArrivals)
	m.TotalEmployees = len(employees)
	if m.TotalRecords > 0 {
		m.AttendancePercentage = round1(float64(m.PresentCount) / float64(m.TotalRecords) * 100)
	}

	for _, bucket := range [][]Record{m.History, m.Present, m.Leave, m.Bootcamp, m.Workshop, m.Deployment} {
		sortByDateDesc(bucket, func(r Record) Record { return r })
	}
	sortByDateDesc(m.LateArrivals, func(l LateArrival) Record { return l.Record })

	return m
}

// sortByDateDesc is stable; records whose date cannot be read go last.
func sortByDateDesc[T any](items []T, record func(T) Record) {
	slices.SortStableFunc(items, func(a, b T) int {
		da, okA := record(a).ParsedDate()
		db, okB := record(b).ParsedDate()
		switch {
		case okA && !okB:
			return -1
		case !okA && okB:
			return 1
		case !okA && !okB:
			return 0
		}
		return db.Compare(da)
	})
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
