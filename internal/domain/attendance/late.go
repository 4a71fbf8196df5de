package attendance

import (
	"fmt"
	"time"
)

// LatePolicy is the organisational cutoff after which a present check-in
// counts as late. It does not follow the check-in window.
type LatePolicy struct {
	Hour   int
	Minute int
}

// DefaultLatePolicy: late after 9:10.
var DefaultLatePolicy = LatePolicy{Hour: 9, Minute: 10}

func (p LatePolicy) cutoffMinutes() int {
	return p.Hour*60 + p.Minute
}

// MinutesLate is the signed distance in whole minutes from the cutoff to the
// clock time of t. Only positive values mean late.
func (p LatePolicy) MinutesLate(t time.Time) int {
	return t.Hour()*60 + t.Minute() - p.cutoffMinutes()
}

// IsLate is MinutesLate(t) > 0, so both always agree.
func (p LatePolicy) IsLate(t time.Time) bool {
	return p.MinutesLate(t) > 0
}

func (p LatePolicy) String() string {
	return fmt.Sprintf("%d:%02d", p.Hour, p.Minute)
}
