package attendance

import (
	"regexp"
	"strings"
)

// Bucket is the closed set of categories a status can fall into.
type Bucket string

const (
	BucketPresent    Bucket = "present"
	BucketLeave      Bucket = "leave"
	BucketBootcamp   Bucket = "bootcamp"
	BucketWorkshop   Bucket = "workshop"
	BucketDeployment Bucket = "deployment"

	// BucketUnrecognized statuses count toward totals but no category.
	BucketUnrecognized Bucket = "unrecognized"
)

// Canonical status values written by this client.
const (
	StatusPresent        = "present"
	StatusOnLeave        = "on leave"
	StatusAbsentSick     = "absent-sick"
	StatusAbsentPersonal = "absent-personal"
	StatusBootcamp       = "bootcamp"
	StatusWorkshop       = "workshop"
	StatusDeployment     = "deployment"
)

var (
	hyphenSpacing = regexp.MustCompile(`\s*-\s*`)
	innerSpacing  = regexp.MustCompile(`\s+`)
)

// CanonicalStatus lower-cases s, strips whitespace around hyphens and
// collapses runs of whitespace, so "Absent - Sick" becomes "absent-sick".
func CanonicalStatus(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = hyphenSpacing.ReplaceAllString(s, "-")
	return innerSpacing.ReplaceAllString(s, " ")
}

// BucketOf classifies a status. Precedence: present, then leave (any status
// mentioning leave or absent), then the exact activity statuses, then
// unrecognized.
func BucketOf(status string) Bucket {
	s := CanonicalStatus(status)
	switch {
	case s == StatusPresent:
		return BucketPresent
	case strings.Contains(s, "leave") || strings.Contains(s, "absent"):
		return BucketLeave
	case s == StatusBootcamp:
		return BucketBootcamp
	case s == StatusWorkshop:
		return BucketWorkshop
	case s == StatusDeployment:
		return BucketDeployment
	default:
		return BucketUnrecognized
	}
}

var statusLabels = map[string]string{
	StatusPresent:        "Present (Office)",
	StatusOnLeave:        "On Leave",
	StatusAbsentSick:     "Absent (Sick)",
	StatusAbsentPersonal: "Absent (Personal)",
	StatusBootcamp:       "Bootcamp",
	StatusWorkshop:       "Workshop",
	StatusDeployment:     "Deployment",
}

var leaveLabels = map[string]string{
	StatusOnLeave:        "On Leave",
	StatusAbsentSick:     "Sick Leave",
	StatusAbsentPersonal: "Personal Leave",
}

// StatusLabel is the history display name; unknown statuses pass through.
func StatusLabel(status string) string {
	if status == "" {
		return "Unknown"
	}
	if label, ok := statusLabels[CanonicalStatus(status)]; ok {
		return label
	}
	return status
}

// LeaveLabel is the leave-records display name; unknown statuses pass through.
func LeaveLabel(status string) string {
	if label, ok := leaveLabels[CanonicalStatus(status)]; ok {
		return label
	}
	return status
}
