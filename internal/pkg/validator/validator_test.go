package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestParseTimestamp(t *testing.T) {
	cases := []struct {
		input  string
		ok     bool
		minute int
	}{
		{"2024-01-15T09:15:00Z", true, 15},
		{"2024-01-15T09:15:30.123Z", true, 15},
		{"2024-01-15T09:42:00+05:30", true, 42},
		{"2024-01-15", true, 0},
		{" 2024-01-15 ", true, 0},
		{"", false, 0},
		{"yesterday", false, 0},
		{"2024-01-15 09:15", false, 0},
	}
	for _, c := range cases {
		got, ok := ParseTimestamp(c.input)
		if ok != c.ok {
			t.Errorf("ParseTimestamp(%q) ok = %v, want %v", c.input, ok, c.ok)
			continue
		}
		if ok && got.Minute() != c.minute {
			t.Errorf("ParseTimestamp(%q).Minute() = %d, want %d", c.input, got.Minute(), c.minute)
		}
	}
}

func TestIsValidCoordinates(t *testing.T) {
	if !IsValidLatitude(17.44) || !IsValidLatitude(-90) || !IsValidLatitude(90) {
		t.Errorf("IsValidLatitude rejected a valid latitude")
	}
	if IsValidLatitude(90.01) || IsValidLatitude(-91) {
		t.Errorf("IsValidLatitude accepted an out of range latitude")
	}
	if !IsValidLongitude(78.37) || !IsValidLongitude(-180) || !IsValidLongitude(180) {
		t.Errorf("IsValidLongitude rejected a valid longitude")
	}
	if IsValidLongitude(180.5) {
		t.Errorf("IsValidLongitude accepted an out of range longitude")
	}
}

func TestIsValidClock(t *testing.T) {
	for _, h := range []int{0, 9, 23} {
		if !IsValidHour(h) {
			t.Errorf("IsValidHour(%d) = false, want true", h)
		}
	}
	for _, h := range []int{-1, 24} {
		if IsValidHour(h) {
			t.Errorf("IsValidHour(%d) = true, want false", h)
		}
	}
	if !IsValidMinute(0) || !IsValidMinute(59) || IsValidMinute(60) || IsValidMinute(-1) {
		t.Errorf("IsValidMinute accepted or rejected the wrong bounds")
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	if !IsInSlice("a", slice) {
		t.Errorf("IsInSlice('a') = false, want true")
	}
	if IsInSlice("d", slice) {
		t.Errorf("IsInSlice('d') = true, want false")
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "status", Message: "invalid"},
		{Field: "latitude", Message: "required"},
	}
	got := errs.Error()
	want := "status: invalid; latitude: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "status", Message: "invalid"},
		{Field: "latitude", Message: "required"},
	}
	got := errs.ToMap()
	want := map[string]string{"status": "invalid", "latitude": "required"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}
