package checkin

import (
	"strings"
	"testing"

	"github.com/cmlabs-hris/attendance-client/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOption_PayloadStatus(t *testing.T) {
	tests := map[Option]string{
		OptionOffice:         "present",
		OptionBootcamp:       "bootcamp",
		OptionWorkshop:       "workshop",
		OptionDeployment:     "deployment",
		OptionAbsentSick:     "absent-sick",
		OptionAbsentPersonal: "absent-personal",
		OptionOnLeave:        "on leave",
	}
	for opt, want := range tests {
		assert.Equal(t, want, opt.PayloadStatus(), string(opt))
	}
}

func TestOption_RequiresLocation(t *testing.T) {
	for _, o := range Options() {
		assert.Equal(t, o == OptionOffice, o.RequiresLocation(), string(o))
	}
}

func TestCheckInRequest_Validate(t *testing.T) {
	lat, lon := 91.0, 78.3

	req := CheckInRequest{Status: "Remote", Latitude: &lat, Longitude: &lon, Notes: strings.Repeat("x", 1001)}
	err := req.Validate()

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "status")
	assert.Contains(t, fields, "latitude")
	assert.Contains(t, fields, "notes")
	assert.NotContains(t, fields, "longitude")

	ok := CheckInRequest{Status: OptionWorkshop}
	assert.NoError(t, ok.Validate())
}

func TestCheckInRequest_Payload(t *testing.T) {
	lat, lon := 17.4, 78.3

	office := CheckInRequest{Status: OptionOffice, Notes: "desk 4", Latitude: &lat, Longitude: &lon}
	p := office.Payload()
	assert.Equal(t, "present", p.Status)
	assert.Equal(t, "desk 4", p.Notes)
	require.NotNil(t, p.Latitude)
	assert.InDelta(t, lat, *p.Latitude, 1e-9)

	sick := CheckInRequest{Status: OptionAbsentSick, Latitude: &lat, Longitude: &lon}
	p = sick.Payload()
	assert.Equal(t, "absent-sick", p.Status)
	assert.Nil(t, p.Latitude)
	assert.Nil(t, p.Longitude)
}

func TestWindowClosedError(t *testing.T) {
	err := &WindowClosedError{Availability: Availability{Message: "Check-in will open at 8:30"}}
	assert.EqualError(t, err, "Check-in will open at 8:30")
	assert.ErrorIs(t, err, ErrCheckInClosed)
}
