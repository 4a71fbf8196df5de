package checkin

import "strings"

// Option is a status an employee can pick when checking in.
type Option string

const (
	OptionOffice         Option = "Office"
	OptionBootcamp       Option = "Bootcamp"
	OptionWorkshop       Option = "Workshop"
	OptionDeployment     Option = "Deployment"
	OptionAbsentSick     Option = "Absent - Sick"
	OptionAbsentPersonal Option = "Absent - Personal"
	OptionOnLeave        Option = "On Leave"
)

// Options lists the choices in display order.
func Options() []Option {
	return []Option{
		OptionOffice,
		OptionBootcamp,
		OptionWorkshop,
		OptionDeployment,
		OptionAbsentSick,
		OptionAbsentPersonal,
		OptionOnLeave,
	}
}

func (o Option) Valid() bool {
	for _, opt := range Options() {
		if opt == o {
			return true
		}
	}
	return false
}

// RequiresLocation is true only for office check-ins, which are geofenced.
func (o Option) RequiresLocation() bool {
	return o == OptionOffice
}

// PayloadStatus is the status string the upstream stores: "present" for the
// office, otherwise the lower-cased option with " - " collapsed to "-".
func (o Option) PayloadStatus() string {
	if o == OptionOffice {
		return "present"
	}
	return strings.ReplaceAll(strings.ToLower(string(o)), " - ", "-")
}
