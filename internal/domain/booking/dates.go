package booking

import (
	"regexp"
	"time"

	"github.com/niramoy/clinic-booking/internal/httperr"
)

// Accepted date-time layouts, most specific first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Some booking clients send "T1:00" instead of "T01:00".
var singleDigitHour = regexp.MustCompile(`([T ])(\d):`)

// ParseAppointmentDate normalizes the raw appointment_date field. Strings go
// through the layout list, then one repair pass for single-digit hours.
// A time.Time value is taken as-is when non-zero. Anything else is rejected.
func ParseAppointmentDate(raw any, loc *time.Location) (time.Time, error) {
	switch v := raw.(type) {
	case string:
		if t, ok := parseInLocation(v, loc); ok {
			return t, nil
		}

		repaired := singleDigitHour.ReplaceAllString(v, "${1}0${2}:")
		if repaired != v {
			if t, ok := parseInLocation(repaired, loc); ok {
				return t, nil
			}
		}

		return time.Time{}, httperr.ErrBusinessDetail("invalid_date", v)

	case time.Time:
		if v.IsZero() {
			return time.Time{}, httperr.ErrBusinessDetail("invalid_date", v.String())
		}
		return v.In(loc), nil

	default:
		return time.Time{}, httperr.ErrBusiness("invalid_input_type")
	}
}

func parseInLocation(s string, loc *time.Location) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			// an explicit offset in the input wins during parsing;
			// the weekday policy still runs in clinic time
			return t.In(loc), true
		}
	}
	return time.Time{}, false
}
