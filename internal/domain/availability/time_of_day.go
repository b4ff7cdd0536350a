package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"consult-booking/internal/pkg/errs"
)

const minutesPerDay = 24 * 60

// TimeOfDay is a wall clock time as minutes since midnight. 24:00 is allowed so
// a closing time can sit at the end of the day.
type TimeOfDay int

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || minute < 0 || minute > 59 {
		return 0, errs.Wrapf(ErrInvalidTime, "%02d:%02d", hour, minute)
	}
	t := TimeOfDay(hour*60 + minute)
	if t > minutesPerDay {
		return 0, errs.Wrapf(ErrInvalidTime, "%02d:%02d", hour, minute)
	}
	return t, nil
}

// MustTimeOfDay is for constants and tests.
func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTimeOfDay accepts "HH:MM".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(hh) == 0 || len(hh) > 2 || len(mm) != 2 {
		return 0, errs.Wrapf(ErrInvalidTime, "%q", s)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return 0, errs.Wrapf(ErrInvalidTime, "%q", s)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return 0, errs.Wrapf(ErrInvalidTime, "%q", s)
	}
	return NewTimeOfDay(hour, minute)
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) Add(minutes int) TimeOfDay { return t + TimeOfDay(minutes) }

func (t TimeOfDay) IsAligned(stepMinutes int) bool {
	return stepMinutes > 0 && int(t)%stepMinutes == 0
}

// On places t on the calendar day of date, interpreted in loc.
func (t TimeOfDay) On(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, loc)
}

func TimeOfDayOf(ts time.Time) TimeOfDay {
	return TimeOfDay(ts.Hour()*60 + ts.Minute())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(b []byte) error {
	parsed, err := ParseTimeOfDay(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
