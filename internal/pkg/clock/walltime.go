package clock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidWallTime = errors.New("invalid time of day, expected HH:MM")

// WallTime is a time of day with minute granularity and no date.
type WallTime struct {
	Hour   int
	Minute int
}

// WallTimeOf truncates t to its hour and minute.
func WallTimeOf(t time.Time) WallTime {
	return WallTime{Hour: t.Hour(), Minute: t.Minute()}
}

// ParseWallTime accepts "HH:MM" (24h) and the "hh:mm AM" form older
// attendance exports were written with.
func ParseWallTime(s string) (WallTime, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return WallTime{}, ErrInvalidWallTime
	}

	meridiem := ""
	if fields := strings.Fields(s); len(fields) == 2 {
		s, meridiem = fields[0], strings.ToUpper(fields[1])
		if meridiem != "AM" && meridiem != "PM" {
			return WallTime{}, fmt.Errorf("%w: %q", ErrInvalidWallTime, s)
		}
	}

	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return WallTime{}, fmt.Errorf("%w: %q", ErrInvalidWallTime, s)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return WallTime{}, fmt.Errorf("%w: %q", ErrInvalidWallTime, s)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || len(mm) != 2 || minute < 0 || minute > 59 {
		return WallTime{}, fmt.Errorf("%w: %q", ErrInvalidWallTime, s)
	}

	switch meridiem {
	case "":
		if hour < 0 || hour > 23 {
			return WallTime{}, fmt.Errorf("%w: %q", ErrInvalidWallTime, s)
		}
	default:
		if hour < 1 || hour > 12 {
			return WallTime{}, fmt.Errorf("%w: %q", ErrInvalidWallTime, s)
		}
		hour %= 12
		if meridiem == "PM" {
			hour += 12
		}
	}

	return WallTime{Hour: hour, Minute: minute}, nil
}

// MustParseWallTime is ParseWallTime for constants and tests.
func MustParseWallTime(s string) WallTime {
	w, err := ParseWallTime(s)
	if err != nil {
		panic(err)
	}
	return w
}

func (w WallTime) String() string {
	return fmt.Sprintf("%02d:%02d", w.Hour, w.Minute)
}

// On anchors w to the calendar day of day, in day's location.
func (w WallTime) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), w.Hour, w.Minute, 0, 0, day.Location())
}

// Sub returns w-u as if both fell on the same day. The result is negative
// when w is earlier in the day than u.
func (w WallTime) Sub(u WallTime) time.Duration {
	return time.Duration(w.minutes()-u.minutes()) * time.Minute
}

func (w WallTime) minutes() int {
	return w.Hour*60 + w.Minute
}

func (w WallTime) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

func (w *WallTime) UnmarshalText(b []byte) error {
	parsed, err := ParseWallTime(string(b))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}
