package clock

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

// DateKey formats t as an ISO calendar date.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses YYYY-MM-DD into midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ParseMonth parses YYYY-MM.
func ParseMonth(s string) (year int, month time.Month, err error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return 0, 0, err
	}
	return t.Year(), t.Month(), nil
}

// DaysIn returns the number of days in the month, accounting for leap years.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Day is one calendar day of a month.
type Day struct {
	Date    time.Time
	Key     string
	Weekday time.Weekday
}

// MonthDays enumerates every day of the month in order.
func MonthDays(year int, month time.Month) []Day {
	n := DaysIn(year, month)
	days := make([]Day, 0, n)
	for d := 1; d <= n; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
		days = append(days, Day{Date: date, Key: DateKey(date), Weekday: date.Weekday()})
	}
	return days
}

// WorkWeek is the set of weekdays on which an absence is penalized.
type WorkWeek map[time.Weekday]bool

// DefaultWorkWeek runs Sunday to Thursday; Friday and Saturday are the weekend.
func DefaultWorkWeek() WorkWeek {
	return WorkWeek{
		time.Sunday:    true,
		time.Monday:    true,
		time.Tuesday:   true,
		time.Wednesday: true,
		time.Thursday:  true,
	}
}

func (w WorkWeek) Contains(d time.Weekday) bool {
	return w[d]
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

// ParseWorkWeek reads a comma separated list of three letter day names,
// e.g. "sun,mon,tue,wed,thu". An empty string yields DefaultWorkWeek.
func ParseWorkWeek(s string) (WorkWeek, error) {
	if strings.TrimSpace(s) == "" {
		return DefaultWorkWeek(), nil
	}
	week := WorkWeek{}
	for _, part := range strings.Split(s, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if len(name) > 3 {
			name = name[:3]
		}
		d, ok := weekdayNames[name]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", part)
		}
		week[d] = true
	}
	return week, nil
}
