package clock

import "time"

// Clock supplies the current wall-clock time to check-in and check-out.
type Clock interface {
	Now() time.Time
}

// System reads the host clock and reports it in Location.
type System struct {
	Location *time.Location
}

// NewSystem returns a system clock for the named IANA zone, falling back to UTC
// when the zone cannot be loaded.
func NewSystem(zone string) System {
	loc, err := time.LoadLocation(zone)
	if err != nil || zone == "" {
		loc = time.UTC
	}
	return System{Location: loc}
}

func (s System) Now() time.Time {
	if s.Location == nil {
		return time.Now()
	}
	return time.Now().In(s.Location)
}

// Fixed always returns the same instant. Set advances it.
type Fixed struct {
	T time.Time
}

func (f *Fixed) Now() time.Time {
	return f.T
}

func (f *Fixed) Set(t time.Time) {
	f.T = t
}
