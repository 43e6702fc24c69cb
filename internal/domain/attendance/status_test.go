package attendance

import (
	"testing"

	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
)

func wall(s string) *clock.WallTime {
	w := clock.MustParseWallTime(s)
	return &w
}

func TestClassify(t *testing.T) {
	assert.Equal(t, StatusAbsent, Classify(nil))
	assert.Equal(t, StatusAbsent, Classify(&Entry{}))
	assert.Equal(t, StatusPresent, Classify(&Entry{CheckIn: wall("08:00")}))
	assert.Equal(t, StatusLate, Classify(&Entry{CheckIn: wall("09:15"), IsLate: true}))
}

func TestWorkHours(t *testing.T) {
	cases := []struct {
		name  string
		entry *Entry
		want  float64
	}{
		{"no entry", nil, 0},
		{"check-in only", &Entry{CheckIn: wall("09:00")}, 0},
		{"full day", &Entry{CheckIn: wall("09:00"), CheckOut: wall("17:30")}, 8.5},
		{"quarter hours", &Entry{CheckIn: wall("08:45"), CheckOut: wall("12:00")}, 3.25},
		{"overnight goes negative", &Entry{CheckIn: wall("22:00"), CheckOut: wall("06:00")}, -16},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, WorkHours(c.entry), 1e-9)
		})
	}
}
