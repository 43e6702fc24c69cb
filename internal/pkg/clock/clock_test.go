package clock

import (
	"testing"
	"time"
)

func TestParseWallTime(t *testing.T) {
	cases := []struct {
		input string
		want  WallTime
	}{
		{"09:00", WallTime{9, 0}},
		{"17:30", WallTime{17, 30}},
		{"00:05", WallTime{0, 5}},
		{"09:05 AM", WallTime{9, 5}},
		{"12:00 AM", WallTime{0, 0}},
		{"12:15 PM", WallTime{12, 15}},
		{"05:30 pm", WallTime{17, 30}},
	}
	for _, c := range cases {
		got, err := ParseWallTime(c.input)
		if err != nil {
			t.Errorf("ParseWallTime(%q) error = %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseWallTime(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestParseWallTime_Invalid(t *testing.T) {
	invalid := []string{"", "9", "24:00", "09:60", "09:5", "13:00 PM", "00:10 AM", "09:00 XM", "ab:cd"}
	for _, s := range invalid {
		if _, err := ParseWallTime(s); err == nil {
			t.Errorf("ParseWallTime(%q) expected error", s)
		}
	}
}

func TestWallTime_Sub(t *testing.T) {
	in := MustParseWallTime("09:00")
	out := MustParseWallTime("17:30")
	if got := out.Sub(in).Hours(); got != 8.5 {
		t.Errorf("Sub = %v, want 8.5", got)
	}
	if got := in.Sub(out).Hours(); got != -8.5 {
		t.Errorf("reverse Sub = %v, want -8.5", got)
	}
}

func TestWallTime_On(t *testing.T) {
	day := time.Date(2024, 3, 10, 14, 45, 12, 0, time.UTC)
	got := MustParseWallTime("08:00").On(day)
	want := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("On = %v, want %v", got, want)
	}
}

func TestWallTime_Text(t *testing.T) {
	w := WallTime{7, 3}
	b, _ := w.MarshalText()
	if string(b) != "07:03" {
		t.Errorf("MarshalText = %q", b)
	}
	var back WallTime
	if err := back.UnmarshalText(b); err != nil || back != w {
		t.Errorf("UnmarshalText = %v, %v", back, err)
	}
}

func TestDaysIn(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}
	for _, c := range cases {
		if got := DaysIn(c.year, c.month); got != c.want {
			t.Errorf("DaysIn(%d, %v) = %d, want %d", c.year, c.month, got, c.want)
		}
	}
}

func TestMonthDays(t *testing.T) {
	days := MonthDays(2024, time.September)
	if len(days) != 30 {
		t.Fatalf("len = %d, want 30", len(days))
	}
	// 2024-09-01 was a Sunday.
	if days[0].Key != "2024-09-01" || days[0].Weekday != time.Sunday {
		t.Errorf("first day = %+v", days[0])
	}
	if days[29].Key != "2024-09-30" || days[29].Weekday != time.Monday {
		t.Errorf("last day = %+v", days[29])
	}
}

func TestParseWorkWeek(t *testing.T) {
	week, err := ParseWorkWeek("")
	if err != nil || len(week) != 5 || week.Contains(time.Friday) || week.Contains(time.Saturday) {
		t.Errorf("default week = %v, %v", week, err)
	}

	week, err = ParseWorkWeek("Monday, tue,wed,thu,fri")
	if err != nil {
		t.Fatalf("ParseWorkWeek error = %v", err)
	}
	if !week.Contains(time.Friday) || week.Contains(time.Sunday) {
		t.Errorf("week = %v", week)
	}

	if _, err := ParseWorkWeek("sun,funday"); err == nil {
		t.Errorf("expected error for unknown weekday")
	}
}

func TestParseMonth(t *testing.T) {
	y, m, err := ParseMonth("2024-02")
	if err != nil || y != 2024 || m != time.February {
		t.Errorf("ParseMonth = %d %v %v", y, m, err)
	}
	if _, _, err := ParseMonth("2024-13"); err == nil {
		t.Errorf("expected error")
	}
}
