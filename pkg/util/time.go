package util

import (
	"time"
)

const (
	DateTimeFormat = "2006-01-02 15:04:05"
	DateFormat     = "2006-01-02"
)

// LoadLocation resolves an IANA zone name, falling back to UTC for empty or unknown names.
func LoadLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

func StrToDate(str string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateFormat, str, loc)
}

func DateToStr(dt time.Time) string {
	return dt.Format(DateFormat)
}

func DateTimeToStr(dt time.Time) string {
	return dt.Format(DateTimeFormat)
}

// StartOfDay returns midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// StartOfMonth returns midnight of the first day of t's month in loc.
func StartOfMonth(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
}

// DaysInclusive counts calendar days from start to end, both included.
// Returns 0 when end is before start.
func DaysInclusive(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

// Quarter returns the calendar quarter (1-4) of t.
func Quarter(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}
