package dateutil

import "time"

// TimePoint is an immutable, timezone-aware calendar instant with minute-level
// arithmetic. Every derived point is a new value.
type TimePoint struct {
	t time.Time
}

// NewTimePoint wraps t, keeping its location.
func NewTimePoint(t time.Time) TimePoint {
	return TimePoint{t: t}
}

// Date builds a TimePoint at midnight of the given day in loc.
func Date(year int, month time.Month, day int, loc *time.Location) TimePoint {
	if loc == nil {
		loc = time.Local
	}
	return TimePoint{t: time.Date(year, month, day, 0, 0, 0, 0, loc)}
}

// AddMinutes returns the point shifted by n minutes of wall clock, so that
// midnight plus 720 is 12:00 even on days with a DST transition.
func (p TimePoint) AddMinutes(n int) TimePoint {
	y, mo, d := p.t.Date()
	return TimePoint{t: time.Date(y, mo, d, p.t.Hour(), p.t.Minute()+n, p.t.Second(), p.t.Nanosecond(), p.t.Location())}
}

// AddDays returns the point shifted by n calendar days, keeping the wall clock.
func (p TimePoint) AddDays(n int) TimePoint {
	return TimePoint{t: p.t.AddDate(0, 0, n)}
}

// StartOfDay returns midnight of the point's day.
func (p TimePoint) StartOfDay() TimePoint {
	return TimePoint{t: TruncateToDay(p.t)}
}

// Hour returns the hour field (0-23).
func (p TimePoint) Hour() int { return p.t.Hour() }

// Minute returns the minute field (0-59).
func (p TimePoint) Minute() int { return p.t.Minute() }

// Day returns the day of the month.
func (p TimePoint) Day() int { return p.t.Day() }

// Weekday returns the day of the week.
func (p TimePoint) Weekday() time.Weekday { return p.t.Weekday() }

// Time returns the underlying time value.
func (p TimePoint) Time() time.Time { return p.t }

// IsZero reports whether the point was never set.
func (p TimePoint) IsZero() bool { return p.t.IsZero() }

// Equal reports whether both points denote the same instant.
func (p TimePoint) Equal(o TimePoint) bool { return p.t.Equal(o.t) }

// Before reports whether p is before o.
func (p TimePoint) Before(o TimePoint) bool { return p.t.Before(o.t) }

// After reports whether p is after o.
func (p TimePoint) After(o TimePoint) bool { return p.t.After(o.t) }

// Sub returns p - o.
func (p TimePoint) Sub(o TimePoint) time.Duration { return p.t.Sub(o.t) }

// DaysSince returns the number of calendar days from o to p.
func (p TimePoint) DaysSince(o TimePoint) int {
	a := TruncateToDay(p.t)
	b := TruncateToDay(o.t.In(p.t.Location()))
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	// UTC midnights avoid DST-length days.
	ua := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	ub := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(ua.Sub(ub).Hours() / 24)
}

// WallMinutesSince returns the wall-clock minutes from o to p, ignoring DST
// offset changes in between.
func (p TimePoint) WallMinutesSince(o TimePoint) int {
	oc := o.t.In(p.t.Location())
	return p.DaysSince(o)*24*60 + (p.t.Hour()*60 + p.t.Minute()) - (oc.Hour()*60 + oc.Minute())
}

// SameDay reports whether both points fall on the same calendar day.
func (p TimePoint) SameDay(o TimePoint) bool { return SameDay(p.t, o.t.In(p.t.Location())) }

// Format formats the point with a time layout.
func (p TimePoint) Format(layout string) string { return p.t.Format(layout) }

// Clock returns the "HH:MM" wall clock.
func (p TimePoint) Clock() string { return p.t.Format("15:04") }

// String implements fmt.Stringer.
func (p TimePoint) String() string { return p.t.Format("2006-01-02 15:04 MST") }
