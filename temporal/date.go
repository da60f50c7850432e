package temporal

import (
	"time"

	"github.com/cockroachdb/errors"
)

const day = 24 * time.Hour

// Date is a calendar date without a time of day or zone. It is held as
// midnight UTC so that day arithmetic never meets a DST transition.
type Date struct {
	t time.Time
}

// NewDate returns the date year-month-day, normalized the way time.Date
// normalizes out of range values.
func NewDate(year int, month time.Month, dayOfMonth int) Date {
	return Date{t: time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

func ParseDate(text string) (Date, error) {
	t, err := time.Parse(time.DateOnly, text)
	if err != nil {
		return Date{}, errors.Wrapf(err, "can not parse date %q", text)
	}
	return Date{t: t}, nil
}

func (d Date) Year() int             { return d.t.Year() }
func (d Date) Month() time.Month     { return d.t.Month() }
func (d Date) Day() int              { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

// Time returns midnight of d in loc.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
}

func (d Date) Compare(other Date) int { return d.t.Compare(other.t) }

func (d Date) AddDate(years, months, days int) Date {
	return Date{t: d.t.AddDate(years, months, days)}
}

// DaysUntil returns the number of days from d to other, negative when other
// comes first. It is counted from the calendar fields, so it holds for dates
// any distance apart.
func (d Date) DaysUntil(other Date) int {
	return int(other.epochDay() - d.epochDay())
}

// epochDay counts the days from 1970-01-01 in the proleptic Gregorian
// calendar. Years are shifted to start in March so that the leap day falls
// last.
func (d Date) epochDay() int64 {
	y, m := int64(d.Year()), int64(d.Month())
	if m <= 2 {
		y--
	}
	era := y / 400
	if y < 0 && y%400 != 0 {
		era--
	}
	yoe := y - era*400
	doy := (153*((m+9)%12)+2)/5 + int64(d.Day()) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

func (d Date) String() string { return d.t.Format(time.DateOnly) }
