package temporal

import (
	"iter"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/hoyle1974/chrono/interval"
)

// DateInterval is a half-open range of calendar dates; the end date itself
// is not part of it.
type DateInterval struct {
	start Date
	end   Date
}

var dateIntervals = interval.NewKind[Date, DateInterval](func(start, end Date) DateInterval {
	return DateInterval{start: start, end: end}
})

func NewDateInterval(start, end Date) (DateInterval, error) {
	return dateIntervals.Of(start, end)
}

func DateIntervalOf(b interval.Bounds[Date]) (DateInterval, error) {
	return dateIntervals.From(b)
}

// DateIntervalFor returns the interval of the given number of days from start.
func DateIntervalFor(start Date, days int) (DateInterval, error) {
	s, err := NewDateSpan(start, days)
	if err != nil {
		return DateInterval{}, err
	}
	return s.ToInterval(), nil
}

// MonthDates returns the dates of m.
func MonthDates(m Month) DateInterval {
	return DateInterval{start: m.First(), end: m.AddMonths(1).First()}
}

// ParseDateInterval reads "2024-01-01/2024-02-01".
func ParseDateInterval(text string) (DateInterval, error) {
	return interval.ParseWith(text, ParseDate, ParseDate, NewDateInterval)
}

func (i DateInterval) Start() Date { return i.start }
func (i DateInterval) End() Date   { return i.end }

func (i DateInterval) WithStart(start Date) (DateInterval, error) {
	return dateIntervals.WithStart(i, start)
}

func (i DateInterval) WithEnd(end Date) (DateInterval, error) {
	return dateIntervals.WithEnd(i, end)
}

func (i DateInterval) IsEmpty() bool { return interval.IsEmpty[Date](i) }

func (i DateInterval) Contains(d Date) bool { return interval.Contains[Date](i, d) }

func (i DateInterval) Encloses(other interval.Bounds[Date]) bool {
	return interval.Encloses[Date](i, other)
}

func (i DateInterval) Abuts(other interval.Bounds[Date]) bool {
	return interval.Abuts[Date](i, other)
}

func (i DateInterval) Overlaps(other interval.Bounds[Date]) bool {
	return interval.Overlaps[Date](i, other)
}

func (i DateInterval) Overlap(other interval.Bounds[Date]) (DateInterval, bool) {
	return dateIntervals.Overlap(i, other)
}

func (i DateInterval) Gap(other interval.Bounds[Date]) (DateInterval, bool) {
	return dateIntervals.Gap(i, other)
}

func (i DateInterval) Join(other interval.Bounds[Date]) DateInterval {
	return dateIntervals.Join(i, other)
}

func (i DateInterval) Equal(other interval.Bounds[Date]) bool {
	return interval.Equal[Date](i, other)
}

// Days returns the number of dates in the interval.
func (i DateInterval) Days() int { return i.start.DaysUntil(i.end) }

func (i DateInterval) ToSpan() DateSpan {
	return DateSpan{start: i.start, days: i.Days()}
}

// Instants returns the interval from midnight of the start date to midnight
// of the end date in loc.
func (i DateInterval) Instants(loc *time.Location) InstantInterval {
	return InstantInterval{start: i.start.Time(loc), end: i.end.Time(loc)}
}

// Stream walks the dates of the interval. Only years, months and days can
// step a date.
func (i DateInterval) Stream(step Step) (iter.Seq[Date], error) {
	return interval.Stream[Date, Step](i, step, dateStepper{})
}

func (i DateInterval) String() string { return formatPair(i.start, i.end) }

// DateSpan is a date plus a whole number of days. The day count is an int,
// so a span can reach any date a DateInterval can.
type DateSpan struct {
	start Date
	days  int
}

var dateSpans = interval.NewSpanKind[Date, int, DateSpan](dateArith{}, func(start Date, days int) DateSpan {
	return DateSpan{start: start, days: days}
})

// NewDateSpan fails with ErrInvalidRange when days is negative.
func NewDateSpan(start Date, days int) (DateSpan, error) {
	return dateSpans.Of(start, days)
}

func DateSpanOf(e interval.Extent[Date, int]) (DateSpan, error) {
	return dateSpans.From(e)
}

// ParseDateSpan reads "2024-01-01/31d". The length may also be given in
// weeks or as a time.ParseDuration string of whole days.
func ParseDateSpan(text string) (DateSpan, error) {
	return interval.ParseWith(text, ParseDate, parseDays, NewDateSpan)
}

func parseDays(text string) (int, error) {
	step, err := ParseStep(text)
	if err != nil {
		return 0, err
	}
	if err := step.onlyUnits(false, false, true, true); err != nil {
		return 0, errors.Wrapf(err, "can not parse days %q", text)
	}
	if step.Duration%day != 0 {
		return 0, errors.Newf("%q is not a whole number of days", text)
	}
	return step.Days + int(step.Duration/day), nil
}

func (s DateSpan) Start() Date { return s.start }

// Duration returns the length of the span in days.
func (s DateSpan) Duration() int { return s.days }
func (s DateSpan) End() Date     { return dateSpans.End(s) }

// Days returns the number of dates in the span.
func (s DateSpan) Days() int { return s.days }

func (s DateSpan) WithStart(start Date) (DateSpan, error) {
	return dateSpans.WithStart(s, start)
}

func (s DateSpan) WithDuration(days int) (DateSpan, error) {
	return dateSpans.WithDuration(s, days)
}

// Length returns how many whole runs of unit days fit in the span.
func (s DateSpan) Length(unit int) (int64, error) { return dateSpans.Length(s, unit) }

func (s DateSpan) Interpolate(position, total float64, unit int) (Date, error) {
	return dateSpans.Interpolate(s, position, total, unit)
}

func (s DateSpan) Position(d Date, total float64, unit int) (float64, error) {
	return dateSpans.Position(s, d, total, unit)
}

// Quantize yields every q-th date of the span.
func (s DateSpan) Quantize(q int) (iter.Seq[Date], error) {
	return dateSpans.Quantize(s, q)
}

func (s DateSpan) ToInterval() DateInterval {
	return DateInterval{start: s.start, end: s.End()}
}

func (s DateSpan) Equal(other interval.Extent[Date, int]) bool {
	return dateSpans.Equal(s, other)
}

func (s DateSpan) String() string {
	return s.start.String() + string(interval.Separator) + strconv.Itoa(s.days) + "d"
}
