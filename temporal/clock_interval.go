package temporal

import (
	"iter"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/hoyle1974/chrono/interval"
)

// ClockInterval is a half-open range of wall clock times within one day.
type ClockInterval struct {
	start Clock
	end   Clock
}

var clockIntervals = interval.NewKind[Clock, ClockInterval](func(start, end Clock) ClockInterval {
	return ClockInterval{start: start, end: end}
})

func NewClockInterval(start, end Clock) (ClockInterval, error) {
	return clockIntervals.Of(start, end)
}

func ClockIntervalOf(b interval.Bounds[Clock]) (ClockInterval, error) {
	return clockIntervals.From(b)
}

// ClockIntervalFor returns [start, start+d). The end may not pass 24:00.
func ClockIntervalFor(start Clock, d time.Duration) (ClockInterval, error) {
	s, err := NewClockSpan(start, d)
	if err != nil {
		return ClockInterval{}, err
	}
	return s.ToInterval(), nil
}

// ParseClockInterval reads "09:00/17:30".
func ParseClockInterval(text string) (ClockInterval, error) {
	return interval.ParseWith(text, ParseClock, ParseClock, NewClockInterval)
}

func (i ClockInterval) Start() Clock { return i.start }
func (i ClockInterval) End() Clock   { return i.end }

func (i ClockInterval) WithStart(start Clock) (ClockInterval, error) {
	return clockIntervals.WithStart(i, start)
}

func (i ClockInterval) WithEnd(end Clock) (ClockInterval, error) {
	return clockIntervals.WithEnd(i, end)
}

func (i ClockInterval) IsEmpty() bool { return interval.IsEmpty[Clock](i) }

func (i ClockInterval) Contains(c Clock) bool { return interval.Contains[Clock](i, c) }

func (i ClockInterval) Encloses(other interval.Bounds[Clock]) bool {
	return interval.Encloses[Clock](i, other)
}

func (i ClockInterval) Abuts(other interval.Bounds[Clock]) bool {
	return interval.Abuts[Clock](i, other)
}

func (i ClockInterval) Overlaps(other interval.Bounds[Clock]) bool {
	return interval.Overlaps[Clock](i, other)
}

func (i ClockInterval) Overlap(other interval.Bounds[Clock]) (ClockInterval, bool) {
	return clockIntervals.Overlap(i, other)
}

func (i ClockInterval) Gap(other interval.Bounds[Clock]) (ClockInterval, bool) {
	return clockIntervals.Gap(i, other)
}

func (i ClockInterval) Join(other interval.Bounds[Clock]) ClockInterval {
	return clockIntervals.Join(i, other)
}

func (i ClockInterval) Equal(other interval.Bounds[Clock]) bool {
	return interval.Equal[Clock](i, other)
}

func (i ClockInterval) Duration() time.Duration { return i.end.d - i.start.d }

func (i ClockInterval) ToSpan() ClockSpan {
	return ClockSpan{start: i.start, duration: i.Duration()}
}

// On returns the instants the interval covers on date d in loc. Across a DST
// transition the result is longer or shorter than Duration.
func (i ClockInterval) On(d Date, loc *time.Location) InstantInterval {
	at := func(c Clock) time.Time {
		if c == EndOfDay {
			return d.AddDate(0, 0, 1).Time(loc)
		}
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, int(c.d), loc)
	}
	start, end := at(i.start), at(i.end)
	if end.Before(start) {
		end = start
	}
	return InstantInterval{start: start, end: end}
}

// Stream walks the interval by step. Calendar units can not step a clock.
func (i ClockInterval) Stream(step Step) (iter.Seq[Clock], error) {
	return interval.Stream[Clock, Step](i, step, clockStepper{})
}

func (i ClockInterval) String() string { return formatPair(i.start, i.end) }

// ClockSpan is a wall clock time plus a duration that ends no later than 24:00.
type ClockSpan struct {
	start    Clock
	duration time.Duration
}

var clockSpans = interval.NewSpanKind[Clock, time.Duration, ClockSpan](clockArith{}, func(start Clock, d time.Duration) ClockSpan {
	return ClockSpan{start: start, duration: d}
})

// WholeDay returns 00:00 plus 24h.
func WholeDay() ClockSpan { return ClockSpan{start: Midnight, duration: day} }

// NewClockSpan fails with ErrInvalidRange when d is negative or when the span
// would run past 24:00.
func NewClockSpan(start Clock, d time.Duration) (ClockSpan, error) {
	s, err := clockSpans.Of(start, d)
	if err != nil {
		return ClockSpan{}, err
	}
	if start.d+d > day {
		return ClockSpan{}, errors.Wrapf(interval.ErrInvalidRange, "%v plus %v runs past 24:00", start, d)
	}
	return s, nil
}

func ClockSpanOf(e interval.Extent[Clock, time.Duration]) (ClockSpan, error) {
	if s, ok := e.(ClockSpan); ok {
		return s, nil
	}
	if e == nil {
		return ClockSpan{}, errors.Wrap(interval.ErrNullArgument, "span")
	}
	return NewClockSpan(e.Start(), e.Duration())
}

// ParseClockSpan reads "09:00/1h30m".
func ParseClockSpan(text string) (ClockSpan, error) {
	return interval.ParseWith(text, ParseClock, time.ParseDuration, NewClockSpan)
}

func (s ClockSpan) Start() Clock            { return s.start }
func (s ClockSpan) Duration() time.Duration { return s.duration }
func (s ClockSpan) End() Clock              { return clockSpans.End(s) }

func (s ClockSpan) WithStart(start Clock) (ClockSpan, error) {
	return NewClockSpan(start, s.duration)
}

func (s ClockSpan) WithDuration(d time.Duration) (ClockSpan, error) {
	return NewClockSpan(s.start, d)
}

func (s ClockSpan) Length(unit time.Duration) (int64, error) { return clockSpans.Length(s, unit) }

// Interpolate fails with ErrInvalidRange when position/total lands outside
// 00:00 to 24:00.
func (s ClockSpan) Interpolate(position, total float64, unit time.Duration) (Clock, error) {
	c, err := clockSpans.Interpolate(s, position, total, unit)
	if err != nil {
		return Clock{}, err
	}
	if c.d < 0 || c.d > day {
		return Clock{}, errors.Wrapf(interval.ErrInvalidRange, "%v/%v of %v falls outside the day", position, total, s)
	}
	return c, nil
}

func (s ClockSpan) Position(c Clock, total float64, unit time.Duration) (float64, error) {
	return clockSpans.Position(s, c, total, unit)
}

func (s ClockSpan) Quantize(q time.Duration) (iter.Seq[Clock], error) {
	return clockSpans.Quantize(s, q)
}

func (s ClockSpan) ToInterval() ClockInterval {
	return ClockInterval{start: s.start, end: s.End()}
}

func (s ClockSpan) Equal(other interval.Extent[Clock, time.Duration]) bool {
	return clockSpans.Equal(s, other)
}

func (s ClockSpan) String() string {
	return s.start.String() + string(interval.Separator) + s.duration.String()
}
