package temporal

import (
	"iter"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/hoyle1974/chrono/interval"
)

// InstantInterval is a half-open range of instants on the time line.
type InstantInterval struct {
	start time.Time
	end   time.Time
}

var instantIntervals = interval.NewKind[time.Time, InstantInterval](func(start, end time.Time) InstantInterval {
	return InstantInterval{start: start, end: end}
})

func NewInstantInterval(start, end time.Time) (InstantInterval, error) {
	return instantIntervals.Of(start, end)
}

// InstantIntervalOf converts any instant bounds into an InstantInterval.
func InstantIntervalOf(b interval.Bounds[time.Time]) (InstantInterval, error) {
	return instantIntervals.From(b)
}

// InstantIntervalFor returns [start, start+d).
func InstantIntervalFor(start time.Time, d time.Duration) (InstantInterval, error) {
	s, err := NewInstantSpan(start, d)
	if err != nil {
		return InstantInterval{}, err
	}
	return s.ToInterval(), nil
}

// ParseInstantInterval reads "start/end" where both are RFC 3339 timestamps
// or plain dates, which stand for midnight UTC.
func ParseInstantInterval(text string) (InstantInterval, error) {
	return interval.ParseWith(text, ParseInstant, ParseInstant, NewInstantInterval)
}

// ParseInstant reads an RFC 3339 timestamp or a date such as 2024-01-31.
func ParseInstant(text string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, text); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, text)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "can not parse instant %q", text)
	}
	return t, nil
}

func formatInstant(t time.Time) string { return t.Format(time.RFC3339Nano) }

func (i InstantInterval) Start() time.Time { return i.start }
func (i InstantInterval) End() time.Time   { return i.end }

func (i InstantInterval) WithStart(start time.Time) (InstantInterval, error) {
	return instantIntervals.WithStart(i, start)
}

func (i InstantInterval) WithEnd(end time.Time) (InstantInterval, error) {
	return instantIntervals.WithEnd(i, end)
}

func (i InstantInterval) IsEmpty() bool { return interval.IsEmpty[time.Time](i) }

func (i InstantInterval) Contains(t time.Time) bool { return interval.Contains[time.Time](i, t) }

func (i InstantInterval) Encloses(other interval.Bounds[time.Time]) bool {
	return interval.Encloses[time.Time](i, other)
}

func (i InstantInterval) Abuts(other interval.Bounds[time.Time]) bool {
	return interval.Abuts[time.Time](i, other)
}

func (i InstantInterval) Overlaps(other interval.Bounds[time.Time]) bool {
	return interval.Overlaps[time.Time](i, other)
}

func (i InstantInterval) Overlap(other interval.Bounds[time.Time]) (InstantInterval, bool) {
	return instantIntervals.Overlap(i, other)
}

func (i InstantInterval) Gap(other interval.Bounds[time.Time]) (InstantInterval, bool) {
	return instantIntervals.Gap(i, other)
}

func (i InstantInterval) Join(other interval.Bounds[time.Time]) InstantInterval {
	return instantIntervals.Join(i, other)
}

func (i InstantInterval) Equal(other interval.Bounds[time.Time]) bool {
	return interval.Equal[time.Time](i, other)
}

// Duration returns end - start. Like time.Time.Sub it saturates for
// intervals longer than about 292 years; ToSpan reports those instead.
func (i InstantInterval) Duration() time.Duration { return i.end.Sub(i.start) }

// ToSpan fails with ErrInvalidRange when the interval is too long for a
// time.Duration.
func (i InstantInterval) ToSpan() (InstantSpan, error) {
	return instantSpans.For(i)
}

// Stream walks the interval from its start by step. Any mix of calendar
// units and duration is accepted.
func (i InstantInterval) Stream(step Step) (iter.Seq[time.Time], error) {
	return interval.Stream[time.Time, Step](i, step, instantStepper{})
}

func (i InstantInterval) String() string {
	return formatInstant(i.start) + string(interval.Separator) + formatInstant(i.end)
}

// InstantSpan is an instant plus a non-negative duration.
type InstantSpan struct {
	start    time.Time
	duration time.Duration
}

var instantSpans = interval.NewSpanKind[time.Time, time.Duration, InstantSpan](instantArith{}, func(start time.Time, d time.Duration) InstantSpan {
	return InstantSpan{start: start, duration: d}
})

func NewInstantSpan(start time.Time, d time.Duration) (InstantSpan, error) {
	return instantSpans.Of(start, d)
}

func InstantSpanOf(e interval.Extent[time.Time, time.Duration]) (InstantSpan, error) {
	return instantSpans.From(e)
}

// ParseInstantSpan reads "start/duration", the duration in time.ParseDuration form.
func ParseInstantSpan(text string) (InstantSpan, error) {
	return interval.ParseWith(text, ParseInstant, time.ParseDuration, NewInstantSpan)
}

func (s InstantSpan) Start() time.Time        { return s.start }
func (s InstantSpan) Duration() time.Duration { return s.duration }
func (s InstantSpan) End() time.Time          { return instantSpans.End(s) }

func (s InstantSpan) WithStart(start time.Time) (InstantSpan, error) {
	return instantSpans.WithStart(s, start)
}

func (s InstantSpan) WithDuration(d time.Duration) (InstantSpan, error) {
	return instantSpans.WithDuration(s, d)
}

func (s InstantSpan) Length(unit time.Duration) (int64, error) { return instantSpans.Length(s, unit) }

func (s InstantSpan) Interpolate(position, total float64, unit time.Duration) (time.Time, error) {
	return instantSpans.Interpolate(s, position, total, unit)
}

func (s InstantSpan) Position(t time.Time, total float64, unit time.Duration) (float64, error) {
	return instantSpans.Position(s, t, total, unit)
}

func (s InstantSpan) Quantize(q time.Duration) (iter.Seq[time.Time], error) {
	return instantSpans.Quantize(s, q)
}

func (s InstantSpan) ToInterval() InstantInterval {
	return InstantInterval{start: s.start, end: s.End()}
}

func (s InstantSpan) Equal(other interval.Extent[time.Time, time.Duration]) bool {
	return instantSpans.Equal(s, other)
}

func (s InstantSpan) String() string {
	return formatInstant(s.start) + string(interval.Separator) + s.duration.String()
}
