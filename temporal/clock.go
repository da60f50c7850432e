package temporal

import (
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// Clock is a wall clock time of day from 00:00 up to and including 24:00.
// 24:00 only makes sense as the end of a range.
type Clock struct {
	d time.Duration
}

var (
	Midnight = Clock{}
	EndOfDay = Clock{d: day}
)

// NewClock returns hour:minute:second.nanosecond. Every field must be in its
// usual range; 24:00 is accepted with all other fields zero.
func NewClock(hour, minute, second, nanosecond int) (Clock, error) {
	if hour == 24 && minute == 0 && second == 0 && nanosecond == 0 {
		return EndOfDay, nil
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 || nanosecond < 0 || nanosecond >= int(time.Second) {
		return Clock{}, errors.Newf("clock %02d:%02d:%02d.%09d out of range", hour, minute, second, nanosecond)
	}
	return Clock{d: time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute +
		time.Duration(second)*time.Second + time.Duration(nanosecond)}, nil
}

// ClockAt returns the clock time that lies d after midnight.
func ClockAt(d time.Duration) (Clock, error) {
	if d < 0 || d > day {
		return Clock{}, errors.Newf("clock offset %v out of range", d)
	}
	return Clock{d: d}, nil
}

// ClockOf returns the wall clock time of t in t's own location.
func ClockOf(t time.Time) Clock {
	h, m, s := t.Clock()
	c, _ := NewClock(h, m, s, t.Nanosecond())
	return c
}

func ParseClock(text string) (Clock, error) {
	switch text {
	case "24:00", "24:00:00":
		return EndOfDay, nil
	}
	layout := "15:04"
	if strings.Count(text, ":") == 2 {
		layout = "15:04:05"
	}
	t, err := time.Parse(layout, text)
	if err != nil {
		return Clock{}, errors.Wrapf(err, "can not parse clock %q", text)
	}
	return ClockOf(t), nil
}

// SinceMidnight returns the offset of c from 00:00.
func (c Clock) SinceMidnight() time.Duration { return c.d }

func (c Clock) Compare(other Clock) int {
	switch {
	case c.d < other.d:
		return -1
	case c.d > other.d:
		return 1
	}
	return 0
}

func (c Clock) String() string {
	h := c.d / time.Hour
	m := c.d % time.Hour / time.Minute
	s := c.d % time.Minute / time.Second
	ns := c.d % time.Second
	switch {
	case ns != 0:
		return strings.TrimRight(fmt.Sprintf("%02d:%02d:%02d.%09d", h, m, s, ns), "0")
	case s != 0:
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}
