package temporal

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

const maxOffset = 18 * time.Hour

// ZoneOffset is a fixed offset from UTC in whole seconds.
//
// Offsets are ordered the way the local times of a single instant are, so
// +10:00 comes before +09:00 and UTC comes before -05:00.
type ZoneOffset struct {
	seconds int
}

var UTC = ZoneOffset{}

// NewZoneOffset returns the offset d east of UTC, truncated to whole
// seconds. It must lie within ±18:00.
func NewZoneOffset(d time.Duration) (ZoneOffset, error) {
	if d < -maxOffset || d > maxOffset {
		return ZoneOffset{}, errors.Newf("zone offset %v out of range", d)
	}
	return ZoneOffset{seconds: int(d / time.Second)}, nil
}

// ZoneOffsetOf returns the offset in effect at t.
func ZoneOffsetOf(t time.Time) ZoneOffset {
	_, secs := t.Zone()
	return ZoneOffset{seconds: secs}
}

// ParseZoneOffset reads "Z", "+hh", "+hh:mm" or "+hh:mm:ss" (or the same with "-").
func ParseZoneOffset(text string) (ZoneOffset, error) {
	if text == "Z" {
		return UTC, nil
	}
	if len(text) < 3 || (text[0] != '+' && text[0] != '-') {
		return ZoneOffset{}, errors.Newf("can not parse zone offset %q", text)
	}
	fields := strings.Split(text[1:], ":")
	if len(fields) > 3 {
		return ZoneOffset{}, errors.Newf("can not parse zone offset %q", text)
	}
	units := []time.Duration{time.Hour, time.Minute, time.Second}
	var d time.Duration
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || len(f) != 2 || v < 0 || (i > 0 && v > 59) {
			return ZoneOffset{}, errors.Newf("can not parse zone offset %q", text)
		}
		d += time.Duration(v) * units[i]
	}
	if text[0] == '-' {
		d = -d
	}
	return NewZoneOffset(d)
}

func (z ZoneOffset) Duration() time.Duration { return time.Duration(z.seconds) * time.Second }

// Location returns a fixed zone for z.
func (z ZoneOffset) Location() *time.Location {
	return time.FixedZone(z.String(), z.seconds)
}

func (z ZoneOffset) Compare(other ZoneOffset) int {
	switch {
	case z.seconds > other.seconds:
		return -1
	case z.seconds < other.seconds:
		return 1
	}
	return 0
}

func (z ZoneOffset) String() string {
	if z.seconds == 0 {
		return "Z"
	}
	sign, secs := '+', z.seconds
	if secs < 0 {
		sign, secs = '-', -secs
	}
	h, m, s := secs/3600, secs/60%60, secs%60
	if s != 0 {
		return fmt.Sprintf("%c%02d:%02d:%02d", sign, h, m, s)
	}
	return fmt.Sprintf("%c%02d:%02d", sign, h, m)
}
