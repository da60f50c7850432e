package temporal

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/hoyle1974/chrono/interval"
)

// Step is the amount a point advances by on each iteration of a Stream.
// Calendar units are applied first, then Duration.
type Step struct {
	Years    int
	Months   int
	Days     int
	Duration time.Duration
}

func Years(n int) Step { return Step{Years: n} }

func Months(n int) Step { return Step{Months: n} }

func Days(n int) Step { return Step{Days: n} }

func Every(d time.Duration) Step { return Step{Duration: d} }

func (s Step) IsZero() bool { return s == Step{} }

// onlyUnits fails with ErrUnsupportedStep when s uses a unit that is not allowed.
func (s Step) onlyUnits(years, months, days, duration bool) error {
	switch {
	case s.Years != 0 && !years:
		return errors.Wrapf(interval.ErrUnsupportedStep, "%v: years", s)
	case s.Months != 0 && !months:
		return errors.Wrapf(interval.ErrUnsupportedStep, "%v: months", s)
	case s.Days != 0 && !days:
		return errors.Wrapf(interval.ErrUnsupportedStep, "%v: days", s)
	case s.Duration != 0 && !duration:
		return errors.Wrapf(interval.ErrUnsupportedStep, "%v: sub-day duration", s)
	}
	return nil
}

func (s Step) String() string {
	var parts []string
	if s.Years != 0 {
		parts = append(parts, strconv.Itoa(s.Years)+"y")
	}
	if s.Months != 0 {
		parts = append(parts, strconv.Itoa(s.Months)+"mo")
	}
	if s.Days != 0 {
		parts = append(parts, strconv.Itoa(s.Days)+"d")
	}
	if s.Duration != 0 || len(parts) == 0 {
		parts = append(parts, s.Duration.String())
	}
	return strings.Join(parts, "")
}

// "mo" is tried before anything else so that "m" and "ms" are left to
// time.ParseDuration.
var stepUnits = []struct {
	suffix string
	apply  func(*Step, int)
}{
	{"mo", func(s *Step, n int) { s.Months += n }},
	{"y", func(s *Step, n int) { s.Years += n }},
	{"w", func(s *Step, n int) { s.Days += 7 * n }},
	{"d", func(s *Step, n int) { s.Days += n }},
}

// ParseStep reads a step such as "1y", "2mo", "3d", "1w", "1y6mo" or any
// string accepted by time.ParseDuration. Calendar units come first and may be
// followed by a duration, as in "1d12h".
func ParseStep(text string) (Step, error) {
	if text == "" {
		return Step{}, errors.New("can not parse empty step")
	}
	var step Step
	rest := text
	for rest != "" {
		n := 0
		for n < len(rest) && (rest[n] >= '0' && rest[n] <= '9' || n == 0 && rest[n] == '-') {
			n++
		}
		matched := false
		for _, u := range stepUnits {
			if !strings.HasPrefix(rest[n:], u.suffix) {
				continue
			}
			v, err := strconv.Atoi(rest[:n])
			if err != nil {
				return Step{}, errors.Wrapf(err, "can not parse step %q", text)
			}
			u.apply(&step, v)
			rest = rest[n+len(u.suffix):]
			matched = true
			break
		}
		if !matched {
			break
		}
	}
	if rest != "" {
		d, err := time.ParseDuration(rest)
		if err != nil {
			return Step{}, errors.Wrapf(err, "can not parse step %q", text)
		}
		step.Duration = d
	}
	return step, nil
}

func formatPair(a, b fmt.Stringer) string {
	return a.String() + string(interval.Separator) + b.String()
}
