package temporal

import (
	"cmp"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/hoyle1974/chrono/interval"
)

// durations holds the part of interval.Arithmetic that only depends on
// time.Duration.
type durations struct{}

func (durations) Zero() time.Duration { return 0 }

func (durations) CompareDurations(a, b time.Duration) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (durations) Scale(unit time.Duration, n int64) time.Duration {
	return unit * time.Duration(n)
}

func (durations) Units(d, unit time.Duration) (int64, error) {
	if unit <= 0 {
		return 0, errors.Wrapf(interval.ErrUnsupportedStep, "unit %v is not positive", unit)
	}
	return int64(d / unit), nil
}

func (durations) CheckQuantum(q time.Duration) error {
	if q <= 0 {
		return errors.Wrapf(interval.ErrUnsupportedStep, "quantum %v is not positive", q)
	}
	return nil
}

type instantArith struct{ durations }

func (instantArith) Add(p time.Time, d time.Duration) time.Time { return p.Add(d) }

func (instantArith) Between(start, end time.Time) time.Duration { return end.Sub(start) }

// dateArith measures dates in whole days.
type dateArith struct{}

func (dateArith) Add(p Date, days int) Date { return p.AddDate(0, 0, days) }

func (dateArith) Between(start, end Date) int { return start.DaysUntil(end) }

func (dateArith) CompareDurations(a, b int) int { return cmp.Compare(a, b) }

func (dateArith) Zero() int { return 0 }

func (dateArith) Scale(unit int, n int64) int { return unit * int(n) }

func (dateArith) Units(days, unit int) (int64, error) {
	if unit <= 0 {
		return 0, errors.Wrapf(interval.ErrUnsupportedStep, "unit of %d days is not positive", unit)
	}
	return int64(days / unit), nil
}

func (dateArith) CheckQuantum(q int) error {
	if q <= 0 {
		return errors.Wrapf(interval.ErrUnsupportedStep, "quantum of %d days is not positive", q)
	}
	return nil
}

type clockArith struct{ durations }

func (clockArith) Add(p Clock, d time.Duration) Clock { return Clock{d: p.d + d} }

func (clockArith) Between(start, end Clock) time.Duration { return end.d - start.d }

var (
	_ interval.Arithmetic[time.Time, time.Duration] = instantArith{}
	_ interval.Arithmetic[Date, int]                = dateArith{}
	_ interval.Arithmetic[Clock, time.Duration]     = clockArith{}
)

type instantStepper struct{}

func (instantStepper) Step(p time.Time, s Step) time.Time {
	return p.AddDate(s.Years, s.Months, s.Days).Add(s.Duration)
}

func (instantStepper) CheckStep(Step) error { return nil }

type dateStepper struct{}

func (dateStepper) Step(p Date, s Step) Date { return p.AddDate(s.Years, s.Months, s.Days) }

func (dateStepper) CheckStep(s Step) error { return s.onlyUnits(true, true, true, false) }

type clockStepper struct{}

func (clockStepper) Step(p Clock, s Step) Clock { return Clock{d: p.d + s.Duration} }

func (clockStepper) CheckStep(s Step) error { return s.onlyUnits(false, false, false, true) }

type monthStepper struct{}

func (monthStepper) Step(p Month, s Step) Month { return p.AddMonths(12*s.Years + s.Months) }

func (monthStepper) CheckStep(s Step) error { return s.onlyUnits(true, true, false, false) }

type yearStepper struct{}

func (yearStepper) Step(p Year, s Step) Year { return p + Year(s.Years) }

func (yearStepper) CheckStep(s Step) error { return s.onlyUnits(true, false, false, false) }
