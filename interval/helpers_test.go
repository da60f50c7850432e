package interval

import (
	"cmp"
	"fmt"

	"github.com/cockroachdb/errors"
)

// num is a plain ordered point used to exercise the algebra without any
// calendar arithmetic.
type num int

func (a num) Compare(b num) int { return cmp.Compare(a, b) }

func iv(start, end num) Interval[num] {
	i, err := New(start, end)
	if err != nil {
		panic(err)
	}
	return i
}

// numArith treats num both as point and as duration.
type numArith struct{}

func (numArith) Add(p num, d num) num          { return p + d }
func (numArith) Between(start, end num) num    { return end - start }
func (numArith) CompareDurations(a, b num) int { return cmp.Compare(a, b) }
func (numArith) Zero() num                     { return 0 }
func (numArith) Scale(unit num, n int64) num   { return unit * num(n) }

func (numArith) Units(d, unit num) (int64, error) {
	if unit <= 0 {
		return 0, errors.Wrapf(ErrUnsupportedStep, "unit %d", unit)
	}
	return int64(d / unit), nil
}

func (numArith) CheckQuantum(q num) error {
	if q <= 0 {
		return errors.Wrapf(ErrUnsupportedStep, "quantum %d", q)
	}
	return nil
}

// cappedArith is numArith with durations that saturate at 100, the way
// time.Time.Sub saturates at the time.Duration limits.
type cappedArith struct{ numArith }

func (cappedArith) Between(start, end num) num { return min(end-start, 100) }

// numStepper only accepts even steps so that the unsupported path can be tested.
type numStepper struct{}

func (numStepper) Step(p num, step num) num { return p + step }

func (numStepper) CheckStep(step num) error {
	if step%2 != 0 {
		return errors.Wrapf(ErrUnsupportedStep, "odd step %d", step)
	}
	return nil
}

// bounds is a foreign Bounds implementation used to check coercion.
type bounds struct{ s, e num }

func (b bounds) Start() num { return b.s }
func (b bounds) End() num   { return b.e }

// ptr is a pointer point used to check absent arguments.
type ptr struct{ v int }

func (a *ptr) Compare(b *ptr) int { return cmp.Compare(a.v, b.v) }

func (a *ptr) String() string { return fmt.Sprint(a.v) }
