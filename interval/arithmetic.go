package interval

// Arithmetic supplies the additive structure that links points of type T
// with durations of type D. Implementations are usually stateless values.
type Arithmetic[T Point[T], D any] interface {
	// Add returns p advanced by d.
	Add(p T, d D) T
	// Between returns end - start.
	Between(start, end T) D
	// CompareDurations orders durations the way Point.Compare orders points.
	CompareDurations(a, b D) int
	// Zero returns the empty duration.
	Zero() D
	// Units returns how many whole units fit in d, truncated toward zero. It
	// fails with ErrUnsupportedStep when unit can not measure durations of
	// this point type.
	Units(d, unit D) (int64, error)
	// Scale returns unit repeated n times.
	Scale(unit D, n int64) D
	// CheckQuantum fails with ErrUnsupportedStep when q can not be used to
	// walk points of this type.
	CheckQuantum(q D) error
}

// Stepper advances points of type T by amounts of type S.
type Stepper[T Point[T], S any] interface {
	Step(p T, step S) T
	// CheckStep fails with ErrUnsupportedStep when step uses a unit the point
	// type does not support.
	CheckStep(step S) error
}
