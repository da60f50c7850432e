package interval

// The predicates below work on any Bounds. They assume valid, non-nil
// arguments and never fail.

// IsEmpty reports whether b starts where it ends.
func IsEmpty[T Point[T]](b Bounds[T]) bool {
	return b.Start().Compare(b.End()) == 0
}

// Contains reports whether start <= p < end. An empty interval contains nothing.
func Contains[T Point[T]](b Bounds[T], p T) bool {
	return p.Compare(b.Start()) >= 0 && p.Compare(b.End()) < 0
}

// Encloses reports whether other lies within b. An empty interval encloses
// only an equal empty interval.
func Encloses[T Point[T]](b, other Bounds[T]) bool {
	return other.Start().Compare(b.Start()) >= 0 && other.End().Compare(b.End()) <= 0
}

// Abuts reports whether exactly one end of other touches b. Equal intervals
// never abut.
func Abuts[T Point[T]](b, other Bounds[T]) bool {
	return (other.End().Compare(b.Start()) == 0) != (other.Start().Compare(b.End()) == 0)
}

// Overlaps reports whether b and other share a part of the continuum. Two
// equal empty intervals overlap.
func Overlaps[T Point[T]](b, other Bounds[T]) bool {
	return (other.End().Compare(b.Start()) > 0 && other.Start().Compare(b.End()) < 0) || Equal(b, other)
}

// Equal reports whether both starts and both ends compare equal.
func Equal[T Point[T]](b, other Bounds[T]) bool {
	return b.Start().Compare(other.Start()) == 0 && b.End().Compare(other.End()) == 0
}

func minPoint[T Point[T]](a, b T) T {
	if b.Compare(a) < 0 {
		return b
	}
	return a
}

func maxPoint[T Point[T]](a, b T) T {
	if b.Compare(a) > 0 {
		return b
	}
	return a
}
