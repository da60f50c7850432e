package interval

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Factory builds a concrete interval from bounds that already passed validation.
type Factory[T Point[T], I Bounds[T]] func(start, end T) I

// Kind binds the interval algebra to a concrete interval type I, so that
// derived intervals come back as I rather than as a generic Interval.
type Kind[T Point[T], I Bounds[T]] struct {
	build Factory[T, I]
}

func NewKind[T Point[T], I Bounds[T]](build Factory[T, I]) Kind[T, I] {
	if build == nil {
		panic("interval: nil factory")
	}
	return Kind[T, I]{build: build}
}

// Of validates start and end and builds an I.
func (k Kind[T, I]) Of(start, end T) (I, error) {
	var zero I
	if err := requirePresent("start", start); err != nil {
		return zero, err
	}
	if err := requirePresent("end", end); err != nil {
		return zero, err
	}
	if end.Compare(start) < 0 {
		return zero, errors.Wrapf(ErrInvalidRange, "end %v is before start %v", end, start)
	}
	return k.build(start, end), nil
}

// From returns b unchanged when it already is an I, and otherwise rebuilds
// an I from its bounds.
func (k Kind[T, I]) From(b Bounds[T]) (I, error) {
	if absent(b) {
		var zero I
		return zero, errors.Wrap(ErrNullArgument, "interval")
	}
	if i, ok := b.(I); ok {
		return i, nil
	}
	return k.Of(b.Start(), b.End())
}

func (k Kind[T, I]) WithStart(i I, start T) (I, error) {
	return k.Of(start, i.End())
}

func (k Kind[T, I]) WithEnd(i I, end T) (I, error) {
	return k.Of(i.Start(), end)
}

// Overlap returns [max(starts), min(ends)) when i and other overlap. When the
// result has the bounds of i, i itself is returned.
func (k Kind[T, I]) Overlap(i I, other Bounds[T]) (I, bool) {
	if !Overlaps[T](i, other) {
		var zero I
		return zero, false
	}
	start := maxPoint(i.Start(), other.Start())
	end := minPoint(i.End(), other.End())
	if start.Compare(i.Start()) == 0 && end.Compare(i.End()) == 0 {
		return i, true
	}
	return k.derive(start, end), true
}

// Gap returns [i.End(), other.Start()) or [other.End(), i.Start()),
// whichever is non-degenerate. Overlapping or abutting intervals have no gap.
func (k Kind[T, I]) Gap(i I, other Bounds[T]) (I, bool) {
	switch {
	case other.Start().Compare(i.End()) > 0:
		return k.derive(i.End(), other.Start()), true
	case other.End().Compare(i.Start()) < 0:
		return k.derive(other.End(), i.Start()), true
	}
	var zero I
	return zero, false
}

// Join returns [min(starts), max(ends)) regardless of whether the intervals
// overlap.
func (k Kind[T, I]) Join(i I, other Bounds[T]) I {
	return k.derive(minPoint(i.Start(), other.Start()), maxPoint(i.End(), other.End()))
}

// derive goes through Of for bounds that the algorithms above guarantee to
// be ordered. A failure here means the point type's Compare is not a total order.
func (k Kind[T, I]) derive(start, end T) I {
	i, err := k.Of(start, end)
	if err != nil {
		panic(fmt.Sprintf("interval: derived bounds %v/%v: %v", start, end, err))
	}
	return i
}
