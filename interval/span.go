package interval

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
)

// Extent is anything with a start and a duration.
type Extent[T, D any] interface {
	Start() T
	Duration() D
}

// SpanFactory builds a concrete span from a start and a duration that
// already passed validation.
type SpanFactory[T Point[T], D any, S Extent[T, D]] func(start T, d D) S

// SpanKind binds the span algebra to a concrete span type S and to the
// arithmetic of its points.
type SpanKind[T Point[T], D any, S Extent[T, D]] struct {
	arith Arithmetic[T, D]
	build SpanFactory[T, D, S]
}

func NewSpanKind[T Point[T], D any, S Extent[T, D]](arith Arithmetic[T, D], build SpanFactory[T, D, S]) SpanKind[T, D, S] {
	if absent(arith) || build == nil {
		panic("interval: span kind needs arithmetic and a factory")
	}
	return SpanKind[T, D, S]{arith: arith, build: build}
}

func (k SpanKind[T, D, S]) Arithmetic() Arithmetic[T, D] { return k.arith }

// Of validates start and d and builds an S. A negative duration is an
// ErrInvalidRange.
func (k SpanKind[T, D, S]) Of(start T, d D) (S, error) {
	var zero S
	if err := requirePresent("start", start); err != nil {
		return zero, err
	}
	if err := requirePresent("duration", d); err != nil {
		return zero, err
	}
	if k.arith.CompareDurations(d, k.arith.Zero()) < 0 {
		return zero, errors.Wrapf(ErrInvalidRange, "duration %v is negative", d)
	}
	return k.build(start, d), nil
}

// From returns e unchanged when it already is an S, and otherwise rebuilds
// an S from its start and duration.
func (k SpanKind[T, D, S]) From(e Extent[T, D]) (S, error) {
	if absent(e) {
		var zero S
		return zero, errors.Wrap(ErrNullArgument, "span")
	}
	if s, ok := e.(S); ok {
		return s, nil
	}
	return k.Of(e.Start(), e.Duration())
}

// For converts interval bounds into the equivalent span [start, end - start).
// It fails with ErrInvalidRange when D can not hold the length of b, that is
// when start + (end - start) does not lead back to end.
func (k SpanKind[T, D, S]) For(b Bounds[T]) (S, error) {
	var zero S
	if absent(b) {
		return zero, errors.Wrap(ErrNullArgument, "interval")
	}
	start, end := b.Start(), b.End()
	d := k.arith.Between(start, end)
	if k.arith.Add(start, d).Compare(end) != 0 {
		return zero, errors.Wrapf(ErrInvalidRange, "%v/%v is too long for its duration type", start, end)
	}
	return k.Of(start, d)
}

// End computes start + duration. It is never stored.
func (k SpanKind[T, D, S]) End(s S) T {
	return k.arith.Add(s.Start(), s.Duration())
}

func (k SpanKind[T, D, S]) WithStart(s S, start T) (S, error) {
	return k.Of(start, s.Duration())
}

func (k SpanKind[T, D, S]) WithDuration(s S, d D) (S, error) {
	return k.Of(s.Start(), d)
}

// Length returns the number of whole units in the span.
func (k SpanKind[T, D, S]) Length(s S, unit D) (int64, error) {
	if err := requirePresent("unit", unit); err != nil {
		return 0, err
	}
	return k.arith.Units(k.arith.Between(s.Start(), k.End(s)), unit)
}

// Interpolate returns the point at position/total along the span, rounded to
// the nearest whole unit.
func (k SpanKind[T, D, S]) Interpolate(s S, position, total float64, unit D) (T, error) {
	var zero T
	if total == 0 {
		return zero, errors.Wrap(ErrInvalidRange, "total is zero")
	}
	n, err := k.Length(s, unit)
	if err != nil {
		return zero, err
	}
	steps := int64(math.Round(position / total * float64(n)))
	return k.arith.Add(s.Start(), k.arith.Scale(unit, steps)), nil
}

// Position is the inverse of Interpolate: it returns where p falls along the
// span, scaled to total. Whole units are counted, so the result is exact
// only for points that sit on a unit boundary.
func (k SpanKind[T, D, S]) Position(s S, p T, total float64, unit D) (float64, error) {
	if err := requirePresent("point", p); err != nil {
		return 0, err
	}
	n, err := k.Length(s, unit)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, errors.Wrapf(ErrInvalidRange, "span is shorter than one %v", unit)
	}
	offset, err := k.arith.Units(k.arith.Between(s.Start(), p), unit)
	if err != nil {
		return 0, err
	}
	return float64(offset) / float64(n) * total, nil
}

func (k SpanKind[T, D, S]) Equal(s S, other Extent[T, D]) bool {
	return s.Start().Compare(other.Start()) == 0 && k.arith.CompareDurations(s.Duration(), other.Duration()) == 0
}

// Span is an immutable start plus a non-negative duration. Spans are built
// with NewSpan; the zero Span has no arithmetic and must not be used.
type Span[T Point[T], D any] struct {
	start    T
	duration D
	arith    Arithmetic[T, D]
}

func spanKindOf[T Point[T], D any](arith Arithmetic[T, D]) SpanKind[T, D, Span[T, D]] {
	return NewSpanKind[T, D, Span[T, D]](arith, func(start T, d D) Span[T, D] {
		return Span[T, D]{start: start, duration: d, arith: arith}
	})
}

// NewSpan returns the span starting at start and lasting d.
func NewSpan[T Point[T], D any](start T, d D, arith Arithmetic[T, D]) (Span[T, D], error) {
	if absent(arith) {
		return Span[T, D]{}, errors.Wrap(ErrNullArgument, "arithmetic")
	}
	return spanKindOf(arith).Of(start, d)
}

// ToSpan converts interval bounds into a span using arith.
func ToSpan[T Point[T], D any](b Bounds[T], arith Arithmetic[T, D]) (Span[T, D], error) {
	if absent(arith) {
		return Span[T, D]{}, errors.Wrap(ErrNullArgument, "arithmetic")
	}
	return spanKindOf(arith).For(b)
}

func (s Span[T, D]) kind() SpanKind[T, D, Span[T, D]] { return spanKindOf(s.arith) }

func (s Span[T, D]) Start() T    { return s.start }
func (s Span[T, D]) Duration() D { return s.duration }

// End computes start + duration.
func (s Span[T, D]) End() T { return s.kind().End(s) }

func (s Span[T, D]) WithStart(start T) (Span[T, D], error) {
	return s.kind().WithStart(s, start)
}

func (s Span[T, D]) WithDuration(d D) (Span[T, D], error) {
	return s.kind().WithDuration(s, d)
}

func (s Span[T, D]) Length(unit D) (int64, error) { return s.kind().Length(s, unit) }

func (s Span[T, D]) Interpolate(position, total float64, unit D) (T, error) {
	return s.kind().Interpolate(s, position, total, unit)
}

func (s Span[T, D]) Position(p T, total float64, unit D) (float64, error) {
	return s.kind().Position(s, p, total, unit)
}

// ToInterval returns [start, start + duration).
func (s Span[T, D]) ToInterval() Interval[T] {
	return kindOf[T]().derive(s.start, s.End())
}

func (s Span[T, D]) Equal(other Extent[T, D]) bool { return s.kind().Equal(s, other) }

func (s Span[T, D]) String() string {
	return fmt.Sprintf("%v/%v", s.start, s.duration)
}
