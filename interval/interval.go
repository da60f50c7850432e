// Package interval implements an algebra of half-open intervals and spans over
// any totally ordered point type.
//
// An Interval is the range [start, end). A Span is the same range expressed as
// a start and a non-negative duration. Concrete bindings (see the temporal
// package) plug in through a Kind or SpanKind so that derived values keep the
// binding's own type.
package interval

import (
	"fmt"
)

// Point is implemented by totally ordered types. Compare returns a negative
// number, zero or a positive number when the receiver is before, equal to or
// after the argument. time.Time satisfies Point[time.Time].
type Point[T any] interface {
	Compare(T) int
}

// Bounds is anything with an inclusive start and an exclusive end.
type Bounds[T any] interface {
	Start() T
	End() T
}

// Interval is an immutable half-open range [start, end) with end >= start.
// The zero Interval is the empty interval at the zero point.
type Interval[T Point[T]] struct {
	start T
	end   T
}

func kindOf[T Point[T]]() Kind[T, Interval[T]] {
	return NewKind[T, Interval[T]](func(start, end T) Interval[T] {
		return Interval[T]{start: start, end: end}
	})
}

// New returns the interval [start, end).
func New[T Point[T]](start, end T) (Interval[T], error) {
	return kindOf[T]().Of(start, end)
}

// From converts any Bounds into an Interval. An Interval is returned as is.
func From[T Point[T]](b Bounds[T]) (Interval[T], error) {
	return kindOf[T]().From(b)
}

func (i Interval[T]) Start() T { return i.start }
func (i Interval[T]) End() T   { return i.end }

// WithStart returns [start, i.End()).
func (i Interval[T]) WithStart(start T) (Interval[T], error) {
	return kindOf[T]().WithStart(i, start)
}

// WithEnd returns [i.Start(), end).
func (i Interval[T]) WithEnd(end T) (Interval[T], error) {
	return kindOf[T]().WithEnd(i, end)
}

func (i Interval[T]) IsEmpty() bool { return IsEmpty[T](i) }

func (i Interval[T]) Contains(p T) bool { return Contains[T](i, p) }

func (i Interval[T]) Encloses(other Bounds[T]) bool { return Encloses[T](i, other) }

func (i Interval[T]) Abuts(other Bounds[T]) bool { return Abuts[T](i, other) }

func (i Interval[T]) Overlaps(other Bounds[T]) bool { return Overlaps[T](i, other) }

// Overlap returns the intersection of both intervals, or false when they do
// not overlap.
func (i Interval[T]) Overlap(other Bounds[T]) (Interval[T], bool) {
	return kindOf[T]().Overlap(i, other)
}

// Gap returns the interval lying strictly between both intervals, or false
// when they overlap or abut.
func (i Interval[T]) Gap(other Bounds[T]) (Interval[T], bool) {
	return kindOf[T]().Gap(i, other)
}

// Join returns the smallest interval covering both intervals.
func (i Interval[T]) Join(other Bounds[T]) Interval[T] {
	return kindOf[T]().Join(i, other)
}

func (i Interval[T]) Equal(other Bounds[T]) bool { return Equal[T](i, other) }

func (i Interval[T]) String() string {
	return fmt.Sprintf("%v/%v", i.start, i.end)
}
